package routes

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/websocket/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"

	"salesdesk/api"
	controller "salesdesk/controllers"
	"salesdesk/middleware"
	"salesdesk/notify"
	"salesdesk/store"
)

// Deps carries everything the route tree needs, wired up in main.
type Deps struct {
	API      *api.Client
	Sessions *store.SessionStore
	Leads    *store.LeadStore
	Calls    *store.CallStore
	Meetings *store.MeetingStore
	Deals    *store.DealStore
	Users    *store.UserStore
	Company  *store.CompanyStore
	Templs   *store.TemplateStore
	Plans    *store.PlanStore
	Subs     *store.SubscriptionStore
	Reports  *store.ReportStore
	Tickets  *store.TicketStore
	Hub      *notify.Hub
}

func SetupRoutes(app *fiber.App, deps *Deps) {
	authController := controller.NewAuthController(deps.Sessions, deps.API, log.New(os.Stdout, "AUTH: ", log.Ldate|log.Ltime|log.Lshortfile))
	leadController := controller.NewLeadController(deps.Leads, log.New(os.Stdout, "LEAD: ", log.LstdFlags))
	callController := controller.NewCallController(deps.Calls, log.New(os.Stdout, "CALL: ", log.LstdFlags))
	meetingController := controller.NewMeetingController(deps.Meetings, log.New(os.Stdout, "MEETING: ", log.LstdFlags))
	dealController := controller.NewDealController(deps.Deals, log.New(os.Stdout, "DEAL: ", log.LstdFlags))
	adminController := controller.NewAdminController(deps.Users, deps.Company, log.New(os.Stdout, "ADMIN: ", log.LstdFlags))
	billingController := controller.NewBillingController(deps.Plans, deps.Subs, log.New(os.Stdout, "BILLING: ", log.LstdFlags))
	reportController := controller.NewReportController(deps.Reports, log.New(os.Stdout, "REPORT: ", log.LstdFlags))
	ticketController := controller.NewTicketController(deps.Tickets, log.New(os.Stdout, "TICKET: ", log.LstdFlags))
	templateController := controller.NewTemplateController(deps.Templs, log.New(os.Stdout, "TEMPLATE: ", log.LstdFlags))

	// Public auth endpoints (no session required)
	auth := app.Group("/auth", fiberlogger.New(fiberlogger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))
	auth.Post("/login", authController.Login)
	auth.Post("/refresh", authController.Refresh)

	// Protected auth endpoints
	protectedAuth := auth.Group("", middleware.RequireSession(deps.Sessions))
	protectedAuth.Post("/logout", authController.Logout)
	protectedAuth.Get("/me", authController.Me)
	protectedAuth.Post("/devices", authController.RegisterDevice)

	// Desk routes: everything the signed-in operator works with
	desk := app.Group("/api/v1",
		middleware.RequireSession(deps.Sessions),
		middleware.MutationRateLimiter(),
		fiberlogger.New(fiberlogger.Config{
			Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
		}),
	)

	lead := desk.Group("/leads")
	lead.Get("/", leadController.ListLeads)
	lead.Post("/", leadController.CreateLead)
	lead.Get("/:id", leadController.GetLead)
	lead.Put("/:id", leadController.UpdateLead)
	lead.Delete("/:id", leadController.DeleteLead)
	lead.Post("/:id/convert", leadController.ConvertLead)

	call := desk.Group("/calls")
	call.Get("/", callController.ListCalls)
	call.Post("/", callController.CreateCall)
	call.Get("/:id", callController.GetCall)
	call.Put("/:id", callController.UpdateCall)
	call.Patch("/:id/reschedule", callController.RescheduleCall)
	call.Delete("/:id", callController.DeleteCall)

	meeting := desk.Group("/meetings")
	meeting.Get("/", meetingController.ListMeetings)
	meeting.Post("/", meetingController.CreateMeeting)
	meeting.Get("/:id", meetingController.GetMeeting)
	meeting.Put("/:id", meetingController.UpdateMeeting)
	meeting.Patch("/:id/reschedule", meetingController.RescheduleMeeting)
	meeting.Delete("/:id", meetingController.DeleteMeeting)

	deal := desk.Group("/deals")
	deal.Get("/board", dealController.GetBoard)
	deal.Post("/", dealController.CreateDeal)
	deal.Get("/:id", dealController.GetDeal)
	deal.Put("/:id", dealController.UpdateDeal)
	deal.Patch("/:id/stage", dealController.MoveStage)
	deal.Delete("/:id", dealController.DeleteDeal)

	template := desk.Group("/templates")
	template.Get("/", templateController.ListTemplates)
	template.Post("/", templateController.CreateTemplate)
	template.Get("/:id", templateController.GetTemplate)
	template.Put("/:id", templateController.UpdateTemplate)
	template.Delete("/:id", templateController.DeleteTemplate)

	desk.Get("/reports/dashboard", reportController.Dashboard)

	ticket := desk.Group("/tickets")
	ticket.Get("/", ticketController.ListTickets)
	ticket.Post("/", ticketController.CreateTicket)
	ticket.Post("/:id/close", ticketController.CloseTicket)

	billing := desk.Group("/billing")
	billing.Get("/plans", billingController.ListPlans)
	billing.Post("/plans/:id/select", billingController.SelectPlan)
	billing.Get("/subscription", billingController.GetSubscription)
	billing.Post("/subscription/upgrade", billingController.Upgrade)
	billing.Post("/subscription/cancel", billingController.CancelSubscription)

	// Admin-only routes
	admin := desk.Group("/admin", middleware.RequireAdmin())
	admin.Get("/users", adminController.ListUsers)
	admin.Post("/users", adminController.CreateUser)
	admin.Get("/users/:id", adminController.GetUser)
	admin.Put("/users/:id", adminController.UpdateUser)
	admin.Patch("/users/:id/manager", adminController.AssignManager)
	admin.Post("/users/:id/deactivate", adminController.DeactivateUser)
	admin.Delete("/users/:id", adminController.DeleteUser)
	admin.Get("/company", adminController.GetCompany)
	admin.Put("/company", adminController.UpdateCompany)

	// WebSocket route for foreground notifications
	app.Get("/api/v1/notifications/stream", websocket.New(func(c *websocket.Conn) {
		deps.Hub.Serve(c)
	}))

	// Prometheus scrape endpoint
	metricsHandler := fasthttpadaptor.NewFastHTTPHandler(promhttp.Handler())
	app.Get("/metrics", func(c *fiber.Ctx) error {
		metricsHandler(c.Context())
		return nil
	})
}
