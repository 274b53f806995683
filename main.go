package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/gofiber/fiber/v2"
	"github.com/stripe/stripe-go/v76"

	"salesdesk/config"
	"salesdesk/middleware"
	"salesdesk/models"
	"salesdesk/notify"
	"salesdesk/routes"
	"salesdesk/store"
	"salesdesk/utils"
	"salesdesk/worker"

	"salesdesk/api"
)

func main() {
	logger := log.New(os.Stdout, "DESK: ", log.Ldate|log.Ltime|log.Lshortfile)

	// Load configuration
	if err := config.LoadConfig(); err != nil {
		logger.Fatalf("Failed to load configuration: %v", err)
	}

	if config.AppConfig.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:         config.AppConfig.SentryDSN,
			Environment: config.AppConfig.Environment,
		}); err != nil {
			logger.Fatalf("Failed to initialize Sentry: %v", err)
		}
		defer sentry.Flush(2 * time.Second)
	}

	stripe.Key = config.AppConfig.StripeSecretKey

	// Persistence backend for the allow-listed store slices
	var persister store.Persister
	if config.AppConfig.Redis.Enabled {
		redisPersister := store.NewRedisPersister(
			config.AppConfig.Redis.Address,
			config.AppConfig.Redis.Password,
			config.AppConfig.Redis.DB,
		)
		if err := redisPersister.Ping(); err != nil {
			logger.Fatalf("Failed to connect to redis: %v", err)
		}
		defer redisPersister.Close()
		persister = redisPersister
	} else {
		logger.Println("Redis disabled, store persistence is in-memory only")
		persister = store.NewMemoryPersister()
	}

	// The session store feeds bearer tokens to the client, and the
	// client serves the session store's exchanges. Built in that order.
	sessions := store.NewSessionStore(log.New(os.Stdout, "SESSION: ", log.LstdFlags))
	client := api.NewClient(config.AppConfig.APIBaseURL, sessions)
	sessions.AttachAPI(client)

	var priceResolver store.PriceResolver
	if config.AppConfig.StripeSecretKey != "" {
		priceResolver = func(plan models.Plan) string {
			return utils.PlanDisplayPrice(plan)
		}
	}

	deps := &routes.Deps{
		API:      client,
		Sessions: sessions,
		Leads:    store.NewLeadStore(client, log.New(os.Stdout, "LEAD: ", log.LstdFlags)),
		Calls:    store.NewCallStore(client, log.New(os.Stdout, "CALL: ", log.LstdFlags)),
		Meetings: store.NewMeetingStore(client, log.New(os.Stdout, "MEETING: ", log.LstdFlags)),
		Deals:    store.NewDealStore(client, log.New(os.Stdout, "DEAL: ", log.LstdFlags)),
		Users:    store.NewUserStore(client, log.New(os.Stdout, "USER: ", log.LstdFlags)),
		Company:  store.NewCompanyStore(client, persister, log.New(os.Stdout, "COMPANY: ", log.LstdFlags)),
		Templs:   store.NewTemplateStore(client, log.New(os.Stdout, "TEMPLATE: ", log.LstdFlags)),
		Plans:    store.NewPlanStore(client, persister, priceResolver, log.New(os.Stdout, "PLAN: ", log.LstdFlags)),
		Subs:     store.NewSubscriptionStore(client, log.New(os.Stdout, "SUBSCRIPTION: ", log.LstdFlags)),
		Reports:  store.NewReportStore(client, log.New(os.Stdout, "REPORT: ", log.LstdFlags)),
		Tickets:  store.NewTicketStore(client, log.New(os.Stdout, "TICKET: ", log.LstdFlags)),
		Hub:      notify.NewHub(),
	}

	// Create Fiber app
	app := fiber.New()
	app.Use(middleware.CORS())
	app.Use(middleware.Metrics())

	// Reminder worker watches the cached calendar
	reminderWorker := worker.NewReminderWorker(
		deps.Calls,
		deps.Meetings,
		deps.Hub,
		time.Duration(config.AppConfig.ReminderIntervalSec)*time.Second,
		log.New(os.Stdout, "REMINDER: ", log.LstdFlags),
	)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go reminderWorker.Start(ctx)

	// Setup routes
	routes.SetupRoutes(app, deps)

	// Health check endpoint
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "running",
			"version": "1.0.0",
		})
	})

	// Start server
	logger.Printf("🚀 Server starting on port %s", config.AppConfig.ServerPort)
	if err := app.Listen(":" + config.AppConfig.ServerPort); err != nil {
		logger.Fatalf("Failed to start server: %v", err)
	}
}
