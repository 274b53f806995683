package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"salesdesk/models"
	"salesdesk/store"
	"salesdesk/utils"
)

type TicketController struct {
	Tickets *store.TicketStore
	Logger  *log.Logger
}

func NewTicketController(tickets *store.TicketStore, logger *log.Logger) *TicketController {
	return &TicketController{
		Tickets: tickets,
		Logger:  logger,
	}
}

func (tc *TicketController) ListTickets(c *fiber.Ctx) error {
	page, limit := pageQuery(c)
	filter := models.TicketFilter{
		Page:   page,
		Limit:  limit,
		Status: c.Query("status"),
	}
	if err := tc.Tickets.FetchTickets(companyID(c), filter); err != nil {
		return storeError(c, err)
	}
	return c.JSON(utils.SuccessResponse(tc.Tickets.Snapshot()))
}

func (tc *TicketController) CreateTicket(c *fiber.Ctx) error {
	var input models.TicketInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if err := utils.ValidateStruct(input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
	}

	if err := tc.Tickets.AddTicket(companyID(c), input); err != nil {
		return storeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(utils.SuccessResponse(tc.Tickets.Snapshot()))
}

func (tc *TicketController) CloseTicket(c *fiber.Ctx) error {
	if err := tc.Tickets.CloseTicket(companyID(c), c.Params("id")); err != nil {
		return storeError(c, err)
	}
	return c.JSON(utils.SuccessResponse(tc.Tickets.Snapshot()))
}
