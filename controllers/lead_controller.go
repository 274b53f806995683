package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"salesdesk/models"
	"salesdesk/store"
	"salesdesk/utils"
)

type LeadController struct {
	Leads  *store.LeadStore
	Logger *log.Logger
}

func NewLeadController(leads *store.LeadStore, logger *log.Logger) *LeadController {
	return &LeadController{
		Leads:  leads,
		Logger: logger,
	}
}

func (lc *LeadController) ListLeads(c *fiber.Ctx) error {
	page, limit := pageQuery(c)
	filter := models.LeadFilter{
		Page:   page,
		Limit:  limit,
		Search: c.Query("search"),
		Status: c.Query("status"),
		Source: c.Query("source"),
	}
	if err := lc.Leads.FetchAllLeads(companyID(c), filter); err != nil {
		return storeError(c, err)
	}
	return c.JSON(utils.SuccessResponse(lc.Leads.Snapshot()))
}

func (lc *LeadController) GetLead(c *fiber.Ctx) error {
	if err := lc.Leads.FetchLead(companyID(c), c.Params("id")); err != nil {
		return storeError(c, err)
	}
	snap := lc.Leads.Snapshot()
	return c.JSON(utils.SuccessResponse(snap.CurrentLead))
}

func (lc *LeadController) CreateLead(c *fiber.Ctx) error {
	var input models.LeadInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if err := utils.ValidateStruct(input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
	}
	if err := utils.ValidateEmailAddress(input.Email); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid email address", err)
	}

	if err := lc.Leads.AddLead(companyID(c), input); err != nil {
		return storeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(utils.SuccessResponse(lc.Leads.Snapshot()))
}

func (lc *LeadController) UpdateLead(c *fiber.Ctx) error {
	var input models.LeadInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if err := utils.ValidateStruct(input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
	}

	if err := lc.Leads.UpdateLead(companyID(c), c.Params("id"), input); err != nil {
		return storeError(c, err)
	}
	return c.JSON(utils.SuccessResponse(lc.Leads.Snapshot()))
}

func (lc *LeadController) DeleteLead(c *fiber.Ctx) error {
	if err := lc.Leads.DeleteLead(companyID(c), c.Params("id")); err != nil {
		return storeError(c, err)
	}
	return c.JSON(utils.SuccessResponse(lc.Leads.Snapshot()))
}

// ConvertLead promotes a lead into the pipeline and returns the new deal.
func (lc *LeadController) ConvertLead(c *fiber.Ctx) error {
	deal, err := lc.Leads.ConvertLead(companyID(c), c.Params("id"))
	if err != nil {
		return storeError(c, err)
	}
	lc.Logger.Printf("lead %s converted into deal %s", c.Params("id"), deal.ID)
	return c.Status(fiber.StatusCreated).JSON(utils.SuccessResponse(deal))
}
