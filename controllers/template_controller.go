package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"salesdesk/models"
	"salesdesk/store"
	"salesdesk/utils"
)

type TemplateController struct {
	Templates *store.TemplateStore
	Logger    *log.Logger
}

func NewTemplateController(templates *store.TemplateStore, logger *log.Logger) *TemplateController {
	return &TemplateController{
		Templates: templates,
		Logger:    logger,
	}
}

func (tc *TemplateController) ListTemplates(c *fiber.Ctx) error {
	page, limit := pageQuery(c)
	filter := models.TemplateFilter{
		Page:   page,
		Limit:  limit,
		Search: c.Query("search"),
		Type:   c.Query("type"),
	}
	if err := tc.Templates.FetchTemplates(companyID(c), filter); err != nil {
		return storeError(c, err)
	}
	return c.JSON(utils.SuccessResponse(tc.Templates.Snapshot()))
}

func (tc *TemplateController) GetTemplate(c *fiber.Ctx) error {
	if err := tc.Templates.FetchTemplate(companyID(c), c.Params("id")); err != nil {
		return storeError(c, err)
	}
	snap := tc.Templates.Snapshot()
	return c.JSON(utils.SuccessResponse(snap.CurrentTemplate))
}

func (tc *TemplateController) CreateTemplate(c *fiber.Ctx) error {
	var input models.TemplateInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if err := utils.ValidateStruct(input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
	}

	if err := tc.Templates.AddTemplate(companyID(c), input); err != nil {
		return storeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(utils.SuccessResponse(tc.Templates.Snapshot()))
}

func (tc *TemplateController) UpdateTemplate(c *fiber.Ctx) error {
	var input models.TemplateInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if err := utils.ValidateStruct(input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
	}

	if err := tc.Templates.UpdateTemplate(companyID(c), c.Params("id"), input); err != nil {
		return storeError(c, err)
	}
	return c.JSON(utils.SuccessResponse(tc.Templates.Snapshot()))
}

func (tc *TemplateController) DeleteTemplate(c *fiber.Ctx) error {
	if err := tc.Templates.DeleteTemplate(companyID(c), c.Params("id")); err != nil {
		return storeError(c, err)
	}
	return c.JSON(utils.SuccessResponse(tc.Templates.Snapshot()))
}
