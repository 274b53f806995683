package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"salesdesk/models"
	"salesdesk/store"
	"salesdesk/utils"
)

type DealController struct {
	Deals  *store.DealStore
	Logger *log.Logger
}

func NewDealController(deals *store.DealStore, logger *log.Logger) *DealController {
	return &DealController{
		Deals:  deals,
		Logger: logger,
	}
}

// GetBoard refreshes and renders the pipeline grouped by stage.
func (dc *DealController) GetBoard(c *fiber.Ctx) error {
	filter := models.DealFilter{
		Search:  c.Query("search"),
		OwnerID: c.Query("ownerId"),
	}
	if err := dc.Deals.FetchDealBoard(companyID(c), filter); err != nil {
		return storeError(c, err)
	}
	return c.JSON(utils.SuccessResponse(dc.Deals.Snapshot()))
}

func (dc *DealController) GetDeal(c *fiber.Ctx) error {
	if err := dc.Deals.FetchDeal(companyID(c), c.Params("id")); err != nil {
		return storeError(c, err)
	}
	snap := dc.Deals.Snapshot()
	return c.JSON(utils.SuccessResponse(snap.CurrentDeal))
}

func (dc *DealController) CreateDeal(c *fiber.Ctx) error {
	var input models.DealInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if err := utils.ValidateStruct(input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
	}

	if err := dc.Deals.AddDeal(companyID(c), input); err != nil {
		return storeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(utils.SuccessResponse(dc.Deals.Snapshot()))
}

func (dc *DealController) UpdateDeal(c *fiber.Ctx) error {
	var input models.DealInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if err := utils.ValidateStruct(input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
	}

	if err := dc.Deals.UpdateDeal(companyID(c), c.Params("id"), input); err != nil {
		return storeError(c, err)
	}
	return c.JSON(utils.SuccessResponse(dc.Deals.Snapshot()))
}

// MoveStage drags a card between pipeline columns.
func (dc *DealController) MoveStage(c *fiber.Ctx) error {
	var input struct {
		Stage string `json:"stage" validate:"required,oneof=qualification proposal negotiation closed_won closed_lost"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if err := utils.ValidateStruct(input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
	}

	if err := dc.Deals.MoveDealStage(companyID(c), c.Params("id"), input.Stage); err != nil {
		return storeError(c, err)
	}
	return c.JSON(utils.SuccessResponse(dc.Deals.Snapshot()))
}

func (dc *DealController) DeleteDeal(c *fiber.Ctx) error {
	if err := dc.Deals.DeleteDeal(companyID(c), c.Params("id")); err != nil {
		return storeError(c, err)
	}
	return c.JSON(utils.SuccessResponse(dc.Deals.Snapshot()))
}
