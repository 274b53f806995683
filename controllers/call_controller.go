package controller

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"salesdesk/models"
	"salesdesk/store"
	"salesdesk/utils"
)

type CallController struct {
	Calls  *store.CallStore
	Logger *log.Logger
}

func NewCallController(calls *store.CallStore, logger *log.Logger) *CallController {
	return &CallController{
		Calls:  calls,
		Logger: logger,
	}
}

// ListCalls refreshes the call cache for the requested page and renders it.
func (cc *CallController) ListCalls(c *fiber.Ctx) error {
	page, limit := pageQuery(c)
	filter := models.CallFilter{
		Page:     page,
		Limit:    limit,
		Search:   c.Query("search"),
		CallType: c.Query("callType"),
		Status:   c.Query("status"),
	}
	if err := cc.Calls.FetchAllCalls(companyID(c), filter); err != nil {
		return storeError(c, err)
	}
	return c.JSON(utils.SuccessResponse(cc.Calls.Snapshot()))
}

// GetCall loads the detail view, which carries fields the listing omits.
func (cc *CallController) GetCall(c *fiber.Ctx) error {
	if err := cc.Calls.FetchCall(companyID(c), c.Params("id")); err != nil {
		return storeError(c, err)
	}
	snap := cc.Calls.Snapshot()
	return c.JSON(utils.SuccessResponse(snap.CurrentCall))
}

func (cc *CallController) CreateCall(c *fiber.Ctx) error {
	var input models.CallInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if err := utils.ValidateStruct(input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
	}

	if err := cc.Calls.AddCall(companyID(c), input); err != nil {
		return storeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(utils.SuccessResponse(cc.Calls.Snapshot()))
}

func (cc *CallController) UpdateCall(c *fiber.Ctx) error {
	var input models.CallInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if err := utils.ValidateStruct(input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
	}

	if err := cc.Calls.UpdateCall(companyID(c), c.Params("id"), input); err != nil {
		return storeError(c, err)
	}
	return c.JSON(utils.SuccessResponse(cc.Calls.Snapshot()))
}

// RescheduleCall moves only the start time, leaving the rest of the
// call untouched.
func (cc *CallController) RescheduleCall(c *fiber.Ctx) error {
	var input struct {
		StartTime time.Time `json:"startTime" validate:"required"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if err := utils.ValidateStruct(input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
	}

	if err := cc.Calls.RescheduleCall(companyID(c), c.Params("id"), input.StartTime); err != nil {
		return storeError(c, err)
	}
	return c.JSON(utils.SuccessResponse(cc.Calls.Snapshot()))
}

func (cc *CallController) DeleteCall(c *fiber.Ctx) error {
	if err := cc.Calls.DeleteCall(companyID(c), c.Params("id")); err != nil {
		return storeError(c, err)
	}
	return c.JSON(utils.SuccessResponse(cc.Calls.Snapshot()))
}
