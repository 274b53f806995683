package controller

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"salesdesk/models"
	"salesdesk/store"
	"salesdesk/utils"
)

type MeetingController struct {
	Meetings *store.MeetingStore
	Logger   *log.Logger
}

func NewMeetingController(meetings *store.MeetingStore, logger *log.Logger) *MeetingController {
	return &MeetingController{
		Meetings: meetings,
		Logger:   logger,
	}
}

func (mc *MeetingController) ListMeetings(c *fiber.Ctx) error {
	page, limit := pageQuery(c)
	filter := models.MeetingFilter{
		Page:   page,
		Limit:  limit,
		Search: c.Query("search"),
		From:   c.Query("from"),
		To:     c.Query("to"),
	}
	if err := mc.Meetings.FetchAllMeetings(companyID(c), filter); err != nil {
		return storeError(c, err)
	}
	return c.JSON(utils.SuccessResponse(mc.Meetings.Snapshot()))
}

func (mc *MeetingController) GetMeeting(c *fiber.Ctx) error {
	if err := mc.Meetings.FetchMeeting(companyID(c), c.Params("id")); err != nil {
		return storeError(c, err)
	}
	snap := mc.Meetings.Snapshot()
	return c.JSON(utils.SuccessResponse(snap.CurrentMeeting))
}

func (mc *MeetingController) CreateMeeting(c *fiber.Ctx) error {
	var input models.MeetingInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if err := utils.ValidateStruct(input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
	}
	if !input.EndTime.After(input.StartTime) {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Meeting must end after it starts", nil)
	}

	if err := mc.Meetings.AddMeeting(companyID(c), input); err != nil {
		return storeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(utils.SuccessResponse(mc.Meetings.Snapshot()))
}

func (mc *MeetingController) UpdateMeeting(c *fiber.Ctx) error {
	var input models.MeetingInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if err := utils.ValidateStruct(input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
	}

	if err := mc.Meetings.UpdateMeeting(companyID(c), c.Params("id"), input); err != nil {
		return storeError(c, err)
	}
	return c.JSON(utils.SuccessResponse(mc.Meetings.Snapshot()))
}

func (mc *MeetingController) RescheduleMeeting(c *fiber.Ctx) error {
	var input struct {
		StartTime time.Time `json:"startTime" validate:"required"`
		EndTime   time.Time `json:"endTime" validate:"required"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if err := utils.ValidateStruct(input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
	}
	if !input.EndTime.After(input.StartTime) {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Meeting must end after it starts", nil)
	}

	if err := mc.Meetings.RescheduleMeeting(companyID(c), c.Params("id"), input.StartTime, input.EndTime); err != nil {
		return storeError(c, err)
	}
	return c.JSON(utils.SuccessResponse(mc.Meetings.Snapshot()))
}

func (mc *MeetingController) DeleteMeeting(c *fiber.Ctx) error {
	if err := mc.Meetings.DeleteMeeting(companyID(c), c.Params("id")); err != nil {
		return storeError(c, err)
	}
	return c.JSON(utils.SuccessResponse(mc.Meetings.Snapshot()))
}
