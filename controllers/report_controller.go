package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"salesdesk/models"
	"salesdesk/store"
	"salesdesk/utils"
)

type ReportController struct {
	Reports *store.ReportStore
	Logger  *log.Logger
}

func NewReportController(reports *store.ReportStore, logger *log.Logger) *ReportController {
	return &ReportController{
		Reports: reports,
		Logger:  logger,
	}
}

// Dashboard refreshes and renders the reporting aggregates.
func (rc *ReportController) Dashboard(c *fiber.Ctx) error {
	filter := models.ReportFilter{
		From: c.Query("from"),
		To:   c.Query("to"),
	}
	if err := rc.Reports.FetchDashboardReport(companyID(c), filter); err != nil {
		return storeError(c, err)
	}
	return c.JSON(utils.SuccessResponse(rc.Reports.Snapshot()))
}
