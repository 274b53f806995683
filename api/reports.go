package api

import (
	"errors"

	"github.com/valyala/fasthttp"

	"salesdesk/models"
)

// GetDashboardReport returns the aggregated dashboard figures for the
// given window. All aggregation is server-side.
func (c *Client) GetDashboardReport(companyID string, filter models.ReportFilter) (models.DashboardReport, error) {
	var report models.DashboardReport
	if companyID == "" {
		return report, errors.New("company id is required")
	}
	err := c.do(fasthttp.MethodGet, "/companies/"+companyID+"/reports/dashboard", encodeReportFilter(filter), nil, &report)
	return report, err
}
