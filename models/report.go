package models

// MetricPoint is one bucket of a time series on the reporting dashboard.
type MetricPoint struct {
	Date  string `json:"date"` // YYYY-MM-DD
	Value int64  `json:"value"`
}

// DashboardReport aggregates the numbers shown on the reporting
// dashboard. All figures are computed server-side; this service only
// caches and renders them.
type DashboardReport struct {
	TotalLeads        int           `json:"totalLeads"`
	NewLeadsThisMonth int           `json:"newLeadsThisMonth"`
	TotalDeals        int           `json:"totalDeals"`
	DealsWon          int           `json:"dealsWon"`
	DealsLost         int           `json:"dealsLost"`
	PipelineValue     int64         `json:"pipelineValue"` // in cents
	RevenueWon        int64         `json:"revenueWon"`
	CallsScheduled    int           `json:"callsScheduled"`
	MeetingsScheduled int           `json:"meetingsScheduled"`
	LeadSeries        []MetricPoint `json:"leadSeries,omitempty"`
	RevenueSeries     []MetricPoint `json:"revenueSeries,omitempty"`
}

// ReportFilter bounds the dashboard aggregation window.
type ReportFilter struct {
	From string // YYYY-MM-DD
	To   string
}
