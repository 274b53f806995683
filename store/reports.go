package store

import (
	"log"

	"salesdesk/models"
)

// ReportAPI is the accessor surface the report store drives.
type ReportAPI interface {
	GetDashboardReport(companyID string, filter models.ReportFilter) (models.DashboardReport, error)
}

// ReportSnapshot is what the presentation layer renders from.
type ReportSnapshot struct {
	Report    models.DashboardReport `json:"report"`
	IsLoading bool                   `json:"isLoading"`
	Error     string                 `json:"error,omitempty"`
}

// ReportStore caches the dashboard aggregates. Read-only; all figures
// are computed server-side.
type ReportStore struct {
	base
	api ReportAPI
	log *log.Logger

	report models.DashboardReport
}

func NewReportStore(api ReportAPI, logger *log.Logger) *ReportStore {
	return &ReportStore{api: api, log: logger}
}

func (s *ReportStore) FetchDashboardReport(companyID string, filter models.ReportFilter) error {
	seq := s.beginFetch()
	report, err := s.api.GetDashboardReport(companyID, filter)
	return s.settleFetch(seq, err, func() {
		s.report = report
	})
}

func (s *ReportStore) Snapshot() ReportSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ReportSnapshot{
		Report:    s.report,
		IsLoading: s.isLoading,
		Error:     s.errMsg,
	}
}
