package store

import (
	"log"
	"strings"

	"github.com/google/uuid"

	"salesdesk/models"
)

// LeadAPI is the accessor surface the lead store drives.
type LeadAPI interface {
	GetAllLeads(companyID string, filter models.LeadFilter) (models.LeadPage, error)
	GetLead(companyID, leadID string) (models.Lead, error)
	CreateLead(companyID string, input models.LeadInput) (models.Lead, error)
	UpdateLead(companyID, leadID string, input models.LeadInput) (models.Lead, error)
	DeleteLead(companyID, leadID string) error
	ConvertLead(companyID, leadID string) (models.Deal, error)
}

// LeadSnapshot is what the presentation layer renders from.
type LeadSnapshot struct {
	Leads       []models.Lead `json:"leads"`
	Total       int           `json:"total"`
	Page        int           `json:"page"`
	TotalPages  int           `json:"totalPages"`
	CurrentLead *models.Lead  `json:"currentLead,omitempty"`
	IsLoading   bool          `json:"isLoading"`
	Error       string        `json:"error,omitempty"`
}

// LeadStore caches the company's leads.
type LeadStore struct {
	base
	api LeadAPI
	log *log.Logger

	leads       []models.Lead
	total       int
	page        int
	totalPages  int
	currentLead *models.Lead

	lastFilter models.LeadFilter
}

func NewLeadStore(api LeadAPI, logger *log.Logger) *LeadStore {
	return &LeadStore{api: api, log: logger}
}

func (s *LeadStore) FetchAllLeads(companyID string, filter models.LeadFilter) error {
	s.mu.Lock()
	s.lastFilter = filter
	s.mu.Unlock()

	seq := s.beginFetch()
	page, err := s.api.GetAllLeads(companyID, filter)
	return s.settleFetch(seq, err, func() {
		s.leads = page.Leads
		s.total = page.Total
		s.page = page.Page
		s.totalPages = page.TotalPages
	})
}

func (s *LeadStore) FetchLead(companyID, leadID string) error {
	seq := s.beginFetch()
	lead, err := s.api.GetLead(companyID, leadID)
	return s.settleFetch(seq, err, func() {
		s.currentLead = &lead
	})
}

func (s *LeadStore) AddLead(companyID string, input models.LeadInput) error {
	optimistic := models.Lead{
		ID:        "pending-" + uuid.NewString(),
		CompanyID: companyID,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     strings.ToLower(input.Email),
		Phone:     input.Phone,
		Account:   input.Account,
		Status:    "new",
		Source:    input.Source,
	}
	s.mu.Lock()
	s.leads = append(s.leads, optimistic)
	s.mu.Unlock()

	if _, err := s.api.CreateLead(companyID, input); err != nil {
		s.mu.Lock()
		if idx, _ := s.findLocked(optimistic.ID); idx >= 0 {
			s.leads = append(s.leads[:idx], s.leads[idx+1:]...)
		}
		s.errMsg = err.Error()
		s.mu.Unlock()
		return err
	}
	return s.refetch(companyID)
}

func (s *LeadStore) UpdateLead(companyID, leadID string, input models.LeadInput) error {
	s.mu.Lock()
	idx, prev := s.findLocked(leadID)
	if idx >= 0 {
		patched := prev
		patched.FirstName = input.FirstName
		patched.LastName = input.LastName
		patched.Email = strings.ToLower(input.Email)
		patched.Phone = input.Phone
		patched.Account = input.Account
		if input.Status != "" {
			patched.Status = input.Status
		}
		s.leads[idx] = patched
	}
	s.mu.Unlock()

	if _, err := s.api.UpdateLead(companyID, leadID, input); err != nil {
		s.mu.Lock()
		// Re-resolve by id: a concurrent fetch may have replaced the
		// page while the lock was released.
		if i, _ := s.findLocked(leadID); i >= 0 && idx >= 0 {
			s.leads[i] = prev
		}
		s.errMsg = err.Error()
		s.mu.Unlock()
		return err
	}
	return s.refetch(companyID)
}

func (s *LeadStore) DeleteLead(companyID, leadID string) error {
	s.mu.Lock()
	idx, prev := s.findLocked(leadID)
	if idx >= 0 {
		s.leads = append(s.leads[:idx], s.leads[idx+1:]...)
	}
	s.mu.Unlock()

	if err := s.api.DeleteLead(companyID, leadID); err != nil {
		s.mu.Lock()
		if i, _ := s.findLocked(leadID); i < 0 && idx >= 0 {
			if idx > len(s.leads) {
				idx = len(s.leads)
			}
			s.leads = append(s.leads[:idx], append([]models.Lead{prev}, s.leads[idx:]...)...)
		}
		s.errMsg = err.Error()
		s.mu.Unlock()
		return err
	}
	return s.refetch(companyID)
}

// ConvertLead turns a qualified lead into a deal server-side and returns
// the new deal. The lead list is refetched so the converted status shows.
func (s *LeadStore) ConvertLead(companyID, leadID string) (models.Deal, error) {
	s.mu.Lock()
	idx, prev := s.findLocked(leadID)
	if idx >= 0 {
		s.leads[idx].Status = "converted"
	}
	s.mu.Unlock()

	deal, err := s.api.ConvertLead(companyID, leadID)
	if err != nil {
		s.mu.Lock()
		if i, _ := s.findLocked(leadID); i >= 0 && idx >= 0 {
			s.leads[i] = prev
		}
		s.errMsg = err.Error()
		s.mu.Unlock()
		return models.Deal{}, err
	}
	return deal, s.refetch(companyID)
}

// LeadByID is a pure selector over the cached page.
func (s *LeadStore) LeadByID(leadID string) (models.Lead, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx, lead := s.findLocked(leadID)
	return lead, idx >= 0
}

func (s *LeadStore) Snapshot() LeadSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return LeadSnapshot{
		Leads:       append([]models.Lead(nil), s.leads...),
		Total:       s.total,
		Page:        s.page,
		TotalPages:  s.totalPages,
		CurrentLead: s.currentLead,
		IsLoading:   s.isLoading,
		Error:       s.errMsg,
	}
}

func (s *LeadStore) refetch(companyID string) error {
	s.mu.Lock()
	filter := s.lastFilter
	s.mu.Unlock()
	return s.FetchAllLeads(companyID, filter)
}

func (s *LeadStore) findLocked(leadID string) (int, models.Lead) {
	for i, lead := range s.leads {
		if lead.ID == leadID {
			return i, lead
		}
	}
	return -1, models.Lead{}
}
