package store

import (
	"log"
	"time"

	"github.com/google/uuid"

	"salesdesk/models"
)

// TicketAPI is the accessor surface the support ticket store drives.
type TicketAPI interface {
	GetTickets(companyID string, filter models.TicketFilter) (models.TicketPage, error)
	CreateTicket(companyID string, input models.TicketInput) (models.SupportTicket, error)
	CloseTicket(companyID, ticketID string) (models.SupportTicket, error)
}

// TicketSnapshot is what the presentation layer renders from.
type TicketSnapshot struct {
	Tickets    []models.SupportTicket `json:"tickets"`
	Total      int                    `json:"total"`
	Page       int                    `json:"page"`
	TotalPages int                    `json:"totalPages"`
	IsLoading  bool                   `json:"isLoading"`
	Error      string                 `json:"error,omitempty"`
}

// TicketStore caches the company's support tickets.
type TicketStore struct {
	base
	api TicketAPI
	log *log.Logger

	tickets    []models.SupportTicket
	total      int
	page       int
	totalPages int

	lastFilter models.TicketFilter
}

func NewTicketStore(api TicketAPI, logger *log.Logger) *TicketStore {
	return &TicketStore{api: api, log: logger}
}

func (s *TicketStore) FetchTickets(companyID string, filter models.TicketFilter) error {
	s.mu.Lock()
	s.lastFilter = filter
	s.mu.Unlock()

	seq := s.beginFetch()
	page, err := s.api.GetTickets(companyID, filter)
	return s.settleFetch(seq, err, func() {
		s.tickets = page.Tickets
		s.total = page.Total
		s.page = page.Page
		s.totalPages = page.TotalPages
	})
}

func (s *TicketStore) AddTicket(companyID string, input models.TicketInput) error {
	priority := input.Priority
	if priority == "" {
		priority = "medium"
	}
	optimistic := models.SupportTicket{
		ID:        "pending-" + uuid.NewString(),
		CompanyID: companyID,
		Subject:   input.Subject,
		Message:   input.Message,
		Status:    "open",
		Priority:  priority,
		CreatedAt: time.Now(),
	}
	s.mu.Lock()
	s.tickets = append(s.tickets, optimistic)
	s.mu.Unlock()

	if _, err := s.api.CreateTicket(companyID, input); err != nil {
		s.mu.Lock()
		if idx, _ := s.findLocked(optimistic.ID); idx >= 0 {
			s.tickets = append(s.tickets[:idx], s.tickets[idx+1:]...)
		}
		s.errMsg = err.Error()
		s.mu.Unlock()
		return err
	}
	return s.refetch(companyID)
}

func (s *TicketStore) CloseTicket(companyID, ticketID string) error {
	s.mu.Lock()
	idx, prev := s.findLocked(ticketID)
	if idx >= 0 {
		s.tickets[idx].Status = "closed"
	}
	s.mu.Unlock()

	if _, err := s.api.CloseTicket(companyID, ticketID); err != nil {
		s.mu.Lock()
		// Re-resolve by id: a concurrent fetch may have replaced the
		// page while the lock was released.
		if i, _ := s.findLocked(ticketID); i >= 0 && idx >= 0 {
			s.tickets[i] = prev
		}
		s.errMsg = err.Error()
		s.mu.Unlock()
		return err
	}
	return s.refetch(companyID)
}

// TicketByID is a pure selector over the cached page.
func (s *TicketStore) TicketByID(ticketID string) (models.SupportTicket, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx, ticket := s.findLocked(ticketID)
	return ticket, idx >= 0
}

func (s *TicketStore) Snapshot() TicketSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return TicketSnapshot{
		Tickets:    append([]models.SupportTicket(nil), s.tickets...),
		Total:      s.total,
		Page:       s.page,
		TotalPages: s.totalPages,
		IsLoading:  s.isLoading,
		Error:      s.errMsg,
	}
}

func (s *TicketStore) refetch(companyID string) error {
	s.mu.Lock()
	filter := s.lastFilter
	s.mu.Unlock()
	return s.FetchTickets(companyID, filter)
}

func (s *TicketStore) findLocked(ticketID string) (int, models.SupportTicket) {
	for i, ticket := range s.tickets {
		if ticket.ID == ticketID {
			return i, ticket
		}
	}
	return -1, models.SupportTicket{}
}
