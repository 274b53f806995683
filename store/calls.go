package store

import (
	"log"
	"time"

	"github.com/google/uuid"

	"salesdesk/models"
)

// CallAPI is the accessor surface the call store drives. The real
// implementation is *api.Client; tests substitute a mock.
type CallAPI interface {
	GetAllCalls(companyID string, filter models.CallFilter) (models.CallPage, error)
	GetCall(companyID, callID string) (models.Call, error)
	CreateCall(companyID string, input models.CallInput) (models.Call, error)
	UpdateCall(companyID, callID string, input models.CallInput) (models.Call, error)
	RescheduleCall(companyID, callID string, startTime time.Time) (models.Call, error)
	DeleteCall(companyID, callID string) error
}

// CallSnapshot is what the presentation layer renders from.
type CallSnapshot struct {
	Calls       []models.Call `json:"calls"`
	Total       int           `json:"total"`
	Page        int           `json:"page"`
	TotalPages  int           `json:"totalPages"`
	CurrentCall *models.Call  `json:"currentCall,omitempty"`
	IsLoading   bool          `json:"isLoading"`
	Error       string        `json:"error,omitempty"`
}

// CallStore caches the company's calls. Mutations apply an optimistic
// patch keyed by entity id, then reconcile with exactly one refetch on
// success; on failure the patch is rolled back and no refetch runs.
type CallStore struct {
	base
	api CallAPI
	log *log.Logger

	calls       []models.Call
	total       int
	page        int
	totalPages  int
	currentCall *models.Call

	lastCompanyID string
	lastFilter    models.CallFilter
}

func NewCallStore(api CallAPI, logger *log.Logger) *CallStore {
	return &CallStore{api: api, log: logger}
}

// FetchAllCalls loads one page of calls. A failed fetch records the
// error and leaves the previously loaded page in place.
func (s *CallStore) FetchAllCalls(companyID string, filter models.CallFilter) error {
	s.mu.Lock()
	s.lastCompanyID = companyID
	s.lastFilter = filter
	s.mu.Unlock()

	seq := s.beginFetch()
	page, err := s.api.GetAllCalls(companyID, filter)
	return s.settleFetch(seq, err, func() {
		s.calls = page.Calls
		s.total = page.Total
		s.page = page.Page
		s.totalPages = page.TotalPages
	})
}

// FetchCall loads the detail shape of one call into CurrentCall.
func (s *CallStore) FetchCall(companyID, callID string) error {
	seq := s.beginFetch()
	call, err := s.api.GetCall(companyID, callID)
	return s.settleFetch(seq, err, func() {
		s.currentCall = &call
	})
}

// AddCall schedules a call. The list shows an ephemeral row immediately;
// the follow-up fetch replaces it with the backend's copy.
func (s *CallStore) AddCall(companyID string, input models.CallInput) error {
	optimistic := models.Call{
		ID:          "pending-" + uuid.NewString(),
		CompanyID:   companyID,
		Title:       input.Title,
		CallType:    input.CallType,
		Status:      "scheduled",
		StartTime:   input.StartTime,
		DurationMin: input.DurationMin,
		Agenda:      input.Agenda,
		Reminder:    input.Reminder,
	}
	s.mu.Lock()
	s.calls = append(s.calls, optimistic)
	s.mu.Unlock()

	if _, err := s.api.CreateCall(companyID, input); err != nil {
		s.mu.Lock()
		s.removeLocked(optimistic.ID)
		s.errMsg = err.Error()
		s.mu.Unlock()
		return err
	}
	return s.refetch(companyID)
}

// UpdateCall patches the cached call in place, then reconciles.
func (s *CallStore) UpdateCall(companyID, callID string, input models.CallInput) error {
	s.mu.Lock()
	idx, prev := s.findLocked(callID)
	if idx >= 0 {
		patched := prev
		patched.Title = input.Title
		patched.CallType = input.CallType
		patched.StartTime = input.StartTime
		patched.DurationMin = input.DurationMin
		patched.Agenda = input.Agenda
		patched.Reminder = input.Reminder
		s.calls[idx] = patched
	}
	s.mu.Unlock()

	if _, err := s.api.UpdateCall(companyID, callID, input); err != nil {
		s.mu.Lock()
		// The lock is released during the round-trip and a concurrent
		// fetch may have replaced the page, so the rollback re-resolves
		// the row by id instead of trusting the captured index.
		if i, _ := s.findLocked(callID); i >= 0 && idx >= 0 {
			s.calls[i] = prev
		}
		s.errMsg = err.Error()
		s.mu.Unlock()
		return err
	}
	return s.refetch(companyID)
}

// RescheduleCall moves only the start time.
func (s *CallStore) RescheduleCall(companyID, callID string, startTime time.Time) error {
	s.mu.Lock()
	idx, prev := s.findLocked(callID)
	if idx >= 0 {
		s.calls[idx].StartTime = startTime
	}
	s.mu.Unlock()

	if _, err := s.api.RescheduleCall(companyID, callID, startTime); err != nil {
		s.mu.Lock()
		if i, _ := s.findLocked(callID); i >= 0 && idx >= 0 {
			s.calls[i] = prev
		}
		s.errMsg = err.Error()
		s.mu.Unlock()
		return err
	}
	return s.refetch(companyID)
}

// DeleteCall removes the call optimistically and restores it if the
// backend refuses.
func (s *CallStore) DeleteCall(companyID, callID string) error {
	s.mu.Lock()
	idx, prev := s.findLocked(callID)
	if idx >= 0 {
		s.calls = append(s.calls[:idx], s.calls[idx+1:]...)
	}
	s.mu.Unlock()

	if err := s.api.DeleteCall(companyID, callID); err != nil {
		s.mu.Lock()
		if i, _ := s.findLocked(callID); i < 0 && idx >= 0 {
			if idx > len(s.calls) {
				idx = len(s.calls)
			}
			s.calls = append(s.calls[:idx], append([]models.Call{prev}, s.calls[idx:]...)...)
		}
		s.errMsg = err.Error()
		s.mu.Unlock()
		return err
	}
	return s.refetch(companyID)
}

// CallByID is a pure selector over the cached page.
func (s *CallStore) CallByID(callID string) (models.Call, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx, call := s.findLocked(callID)
	return call, idx >= 0
}

func (s *CallStore) Snapshot() CallSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return CallSnapshot{
		Calls:       append([]models.Call(nil), s.calls...),
		Total:       s.total,
		Page:        s.page,
		TotalPages:  s.totalPages,
		CurrentCall: s.currentCall,
		IsLoading:   s.isLoading,
		Error:       s.errMsg,
	}
}

// refetch re-runs the last listing fetch so the cache converges on the
// backend's authoritative state after a mutation.
func (s *CallStore) refetch(companyID string) error {
	s.mu.Lock()
	filter := s.lastFilter
	s.mu.Unlock()
	return s.FetchAllCalls(companyID, filter)
}

func (s *CallStore) findLocked(callID string) (int, models.Call) {
	for i, call := range s.calls {
		if call.ID == callID {
			return i, call
		}
	}
	return -1, models.Call{}
}

func (s *CallStore) removeLocked(callID string) {
	if idx, _ := s.findLocked(callID); idx >= 0 {
		s.calls = append(s.calls[:idx], s.calls[idx+1:]...)
	}
}
