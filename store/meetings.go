package store

import (
	"log"
	"time"

	"github.com/google/uuid"

	"salesdesk/models"
)

// MeetingAPI is the accessor surface the meeting store drives.
type MeetingAPI interface {
	GetAllMeetings(companyID string, filter models.MeetingFilter) (models.MeetingPage, error)
	GetMeeting(companyID, meetingID string) (models.Meeting, error)
	CreateMeeting(companyID string, input models.MeetingInput) (models.Meeting, error)
	UpdateMeeting(companyID, meetingID string, input models.MeetingInput) (models.Meeting, error)
	RescheduleMeeting(companyID, meetingID string, start, end time.Time) (models.Meeting, error)
	DeleteMeeting(companyID, meetingID string) error
}

// MeetingSnapshot is what the presentation layer renders from.
type MeetingSnapshot struct {
	Meetings       []models.Meeting `json:"meetings"`
	Total          int              `json:"total"`
	Page           int              `json:"page"`
	TotalPages     int              `json:"totalPages"`
	CurrentMeeting *models.Meeting  `json:"currentMeeting,omitempty"`
	IsLoading      bool             `json:"isLoading"`
	Error          string           `json:"error,omitempty"`
}

// MeetingStore caches the company's meetings.
type MeetingStore struct {
	base
	api MeetingAPI
	log *log.Logger

	meetings       []models.Meeting
	total          int
	page           int
	totalPages     int
	currentMeeting *models.Meeting

	lastFilter models.MeetingFilter
}

func NewMeetingStore(api MeetingAPI, logger *log.Logger) *MeetingStore {
	return &MeetingStore{api: api, log: logger}
}

func (s *MeetingStore) FetchAllMeetings(companyID string, filter models.MeetingFilter) error {
	s.mu.Lock()
	s.lastFilter = filter
	s.mu.Unlock()

	seq := s.beginFetch()
	page, err := s.api.GetAllMeetings(companyID, filter)
	return s.settleFetch(seq, err, func() {
		s.meetings = page.Meetings
		s.total = page.Total
		s.page = page.Page
		s.totalPages = page.TotalPages
	})
}

func (s *MeetingStore) FetchMeeting(companyID, meetingID string) error {
	seq := s.beginFetch()
	meeting, err := s.api.GetMeeting(companyID, meetingID)
	return s.settleFetch(seq, err, func() {
		s.currentMeeting = &meeting
	})
}

func (s *MeetingStore) AddMeeting(companyID string, input models.MeetingInput) error {
	optimistic := models.Meeting{
		ID:        "pending-" + uuid.NewString(),
		CompanyID: companyID,
		Title:     input.Title,
		Location:  input.Location,
		StartTime: input.StartTime,
		EndTime:   input.EndTime,
		Status:    "scheduled",
		Reminder:  input.Reminder,
	}
	s.mu.Lock()
	s.meetings = append(s.meetings, optimistic)
	s.mu.Unlock()

	if _, err := s.api.CreateMeeting(companyID, input); err != nil {
		s.mu.Lock()
		if idx, _ := s.findLocked(optimistic.ID); idx >= 0 {
			s.meetings = append(s.meetings[:idx], s.meetings[idx+1:]...)
		}
		s.errMsg = err.Error()
		s.mu.Unlock()
		return err
	}
	return s.refetch(companyID)
}

func (s *MeetingStore) UpdateMeeting(companyID, meetingID string, input models.MeetingInput) error {
	s.mu.Lock()
	idx, prev := s.findLocked(meetingID)
	if idx >= 0 {
		patched := prev
		patched.Title = input.Title
		patched.Location = input.Location
		patched.StartTime = input.StartTime
		patched.EndTime = input.EndTime
		patched.Reminder = input.Reminder
		s.meetings[idx] = patched
	}
	s.mu.Unlock()

	if _, err := s.api.UpdateMeeting(companyID, meetingID, input); err != nil {
		s.mu.Lock()
		// Re-resolve by id: a concurrent fetch may have replaced the
		// page while the lock was released.
		if i, _ := s.findLocked(meetingID); i >= 0 && idx >= 0 {
			s.meetings[i] = prev
		}
		s.errMsg = err.Error()
		s.mu.Unlock()
		return err
	}
	return s.refetch(companyID)
}

func (s *MeetingStore) RescheduleMeeting(companyID, meetingID string, start, end time.Time) error {
	s.mu.Lock()
	idx, prev := s.findLocked(meetingID)
	if idx >= 0 {
		s.meetings[idx].StartTime = start
		s.meetings[idx].EndTime = end
	}
	s.mu.Unlock()

	if _, err := s.api.RescheduleMeeting(companyID, meetingID, start, end); err != nil {
		s.mu.Lock()
		if i, _ := s.findLocked(meetingID); i >= 0 && idx >= 0 {
			s.meetings[i] = prev
		}
		s.errMsg = err.Error()
		s.mu.Unlock()
		return err
	}
	return s.refetch(companyID)
}

func (s *MeetingStore) DeleteMeeting(companyID, meetingID string) error {
	s.mu.Lock()
	idx, prev := s.findLocked(meetingID)
	if idx >= 0 {
		s.meetings = append(s.meetings[:idx], s.meetings[idx+1:]...)
	}
	s.mu.Unlock()

	if err := s.api.DeleteMeeting(companyID, meetingID); err != nil {
		s.mu.Lock()
		if i, _ := s.findLocked(meetingID); i < 0 && idx >= 0 {
			if idx > len(s.meetings) {
				idx = len(s.meetings)
			}
			s.meetings = append(s.meetings[:idx], append([]models.Meeting{prev}, s.meetings[idx:]...)...)
		}
		s.errMsg = err.Error()
		s.mu.Unlock()
		return err
	}
	return s.refetch(companyID)
}

// MeetingByID is a pure selector over the cached page.
func (s *MeetingStore) MeetingByID(meetingID string) (models.Meeting, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx, meeting := s.findLocked(meetingID)
	return meeting, idx >= 0
}

func (s *MeetingStore) Snapshot() MeetingSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return MeetingSnapshot{
		Meetings:       append([]models.Meeting(nil), s.meetings...),
		Total:          s.total,
		Page:           s.page,
		TotalPages:     s.totalPages,
		CurrentMeeting: s.currentMeeting,
		IsLoading:      s.isLoading,
		Error:          s.errMsg,
	}
}

func (s *MeetingStore) refetch(companyID string) error {
	s.mu.Lock()
	filter := s.lastFilter
	s.mu.Unlock()
	return s.FetchAllMeetings(companyID, filter)
}

func (s *MeetingStore) findLocked(meetingID string) (int, models.Meeting) {
	for i, meeting := range s.meetings {
		if meeting.ID == meetingID {
			return i, meeting
		}
	}
	return -1, models.Meeting{}
}
