package models

import "time"

// Meeting represents a scheduled meeting with one or more attendees
type Meeting struct {
	ID           string       `json:"_id"`
	CompanyID    string       `json:"companyId"`
	Title        string       `json:"title"`
	Location     string       `json:"location,omitempty"` // free text or meeting URL
	StartTime    time.Time    `json:"startTime"`
	EndTime      time.Time    `json:"endTime"`
	Status       string       `json:"status"` // scheduled, completed, canceled
	RelatedLead  Ref[Lead]    `json:"relatedLead,omitempty"`
	MeetingOwner Ref[Owner]   `json:"meetingOwner,omitempty"`
	Attendees    []Ref[Owner] `json:"attendees,omitempty"`
	Notes        string       `json:"notes,omitempty"` // detail response only
	Reminder     bool         `json:"reminder"`
	CreatedAt    time.Time    `json:"createdAt"`
}

func (m Meeting) EntityID() string { return m.ID }

// MeetingInput is the create/update payload for a meeting.
type MeetingInput struct {
	Title       string    `json:"title" validate:"required,max=200"`
	Location    string    `json:"location" validate:"omitempty,max=300"`
	StartTime   time.Time `json:"startTime" validate:"required"`
	EndTime     time.Time `json:"endTime" validate:"required"`
	LeadID      string    `json:"leadId,omitempty"`
	OwnerID     string    `json:"ownerId,omitempty"`
	AttendeeIDs []string  `json:"attendeeIds,omitempty"`
	Notes       string    `json:"notes"`
	Reminder    bool      `json:"reminder"`
}

// MeetingFilter narrows the meeting listing.
type MeetingFilter struct {
	Page   int
	Limit  int
	Search string
	Status string // scheduled, completed, canceled
	From   string // inclusive date bound, YYYY-MM-DD
	To     string
}

// MeetingPage is a single page of meetings plus pagination metadata.
type MeetingPage struct {
	Total      int       `json:"total"`
	Page       int       `json:"page"`
	TotalPages int       `json:"totalPages"`
	Meetings   []Meeting `json:"meetings"`
}
