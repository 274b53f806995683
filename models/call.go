package models

import "time"

// Call represents a scheduled or logged phone call against a lead
type Call struct {
	ID          string     `json:"_id"`
	CompanyID   string     `json:"companyId"`
	Title       string     `json:"title"`
	CallType    string     `json:"callType"` // outbound, inbound
	Status      string     `json:"status"`   // scheduled, completed, canceled, missed
	StartTime   time.Time  `json:"startTime"`
	DurationMin int        `json:"durationMin,omitempty"`
	RelatedLead Ref[Lead]  `json:"relatedLead,omitempty"`
	CallOwner   Ref[Owner] `json:"callOwner,omitempty"`
	Agenda      string     `json:"agenda,omitempty"`
	Outcome     string     `json:"outcome,omitempty"` // detail response only
	Reminder    bool       `json:"reminder"`
	CreatedAt   time.Time  `json:"createdAt"`
}

func (c Call) EntityID() string { return c.ID }

// CallInput is the create/update payload for a call.
type CallInput struct {
	Title       string    `json:"title" validate:"required,max=200"`
	CallType    string    `json:"callType" validate:"required,oneof=outbound inbound"`
	StartTime   time.Time `json:"startTime" validate:"required"`
	DurationMin int       `json:"durationMin" validate:"omitempty,min=0"`
	LeadID      string    `json:"leadId,omitempty"`
	OwnerID     string    `json:"ownerId,omitempty"`
	Agenda      string    `json:"agenda"`
	Reminder    bool      `json:"reminder"`
}

// CallFilter narrows the call listing.
type CallFilter struct {
	Page     int
	Limit    int
	Search   string
	CallType string // outbound, inbound
	Status   string // scheduled, completed, canceled, missed
}

// CallPage is a single page of calls plus pagination metadata.
type CallPage struct {
	Total      int    `json:"total"`
	Page       int    `json:"page"`
	TotalPages int    `json:"totalPages"`
	Calls      []Call `json:"calls"`
}
