package models

import "time"

// SupportTicket is a help request raised by a company against the vendor
type SupportTicket struct {
	ID        string     `json:"_id"`
	CompanyID string     `json:"companyId"`
	Subject   string     `json:"subject"`
	Message   string     `json:"message"`
	Status    string     `json:"status"`   // open, in_progress, resolved, closed
	Priority  string     `json:"priority"` // low, medium, high
	RaisedBy  Ref[Owner] `json:"raisedBy,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

func (t SupportTicket) EntityID() string { return t.ID }

// TicketInput is the create payload for a support ticket.
type TicketInput struct {
	Subject  string `json:"subject" validate:"required,max=200"`
	Message  string `json:"message" validate:"required,max=5000"`
	Priority string `json:"priority" validate:"omitempty,oneof=low medium high"`
}

// TicketFilter narrows the ticket listing.
type TicketFilter struct {
	Page   int
	Limit  int
	Status string
}

// TicketPage is a single page of tickets plus pagination metadata.
type TicketPage struct {
	Total      int             `json:"total"`
	Page       int             `json:"page"`
	TotalPages int             `json:"totalPages"`
	Tickets    []SupportTicket `json:"tickets"`
}
