package models

import "time"

// Lead represents a prospective customer owned by a company
type Lead struct {
	ID        string     `json:"_id"`
	CompanyID string     `json:"companyId"`
	FirstName string     `json:"firstName"`
	LastName  string     `json:"lastName"`
	Email     string     `json:"email"`
	Phone     string     `json:"phone,omitempty"`
	Account   string     `json:"account,omitempty"` // the lead's own organization
	Title     string     `json:"title,omitempty"`
	Status    string     `json:"status"` // new, contacted, qualified, unqualified, converted
	Source    string     `json:"source,omitempty"`
	LeadOwner Ref[Owner] `json:"leadOwner,omitempty"`
	Notes     string     `json:"notes,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

func (l Lead) EntityID() string { return l.ID }

// LeadInput is the create/update payload for a lead.
type LeadInput struct {
	FirstName string `json:"firstName" validate:"required,max=100"`
	LastName  string `json:"lastName" validate:"omitempty,max=100"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone" validate:"omitempty,max=20"`
	Account   string `json:"account" validate:"omitempty,max=200"`
	Title     string `json:"title" validate:"omitempty,max=100"`
	Status    string `json:"status" validate:"omitempty,oneof=new contacted qualified unqualified converted"`
	Source    string `json:"source" validate:"omitempty,max=100"`
	OwnerID   string `json:"ownerId,omitempty"`
	Notes     string `json:"notes"`
}

// LeadFilter narrows the lead listing.
type LeadFilter struct {
	Page   int
	Limit  int
	Search string
	Status string
	Source string
}

// LeadPage is a single page of leads plus pagination metadata.
type LeadPage struct {
	Total      int    `json:"total"`
	Page       int    `json:"page"`
	TotalPages int    `json:"totalPages"`
	Leads      []Lead `json:"leads"`
}
