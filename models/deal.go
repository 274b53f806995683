package models

import "time"

// Deal represents a sales opportunity moving through pipeline stages
type Deal struct {
	ID          string     `json:"_id"`
	CompanyID   string     `json:"companyId"`
	Title       string     `json:"title"`
	Amount      int64      `json:"amount"` // in cents
	Currency    string     `json:"currency"`
	Stage       string     `json:"stage"` // qualification, proposal, negotiation, closed_won, closed_lost
	Probability int        `json:"probability,omitempty"`
	CloseDate   *time.Time `json:"closeDate,omitempty"`
	RelatedLead Ref[Lead]  `json:"relatedLead,omitempty"`
	DealOwner   Ref[Owner] `json:"dealOwner,omitempty"`
	Notes       string     `json:"notes,omitempty"` // detail response only
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

func (d Deal) EntityID() string { return d.ID }

// StageBucket is one pipeline column: a stage name plus the deals the
// backend grouped into it. Ordering within a bucket is whatever the
// backend returned.
type StageBucket struct {
	Stage string `json:"stage"`
	Deals []Deal `json:"deals"`
}

// DealBoard is the full pipeline view grouped by stage.
type DealBoard struct {
	Stages     []StageBucket `json:"stages"`
	TotalValue int64         `json:"totalValue"`
}

// DealInput is the create/update payload for a deal.
type DealInput struct {
	Title       string     `json:"title" validate:"required,max=200"`
	Amount      int64      `json:"amount" validate:"omitempty,min=0"`
	Currency    string     `json:"currency" validate:"omitempty,len=3"`
	Stage       string     `json:"stage" validate:"omitempty,oneof=qualification proposal negotiation closed_won closed_lost"`
	Probability int        `json:"probability" validate:"omitempty,min=0,max=100"`
	CloseDate   *time.Time `json:"closeDate,omitempty"`
	LeadID      string     `json:"leadId,omitempty"`
	OwnerID     string     `json:"ownerId,omitempty"`
	Notes       string     `json:"notes"`
}

// DealFilter narrows the deal listing.
type DealFilter struct {
	Page    int
	Limit   int
	Search  string
	Stage   string
	OwnerID string
}
