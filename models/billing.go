package models

import "time"

// Plan represents a subscription tier offered to companies
type Plan struct {
	ID          string   `json:"_id"`
	Name        string   `json:"name"` // free, starter, grow, enterprise
	Description string   `json:"description,omitempty"`
	Price       int64    `json:"price"` // in cents, 0 for the free tier
	Currency    string   `json:"currency"`
	Interval    string   `json:"interval"` // monthly, yearly
	MaxUsers    int      `json:"maxUsers"`
	MaxLeads    int      `json:"maxLeads"`
	Features    []string `json:"features,omitempty"`
	IsPopular   bool     `json:"isPopular"`

	StripePriceID string `json:"stripePriceId,omitempty"`

	// DisplayPrice is filled client-side from the Stripe price lookup,
	// never sent by the backend.
	DisplayPrice string `json:"displayPrice,omitempty"`
}

func (p Plan) EntityID() string { return p.ID }

// IsFree reports whether upgrading to this plan skips the payment redirect.
func (p Plan) IsFree() bool { return p.Price == 0 }

// Subscription is the company's current subscription state, owned and
// transitioned entirely by the backend.
type Subscription struct {
	ID               string     `json:"_id"`
	CompanyID        string     `json:"companyId"`
	PlanID           string     `json:"planId"`
	Status           string     `json:"status"` // active, trialing, past_due, canceled
	CurrentPeriodEnd *time.Time `json:"currentPeriodEnd,omitempty"`
	CancelAtEnd      bool       `json:"cancelAtPeriodEnd"`
	CreatedAt        time.Time  `json:"createdAt"`
}

// UpgradeResult is the backend's answer to an upgrade request: either the
// new subscription directly (free plan) or a hosted payment URL the
// caller must redirect to.
type UpgradeResult struct {
	Subscription *Subscription `json:"subscription,omitempty"`
	PaymentURL   string        `json:"paymentUrl,omitempty"`
}
