package models

import "time"

// Template is a reusable rich-text email/message template. The body is
// opaque editor HTML; this service never interprets it.
type Template struct {
	ID        string     `json:"_id"`
	CompanyID string     `json:"companyId"`
	Name      string     `json:"name"`
	Type      string     `json:"type"` // email, sms, note
	Subject   string     `json:"subject,omitempty"`
	Body      string     `json:"body"`
	CreatedBy Ref[Owner] `json:"createdBy,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

func (t Template) EntityID() string { return t.ID }

// TemplateInput is the create/update payload for a template.
type TemplateInput struct {
	Name    string `json:"name" validate:"required,max=100"`
	Type    string `json:"type" validate:"required,oneof=email sms note"`
	Subject string `json:"subject" validate:"omitempty,max=300"`
	Body    string `json:"body" validate:"required"`
}

// TemplateFilter narrows the template listing.
type TemplateFilter struct {
	Page   int
	Limit  int
	Search string
	Type   string // email, sms, note
}

// TemplatePage is a single page of templates plus pagination metadata.
type TemplatePage struct {
	Total      int        `json:"total"`
	Page       int        `json:"page"`
	TotalPages int        `json:"totalPages"`
	Templates  []Template `json:"templates"`
}
