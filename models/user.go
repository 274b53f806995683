package models

import "time"

// Owner is the slim user shape embedded in other resources. List
// responses may carry only these fields even when the detail response
// has the full User.
type Owner struct {
	ID        string `json:"_id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

func (o Owner) EntityID() string { return o.ID }

// User represents a CRM account member within a company
type User struct {
	ID          string     `json:"_id"`
	CompanyID   string     `json:"companyId"`
	FirstName   string     `json:"firstName"`
	LastName    string     `json:"lastName"`
	Email       string     `json:"email"`
	Phone       string     `json:"phone,omitempty"`
	Role        string     `json:"role"` // admin, manager, agent
	Manager     Ref[Owner] `json:"manager,omitempty"`
	IsActive    bool       `json:"isActive"`
	AvatarURL   string     `json:"avatarUrl,omitempty"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

func (u User) EntityID() string { return u.ID }

// Company is the tenant profile. A subset of it survives reloads via the
// store persistence layer.
type Company struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Domain    string    `json:"domain,omitempty"`
	Industry  string    `json:"industry,omitempty"`
	Address   string    `json:"address,omitempty"`
	City      string    `json:"city,omitempty"`
	Country   string    `json:"country,omitempty"`
	LogoURL   string    `json:"logoUrl,omitempty"`
	PlanID    string    `json:"planId,omitempty"`
	Seats     int       `json:"seats"`
	CreatedAt time.Time `json:"createdAt"`
}

// UserInput is the create/update payload for admin user management.
type UserInput struct {
	FirstName string `json:"firstName" validate:"required,max=100"`
	LastName  string `json:"lastName" validate:"omitempty,max=100"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone" validate:"omitempty,max=20"`
	Role      string `json:"role" validate:"required,oneof=admin manager agent"`
	ManagerID string `json:"managerId,omitempty"`
}

// UserFilter narrows the admin user listing. Absent fields are omitted
// from the query string, not sent empty.
type UserFilter struct {
	Page   int
	Limit  int
	Search string
	Role   string // admin, manager, agent
}

// UserPage is a single page of users plus pagination metadata.
type UserPage struct {
	Total      int    `json:"total"`
	Page       int    `json:"page"`
	TotalPages int    `json:"totalPages"`
	Users      []User `json:"users"`
}

// CompanyInput is the update payload for the tenant profile.
type CompanyInput struct {
	Name     string `json:"name" validate:"required,max=200"`
	Domain   string `json:"domain" validate:"omitempty,max=200"`
	Industry string `json:"industry" validate:"omitempty,max=100"`
	Address  string `json:"address" validate:"omitempty,max=300"`
	City     string `json:"city" validate:"omitempty,max=100"`
	Country  string `json:"country" validate:"omitempty,max=100"`
	LogoURL  string `json:"logoUrl" validate:"omitempty,url"`
}
