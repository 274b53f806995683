package models

// Credentials is the login payload forwarded to the backend.
type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// Session is the backend's answer to a successful login or refresh
// exchange: the bearer pair plus the signed-in user.
type Session struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	User         User   `json:"user"`
}

// Notification is a foreground push delivery event fanned out to
// connected clients.
type Notification struct {
	Type       string `json:"type"` // call_reminder, meeting_reminder, deal_update, system
	Title      string `json:"title"`
	Body       string `json:"body,omitempty"`
	ResourceID string `json:"resourceId,omitempty"`
}

// DeviceRegistration registers a push delivery token with the provider
// through the backend.
type DeviceRegistration struct {
	Token    string `json:"token" validate:"required"`
	Platform string `json:"platform" validate:"required,oneof=web android ios"`
}
