package api

import (
	"errors"
	"fmt"

	"github.com/valyala/fasthttp"

	"salesdesk/models"
)

// Login exchanges credentials for a session. The backend owns all
// authentication rules; a rejected login surfaces its message as-is.
func (c *Client) Login(creds models.Credentials) (models.Session, error) {
	var session models.Session
	err := c.do(fasthttp.MethodPost, "/auth/login", "", creds, &session)
	return session, err
}

// RefreshSession performs the caller-driven refresh exchange. It is
// never invoked automatically; the session owner decides when.
func (c *Client) RefreshSession(refreshToken string) (models.Session, error) {
	var session models.Session
	if refreshToken == "" {
		return session, errors.New("refresh token is required")
	}
	body := map[string]string{"refreshToken": refreshToken}
	if err := c.do(fasthttp.MethodPost, "/auth/refresh", "", body, &session); err != nil {
		return session, fmt.Errorf("session refresh failed: %w", err)
	}
	return session, nil
}

// Logout revokes the refresh token server-side. Best effort; an expired
// token is not an error worth surfacing.
func (c *Client) Logout(refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	return c.do(fasthttp.MethodPost, "/auth/logout", "", map[string]string{"refreshToken": refreshToken}, nil)
}

// RegisterDevice registers a push delivery token with the notification
// provider through the backend. Fire-and-forget from the caller's view.
func (c *Client) RegisterDevice(companyID string, reg models.DeviceRegistration) error {
	if companyID == "" {
		return errors.New("company id is required")
	}
	return c.do(fasthttp.MethodPost, "/companies/"+companyID+"/notifications/register", "", reg, nil)
}
