package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
	"github.com/valyala/fasthttp"
)

// TokenSource supplies the bearer credential attached to every request.
// An empty string means no credential is available yet.
type TokenSource interface {
	AccessToken() string
}

// APIError is a failure the backend reported through its envelope. The
// Message is the backend's own wording when it sent one.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

// IsNotFound reports whether err is a backend 404.
func IsNotFound(err error) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.StatusCode == fasthttp.StatusNotFound
}

// envelope is the backend's uniform response wrapper. Some endpoints
// populate result, others data; payload() absorbs the inconsistency so
// accessors never have to.
type envelope struct {
	Success    *bool           `json:"success,omitempty"`
	Status     string          `json:"status,omitempty"`
	StatusCode int             `json:"statusCode,omitempty"`
	Message    string          `json:"message,omitempty"`
	Result     json.RawMessage `json:"result,omitempty"`
	Data       json.RawMessage `json:"data,omitempty"`
}

func (e *envelope) payload() json.RawMessage {
	if len(e.Result) > 0 {
		return e.Result
	}
	return e.Data
}

func (e *envelope) failed() bool {
	if e.Success != nil && !*e.Success {
		return true
	}
	return e.Status == "error" || e.Status == "fail"
}

// Client is the single request dispatcher every accessor goes through.
// It carries the base URL, attaches the bearer credential when present
// and normalizes the success/error envelope. No caching, no retries.
type Client struct {
	baseURL string
	http    *fasthttp.Client
	tokens  TokenSource
	log     *logrus.Entry
}

func NewClient(baseURL string, tokens TokenSource) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &fasthttp.Client{},
		tokens:  tokens,
		log:     logrus.WithField("component", "api"),
	}
}

// SetDial overrides the transport dial function. Used by tests to run
// against an in-memory listener.
func (c *Client) SetDial(dial fasthttp.DialFunc) {
	c.http.Dial = dial
}

// do performs one request and decodes the normalized payload into out.
// A nil out discards the payload. Endpoints that respond without an
// envelope payload are decoded from the raw body instead.
func (c *Client) do(method, path, query string, body, out interface{}) error {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	uri := c.baseURL + path
	if query != "" {
		uri += "?" + query
	}
	req.SetRequestURI(uri)
	req.Header.SetMethod(method)
	req.Header.SetContentType("application/json")
	req.Header.Set("Accept", "application/json")

	if c.tokens != nil {
		if token := c.tokens.AccessToken(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		req.SetBody(encoded)
	}

	if err := c.http.Do(req, resp); err != nil {
		sentry.CaptureException(err)
		c.log.WithFields(logrus.Fields{
			"method": method,
			"path":   path,
		}).WithError(err).Warn("request did not reach the server")
		return fmt.Errorf("unable to reach the server: %w", err)
	}

	status := resp.StatusCode()
	raw := resp.Body()

	var env envelope
	// A decode failure here just means the endpoint responded without an
	// envelope; the raw body is still usable below.
	_ = json.Unmarshal(raw, &env)

	if status < 200 || status > 299 || env.failed() {
		message := env.Message
		if message == "" {
			message = http.StatusText(status)
		}
		if message == "" {
			message = "request failed"
		}
		c.log.WithFields(logrus.Fields{
			"method": method,
			"path":   path,
			"status": status,
		}).Debug(message)
		return &APIError{StatusCode: status, Message: message}
	}

	if out == nil {
		return nil
	}

	payload := env.payload()
	if len(payload) == 0 {
		payload = raw
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return fmt.Errorf("failed to decode server response: %w", err)
	}
	return nil
}
