package api

import (
	"errors"
	"fmt"
	"time"

	"github.com/valyala/fasthttp"

	"salesdesk/models"
)

// GetAllCalls returns one page of the company's calls.
func (c *Client) GetAllCalls(companyID string, filter models.CallFilter) (models.CallPage, error) {
	var page models.CallPage
	if companyID == "" {
		return page, errors.New("company id is required")
	}
	err := c.do(fasthttp.MethodGet, "/companies/"+companyID+"/calls", encodeCallFilter(filter), nil, &page)
	return page, err
}

// GetCall returns the detail shape of a single call. Detail fields such
// as Outcome are only present here, never in the listing.
func (c *Client) GetCall(companyID, callID string) (models.Call, error) {
	var call models.Call
	if companyID == "" || callID == "" {
		return call, errors.New("company id and call id are required")
	}
	err := c.do(fasthttp.MethodGet, "/companies/"+companyID+"/calls/"+callID, "", nil, &call)
	return call, err
}

func (c *Client) CreateCall(companyID string, input models.CallInput) (models.Call, error) {
	var call models.Call
	if companyID == "" {
		return call, errors.New("company id is required")
	}
	if err := c.do(fasthttp.MethodPost, "/companies/"+companyID+"/calls", "", input, &call); err != nil {
		return call, fmt.Errorf("could not schedule the call: %w", err)
	}
	return call, nil
}

func (c *Client) UpdateCall(companyID, callID string, input models.CallInput) (models.Call, error) {
	var call models.Call
	if companyID == "" || callID == "" {
		return call, errors.New("company id and call id are required")
	}
	err := c.do(fasthttp.MethodPut, "/companies/"+companyID+"/calls/"+callID, "", input, &call)
	return call, err
}

// RescheduleCall moves an existing call to a new start time without
// touching the rest of its fields.
func (c *Client) RescheduleCall(companyID, callID string, startTime time.Time) (models.Call, error) {
	var call models.Call
	if companyID == "" || callID == "" {
		return call, errors.New("company id and call id are required")
	}
	body := map[string]interface{}{"startTime": startTime}
	err := c.do(fasthttp.MethodPatch, "/companies/"+companyID+"/calls/"+callID+"/reschedule", "", body, &call)
	return call, err
}

func (c *Client) DeleteCall(companyID, callID string) error {
	if companyID == "" || callID == "" {
		return errors.New("company id and call id are required")
	}
	return c.do(fasthttp.MethodDelete, "/companies/"+companyID+"/calls/"+callID, "", nil, nil)
}
