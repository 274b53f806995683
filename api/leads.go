package api

import (
	"errors"
	"fmt"

	"github.com/valyala/fasthttp"

	"salesdesk/models"
)

// GetAllLeads returns one page of the company's leads.
func (c *Client) GetAllLeads(companyID string, filter models.LeadFilter) (models.LeadPage, error) {
	var page models.LeadPage
	if companyID == "" {
		return page, errors.New("company id is required")
	}
	err := c.do(fasthttp.MethodGet, "/companies/"+companyID+"/leads", encodeLeadFilter(filter), nil, &page)
	return page, err
}

func (c *Client) GetLead(companyID, leadID string) (models.Lead, error) {
	var lead models.Lead
	if companyID == "" || leadID == "" {
		return lead, errors.New("company id and lead id are required")
	}
	err := c.do(fasthttp.MethodGet, "/companies/"+companyID+"/leads/"+leadID, "", nil, &lead)
	return lead, err
}

func (c *Client) CreateLead(companyID string, input models.LeadInput) (models.Lead, error) {
	var lead models.Lead
	if companyID == "" {
		return lead, errors.New("company id is required")
	}
	if err := c.do(fasthttp.MethodPost, "/companies/"+companyID+"/leads", "", input, &lead); err != nil {
		return lead, fmt.Errorf("could not create the lead: %w", err)
	}
	return lead, nil
}

func (c *Client) UpdateLead(companyID, leadID string, input models.LeadInput) (models.Lead, error) {
	var lead models.Lead
	if companyID == "" || leadID == "" {
		return lead, errors.New("company id and lead id are required")
	}
	err := c.do(fasthttp.MethodPut, "/companies/"+companyID+"/leads/"+leadID, "", input, &lead)
	return lead, err
}

func (c *Client) DeleteLead(companyID, leadID string) error {
	if companyID == "" || leadID == "" {
		return errors.New("company id and lead id are required")
	}
	return c.do(fasthttp.MethodDelete, "/companies/"+companyID+"/leads/"+leadID, "", nil, nil)
}

// ConvertLead asks the backend to convert a qualified lead into a deal.
// The conversion rules live entirely server-side.
func (c *Client) ConvertLead(companyID, leadID string) (models.Deal, error) {
	var deal models.Deal
	if companyID == "" || leadID == "" {
		return deal, errors.New("company id and lead id are required")
	}
	err := c.do(fasthttp.MethodPost, "/companies/"+companyID+"/leads/"+leadID+"/convert", "", nil, &deal)
	return deal, err
}
