package api

import (
	"errors"

	"github.com/valyala/fasthttp"

	"salesdesk/models"
)

// GetTickets returns one page of the company's support tickets.
func (c *Client) GetTickets(companyID string, filter models.TicketFilter) (models.TicketPage, error) {
	var page models.TicketPage
	if companyID == "" {
		return page, errors.New("company id is required")
	}
	err := c.do(fasthttp.MethodGet, "/companies/"+companyID+"/tickets", encodeTicketFilter(filter), nil, &page)
	return page, err
}

func (c *Client) CreateTicket(companyID string, input models.TicketInput) (models.SupportTicket, error) {
	var ticket models.SupportTicket
	if companyID == "" {
		return ticket, errors.New("company id is required")
	}
	err := c.do(fasthttp.MethodPost, "/companies/"+companyID+"/tickets", "", input, &ticket)
	return ticket, err
}

func (c *Client) CloseTicket(companyID, ticketID string) (models.SupportTicket, error) {
	var ticket models.SupportTicket
	if companyID == "" || ticketID == "" {
		return ticket, errors.New("company id and ticket id are required")
	}
	err := c.do(fasthttp.MethodPatch, "/companies/"+companyID+"/tickets/"+ticketID+"/close", "", nil, &ticket)
	return ticket, err
}
