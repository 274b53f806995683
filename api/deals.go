package api

import (
	"errors"
	"fmt"

	"github.com/valyala/fasthttp"

	"salesdesk/models"
)

// GetDealBoard returns the pipeline grouped into stage buckets. Bucket
// ordering and deal ordering within a bucket are whatever the backend
// returns.
func (c *Client) GetDealBoard(companyID string, filter models.DealFilter) (models.DealBoard, error) {
	var board models.DealBoard
	if companyID == "" {
		return board, errors.New("company id is required")
	}
	err := c.do(fasthttp.MethodGet, "/companies/"+companyID+"/deals/board", encodeDealFilter(filter), nil, &board)
	return board, err
}

func (c *Client) GetDeal(companyID, dealID string) (models.Deal, error) {
	var deal models.Deal
	if companyID == "" || dealID == "" {
		return deal, errors.New("company id and deal id are required")
	}
	err := c.do(fasthttp.MethodGet, "/companies/"+companyID+"/deals/"+dealID, "", nil, &deal)
	return deal, err
}

func (c *Client) CreateDeal(companyID string, input models.DealInput) (models.Deal, error) {
	var deal models.Deal
	if companyID == "" {
		return deal, errors.New("company id is required")
	}
	if err := c.do(fasthttp.MethodPost, "/companies/"+companyID+"/deals", "", input, &deal); err != nil {
		return deal, fmt.Errorf("could not create the deal: %w", err)
	}
	return deal, nil
}

func (c *Client) UpdateDeal(companyID, dealID string, input models.DealInput) (models.Deal, error) {
	var deal models.Deal
	if companyID == "" || dealID == "" {
		return deal, errors.New("company id and deal id are required")
	}
	err := c.do(fasthttp.MethodPut, "/companies/"+companyID+"/deals/"+dealID, "", input, &deal)
	return deal, err
}

// MoveDealStage drags a deal into another pipeline column.
func (c *Client) MoveDealStage(companyID, dealID, stage string) (models.Deal, error) {
	var deal models.Deal
	if companyID == "" || dealID == "" {
		return deal, errors.New("company id and deal id are required")
	}
	if stage == "" {
		return deal, errors.New("target stage is required")
	}
	body := map[string]string{"stage": stage}
	err := c.do(fasthttp.MethodPatch, "/companies/"+companyID+"/deals/"+dealID+"/stage", "", body, &deal)
	return deal, err
}

func (c *Client) DeleteDeal(companyID, dealID string) error {
	if companyID == "" || dealID == "" {
		return errors.New("company id and deal id are required")
	}
	return c.do(fasthttp.MethodDelete, "/companies/"+companyID+"/deals/"+dealID, "", nil, nil)
}
