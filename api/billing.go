package api

import (
	"errors"
	"fmt"

	"github.com/valyala/fasthttp"

	"salesdesk/models"
)

// GetPlans returns the catalog of subscription tiers. Plans are global,
// not company-scoped.
func (c *Client) GetPlans() ([]models.Plan, error) {
	var plans []models.Plan
	err := c.do(fasthttp.MethodGet, "/plans", "", nil, &plans)
	return plans, err
}

// GetSubscription returns the company's current subscription state.
func (c *Client) GetSubscription(companyID string) (models.Subscription, error) {
	var sub models.Subscription
	if companyID == "" {
		return sub, errors.New("company id is required")
	}
	err := c.do(fasthttp.MethodGet, "/companies/"+companyID+"/subscription", "", nil, &sub)
	return sub, err
}

// UpgradePlan asks the backend to move the company onto another plan.
// For a paid plan the result carries a hosted payment URL the caller
// must redirect to; the subscription transition itself happens
// server-side after payment.
func (c *Client) UpgradePlan(companyID, planID string) (models.UpgradeResult, error) {
	var result models.UpgradeResult
	if companyID == "" {
		return result, errors.New("company id is required")
	}
	if planID == "" {
		return result, errors.New("plan id is required")
	}
	body := map[string]string{"planId": planID}
	if err := c.do(fasthttp.MethodPost, "/companies/"+companyID+"/subscription/upgrade", "", body, &result); err != nil {
		return result, fmt.Errorf("plan upgrade failed: %w", err)
	}
	return result, nil
}

func (c *Client) CancelSubscription(companyID string) (models.Subscription, error) {
	var sub models.Subscription
	if companyID == "" {
		return sub, errors.New("company id is required")
	}
	err := c.do(fasthttp.MethodPost, "/companies/"+companyID+"/subscription/cancel", "", nil, &sub)
	return sub, err
}
