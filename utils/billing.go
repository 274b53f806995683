package utils

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/price"

	"salesdesk/models"
)

// GetStripePrice retrieves a price from Stripe with proper error handling
func GetStripePrice(priceID string) (*stripe.Price, error) {
	if priceID == "" {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Price ID is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	p, err := price.Get(priceID, &stripe.PriceParams{
		Params: stripe.Params{
			Context: ctx,
		},
	})
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve price information")
	}

	return p, nil
}

// PlanDisplayPrice resolves what the pricing page should print for a
// plan. The Stripe price is authoritative when the plan carries a price
// id; the cached backend amount is the fallback so the page still
// renders when Stripe is unreachable.
func PlanDisplayPrice(plan models.Plan) string {
	if plan.IsFree() {
		return "Free"
	}
	if plan.StripePriceID != "" {
		if p, err := GetStripePrice(plan.StripePriceID); err == nil && p.UnitAmount > 0 {
			return FormatAmount(p.UnitAmount, string(p.Currency)) + "/" + plan.Interval
		}
	}
	return FormatAmount(plan.Price, plan.Currency) + "/" + plan.Interval
}
