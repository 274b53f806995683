package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"salesdesk/store"
	"salesdesk/utils"
)

// BillingController serves the pricing page and subscription screen.
type BillingController struct {
	Plans        *store.PlanStore
	Subscription *store.SubscriptionStore
	Logger       *log.Logger
}

func NewBillingController(plans *store.PlanStore, subscription *store.SubscriptionStore, logger *log.Logger) *BillingController {
	return &BillingController{
		Plans:        plans,
		Subscription: subscription,
		Logger:       logger,
	}
}

// ListPlans refreshes the catalog, display prices included.
func (bc *BillingController) ListPlans(c *fiber.Ctx) error {
	if err := bc.Plans.FetchPlans(); err != nil {
		return storeError(c, err)
	}
	return c.JSON(utils.SuccessResponse(bc.Plans.Snapshot()))
}

// SelectPlan remembers the operator's pick so the checkout screen can
// render it even after a reload.
func (bc *BillingController) SelectPlan(c *fiber.Ctx) error {
	planID := c.Params("id")
	if _, ok := bc.Plans.PlanByID(planID); !ok {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Plan not found", nil)
	}
	bc.Plans.SelectPlan(planID)
	return c.JSON(utils.SuccessResponse(bc.Plans.Snapshot()))
}

func (bc *BillingController) GetSubscription(c *fiber.Ctx) error {
	if err := bc.Subscription.FetchSubscription(companyID(c)); err != nil {
		return storeError(c, err)
	}
	return c.JSON(utils.SuccessResponse(bc.Subscription.Snapshot()))
}

// Upgrade starts a plan change and answers with where to send the
// operator next: the payment provider's checkout for paid plans, the
// success screen for the free tier.
func (bc *BillingController) Upgrade(c *fiber.Ctx) error {
	var input struct {
		PlanID string `json:"planId" validate:"required"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if err := utils.ValidateStruct(input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
	}

	redirect, err := bc.Subscription.Upgrade(companyID(c), input.PlanID)
	if err != nil {
		return storeError(c, err)
	}
	bc.Logger.Printf("upgrade started for plan %s, redirecting to %s", input.PlanID, redirect)
	return c.JSON(utils.SuccessResponse(fiber.Map{"redirectTo": redirect}))
}

func (bc *BillingController) CancelSubscription(c *fiber.Ctx) error {
	if err := bc.Subscription.Cancel(companyID(c)); err != nil {
		return storeError(c, err)
	}
	return c.JSON(utils.SuccessResponse(bc.Subscription.Snapshot()))
}
