package store

import (
	"fmt"
	"log"

	"salesdesk/models"
)

// SubscriptionAPI is the accessor surface the subscription store drives.
type SubscriptionAPI interface {
	GetSubscription(companyID string) (models.Subscription, error)
	UpgradePlan(companyID, planID string) (models.UpgradeResult, error)
	CancelSubscription(companyID string) (models.Subscription, error)
}

// BillingSuccessPath is where the operator lands after a free-tier
// upgrade, which never touches the payment provider.
const BillingSuccessPath = "/billing/success"

// SubscriptionSnapshot is what the presentation layer renders from.
type SubscriptionSnapshot struct {
	Subscription *models.Subscription `json:"subscription,omitempty"`
	IsLoading    bool                 `json:"isLoading"`
	Error        string               `json:"error,omitempty"`
}

// SubscriptionStore caches the company's current subscription.
type SubscriptionStore struct {
	base
	api SubscriptionAPI
	log *log.Logger

	subscription *models.Subscription
}

func NewSubscriptionStore(api SubscriptionAPI, logger *log.Logger) *SubscriptionStore {
	return &SubscriptionStore{api: api, log: logger}
}

func (s *SubscriptionStore) FetchSubscription(companyID string) error {
	seq := s.beginFetch()
	sub, err := s.api.GetSubscription(companyID)
	return s.settleFetch(seq, err, func() {
		s.subscription = &sub
	})
}

// Upgrade moves the company onto another plan and returns where the
// operator should be sent next: the payment provider's hosted page for a
// paid plan, or straight to the success screen for the free tier. No
// optimistic patch here; the backend owns every subscription transition.
func (s *SubscriptionStore) Upgrade(companyID, planID string) (string, error) {
	result, err := s.api.UpgradePlan(companyID, planID)
	if err != nil {
		s.recordErr(err)
		return "", err
	}
	if result.PaymentURL != "" {
		return result.PaymentURL, nil
	}
	if result.Subscription == nil {
		err := fmt.Errorf("upgrade response carried neither a subscription nor a payment url")
		s.recordErr(err)
		return "", err
	}
	s.mu.Lock()
	s.subscription = result.Subscription
	s.errMsg = ""
	s.mu.Unlock()
	return BillingSuccessPath, nil
}

func (s *SubscriptionStore) Cancel(companyID string) error {
	sub, err := s.api.CancelSubscription(companyID)
	if err != nil {
		s.recordErr(err)
		return err
	}
	s.mu.Lock()
	s.subscription = &sub
	s.errMsg = ""
	s.mu.Unlock()
	return nil
}

func (s *SubscriptionStore) Subscription() (models.Subscription, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.subscription == nil {
		return models.Subscription{}, false
	}
	return *s.subscription, true
}

func (s *SubscriptionStore) Snapshot() SubscriptionSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return SubscriptionSnapshot{
		Subscription: s.subscription,
		IsLoading:    s.isLoading,
		Error:        s.errMsg,
	}
}
