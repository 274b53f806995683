package store

import (
	"log"

	"salesdesk/models"
)

// PlanAPI is the accessor surface the plan store drives.
type PlanAPI interface {
	GetPlans() ([]models.Plan, error)
}

// PriceResolver fills a plan's display price from the payment provider.
// A nil resolver leaves DisplayPrice empty.
type PriceResolver func(plan models.Plan) string

const planStoreKey = "store:plans"

// planPersist is the allow-listed slice of plan store state that
// survives reloads. Nothing else in the store is ever written out.
type planPersist struct {
	Plans          []models.Plan `json:"plans"`
	SelectedPlanID string        `json:"selectedPlanId,omitempty"`
}

// PlanSnapshot is what the presentation layer renders from.
type PlanSnapshot struct {
	Plans          []models.Plan `json:"plans"`
	SelectedPlanID string        `json:"selectedPlanId,omitempty"`
	IsLoading      bool          `json:"isLoading"`
	Error          string        `json:"error,omitempty"`
}

// PlanStore caches the plan catalog and remembers which plan the
// operator picked on the pricing page across reloads.
type PlanStore struct {
	base
	api     PlanAPI
	resolve PriceResolver
	persist Persister
	log     *log.Logger

	plans          []models.Plan
	selectedPlanID string
}

func NewPlanStore(api PlanAPI, persist Persister, resolve PriceResolver, logger *log.Logger) *PlanStore {
	s := &PlanStore{api: api, resolve: resolve, persist: persist, log: logger}
	var saved planPersist
	if loadJSON(persist, planStoreKey, &saved) {
		s.plans = saved.Plans
		s.selectedPlanID = saved.SelectedPlanID
	}
	return s
}

func (s *PlanStore) FetchPlans() error {
	seq := s.beginFetch()
	plans, err := s.api.GetPlans()
	if err == nil && s.resolve != nil {
		for i := range plans {
			plans[i].DisplayPrice = s.resolve(plans[i])
		}
	}
	return s.settleFetch(seq, err, func() {
		s.plans = plans
		s.persistLocked()
	})
}

// SelectPlan remembers the plan picked on the pricing page. Purely
// local; the upgrade itself goes through the subscription store.
func (s *PlanStore) SelectPlan(planID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedPlanID = planID
	s.persistLocked()
}

// PlanByID is a pure selector over the cached catalog.
func (s *PlanStore) PlanByID(planID string) (models.Plan, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, plan := range s.plans {
		if plan.ID == planID {
			return plan, true
		}
	}
	return models.Plan{}, false
}

// SelectedPlan resolves the remembered selection against the catalog.
func (s *PlanStore) SelectedPlan() (models.Plan, bool) {
	s.mu.Lock()
	id := s.selectedPlanID
	s.mu.Unlock()
	if id == "" {
		return models.Plan{}, false
	}
	return s.PlanByID(id)
}

func (s *PlanStore) Snapshot() PlanSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return PlanSnapshot{
		Plans:          append([]models.Plan(nil), s.plans...),
		SelectedPlanID: s.selectedPlanID,
		IsLoading:      s.isLoading,
		Error:          s.errMsg,
	}
}

func (s *PlanStore) persistLocked() {
	saveJSON(s.persist, planStoreKey, planPersist{
		Plans:          s.plans,
		SelectedPlanID: s.selectedPlanID,
	})
}
