package store

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salesdesk/models"
)

type fakePlanAPI struct {
	plans []models.Plan
	err   error
}

func (f *fakePlanAPI) GetPlans() ([]models.Plan, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.plans, nil
}

func testPlans() []models.Plan {
	return []models.Plan{
		{ID: "plan-free", Name: "free", Price: 0, Currency: "USD", Interval: "monthly"},
		{ID: "plan-grow", Name: "grow", Price: 4900, Currency: "USD", Interval: "monthly", StripePriceID: "price_123"},
	}
}

func TestPlansSurviveRestart(t *testing.T) {
	persist := NewMemoryPersister()
	fake := &fakePlanAPI{plans: testPlans()}

	s1 := NewPlanStore(fake, persist, nil, testLogger())
	require.NoError(t, s1.FetchPlans())
	s1.SelectPlan("plan-grow")

	// A fresh store over the same persister rehydrates without fetching.
	s2 := NewPlanStore(&fakePlanAPI{err: errors.New("backend down")}, persist, nil, testLogger())
	snap := s2.Snapshot()
	require.Len(t, snap.Plans, 2)
	assert.Equal(t, "plan-grow", snap.SelectedPlanID)

	selected, ok := s2.SelectedPlan()
	require.True(t, ok)
	assert.Equal(t, "grow", selected.Name)
}

func TestPersistedSliceIsAllowListed(t *testing.T) {
	persist := NewMemoryPersister()
	fake := &fakePlanAPI{plans: testPlans()}

	s := NewPlanStore(fake, persist, nil, testLogger())
	require.NoError(t, s.FetchPlans())

	// Poison the volatile fields; they must never reach the persister.
	fake.err = errors.New("transient failure")
	require.Error(t, s.FetchPlans())
	s.SelectPlan("plan-free")

	raw, ok := persist.Load(planStoreKey)
	require.True(t, ok)

	var stored map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &stored))
	for key := range stored {
		assert.Contains(t, []string{"plans", "selectedPlanId"}, key)
	}
}

func TestFetchFailureKeepsRehydratedPlans(t *testing.T) {
	persist := NewMemoryPersister()
	s1 := NewPlanStore(&fakePlanAPI{plans: testPlans()}, persist, nil, testLogger())
	require.NoError(t, s1.FetchPlans())

	s2 := NewPlanStore(&fakePlanAPI{err: errors.New("backend down")}, persist, nil, testLogger())
	require.Error(t, s2.FetchPlans())

	snap := s2.Snapshot()
	assert.Len(t, snap.Plans, 2, "rehydrated catalog survives a failed refresh")
	assert.Equal(t, "backend down", snap.Error)
}

func TestPriceResolverFillsDisplayPrice(t *testing.T) {
	resolver := func(plan models.Plan) string {
		if plan.IsFree() {
			return "Free"
		}
		return "$49.00/monthly"
	}

	s := NewPlanStore(&fakePlanAPI{plans: testPlans()}, NewMemoryPersister(), resolver, testLogger())
	require.NoError(t, s.FetchPlans())

	snap := s.Snapshot()
	assert.Equal(t, "Free", snap.Plans[0].DisplayPrice)
	assert.Equal(t, "$49.00/monthly", snap.Plans[1].DisplayPrice)
}
