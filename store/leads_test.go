package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salesdesk/api"
	"salesdesk/models"
)

type fakeLeadAPI struct {
	page models.LeadPage

	convertErr error
	updateErr  error
	onUpdate   func()

	listCount    int
	convertCount int
}

func (f *fakeLeadAPI) GetAllLeads(companyID string, filter models.LeadFilter) (models.LeadPage, error) {
	f.listCount++
	return f.page, nil
}

func (f *fakeLeadAPI) GetLead(companyID, leadID string) (models.Lead, error) {
	return models.Lead{ID: leadID}, nil
}

func (f *fakeLeadAPI) CreateLead(companyID string, input models.LeadInput) (models.Lead, error) {
	return models.Lead{ID: "created", Email: input.Email}, nil
}

func (f *fakeLeadAPI) UpdateLead(companyID, leadID string, input models.LeadInput) (models.Lead, error) {
	if f.onUpdate != nil {
		f.onUpdate()
	}
	if f.updateErr != nil {
		return models.Lead{}, f.updateErr
	}
	return models.Lead{ID: leadID}, nil
}

func (f *fakeLeadAPI) DeleteLead(companyID, leadID string) error { return nil }

func (f *fakeLeadAPI) ConvertLead(companyID, leadID string) (models.Deal, error) {
	f.convertCount++
	if f.convertErr != nil {
		return models.Deal{}, f.convertErr
	}
	return models.Deal{ID: "deal-from-" + leadID, Stage: "qualification"}, nil
}

func leadPage() models.LeadPage {
	return models.LeadPage{
		Total: 1,
		Page:  1,
		Leads: []models.Lead{
			{ID: "lead-1", FirstName: "Ada", Email: "ada@acme.test", Status: "qualified"},
		},
	}
}

func TestConvertLeadReturnsDealAndRefetches(t *testing.T) {
	fake := &fakeLeadAPI{page: leadPage()}
	s := NewLeadStore(fake, testLogger())
	require.NoError(t, s.FetchAllLeads("co-1", models.LeadFilter{}))

	before := fake.listCount
	deal, err := s.ConvertLead("co-1", "lead-1")
	require.NoError(t, err)

	assert.Equal(t, "deal-from-lead-1", deal.ID)
	assert.Equal(t, 1, fake.convertCount)
	assert.Equal(t, before+1, fake.listCount)
}

func TestConvertLeadRollsBackStatusOnFailure(t *testing.T) {
	fake := &fakeLeadAPI{page: leadPage()}
	s := NewLeadStore(fake, testLogger())
	require.NoError(t, s.FetchAllLeads("co-1", models.LeadFilter{}))

	fake.convertErr = &api.APIError{StatusCode: 409, Message: "lead not qualified"}
	_, err := s.ConvertLead("co-1", "lead-1")
	require.Error(t, err)

	lead, found := s.LeadByID("lead-1")
	require.True(t, found)
	assert.Equal(t, "qualified", lead.Status, "optimistic converted status must be rolled back")
	assert.Equal(t, "lead not qualified", s.Err())
}

func TestUpdateLeadRollbackSurvivesConcurrentShrink(t *testing.T) {
	fake := &fakeLeadAPI{page: leadPage()}
	s := NewLeadStore(fake, testLogger())
	require.NoError(t, s.FetchAllLeads("co-1", models.LeadFilter{}))

	fake.updateErr = &api.APIError{StatusCode: 409, Message: "email already in use"}
	fake.onUpdate = func() {
		fake.page = models.LeadPage{}
		require.NoError(t, s.FetchAllLeads("co-1", models.LeadFilter{}))
	}

	require.Error(t, s.UpdateLead("co-1", "lead-1", models.LeadInput{
		FirstName: "Ada",
		Email:     "ada@acme.test",
	}))

	assert.Empty(t, s.Snapshot().Leads, "rollback must not write into the replaced page")
	assert.Equal(t, "email already in use", s.Err())
}

func TestAddLeadLowercasesEmailInOptimisticRow(t *testing.T) {
	fake := &fakeLeadAPI{page: leadPage()}
	s := NewLeadStore(fake, testLogger())

	require.NoError(t, s.AddLead("co-1", models.LeadInput{
		FirstName: "Grace",
		Email:     "Grace@Acme.Test",
	}))

	// Reconciled by refetch; the call itself must have succeeded once.
	assert.Equal(t, 1, fake.listCount)
}
