package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salesdesk/api"
	"salesdesk/models"
)

type fakeTemplateAPI struct {
	page models.TemplatePage

	updateErr error
	onUpdate  func()
	deleteErr error
	onDelete  func()
}

func (f *fakeTemplateAPI) GetTemplates(companyID string, filter models.TemplateFilter) (models.TemplatePage, error) {
	return f.page, nil
}

func (f *fakeTemplateAPI) GetTemplate(companyID, templateID string) (models.Template, error) {
	return models.Template{ID: templateID}, nil
}

func (f *fakeTemplateAPI) CreateTemplate(companyID string, input models.TemplateInput) (models.Template, error) {
	return models.Template{ID: "created", Name: input.Name}, nil
}

func (f *fakeTemplateAPI) UpdateTemplate(companyID, templateID string, input models.TemplateInput) (models.Template, error) {
	if f.onUpdate != nil {
		f.onUpdate()
	}
	if f.updateErr != nil {
		return models.Template{}, f.updateErr
	}
	return models.Template{ID: templateID, Name: input.Name}, nil
}

func (f *fakeTemplateAPI) DeleteTemplate(companyID, templateID string) error {
	if f.onDelete != nil {
		f.onDelete()
	}
	return f.deleteErr
}

func twoTemplatePage() models.TemplatePage {
	return models.TemplatePage{
		Total:      2,
		Page:       1,
		TotalPages: 1,
		Templates: []models.Template{
			{ID: "tpl-a", Name: "Intro email", Type: "email"},
			{ID: "tpl-b", Name: "Follow-up SMS", Type: "sms"},
		},
	}
}

func TestUpdateTemplateRollbackSurvivesConcurrentShrink(t *testing.T) {
	fake := &fakeTemplateAPI{page: twoTemplatePage()}
	s := NewTemplateStore(fake, testLogger())
	require.NoError(t, s.FetchTemplates("co-1", models.TemplateFilter{}))

	fake.updateErr = &api.APIError{StatusCode: 422, Message: "body too long"}
	fake.onUpdate = func() {
		fake.page = models.TemplatePage{}
		require.NoError(t, s.FetchTemplates("co-1", models.TemplateFilter{}))
	}

	require.Error(t, s.UpdateTemplate("co-1", "tpl-b", models.TemplateInput{Name: "x"}))

	assert.Empty(t, s.Snapshot().Templates, "rollback must not write into the replaced page")
	assert.Equal(t, "body too long", s.Err())
}

func TestDeleteTemplateRollbackSurvivesConcurrentShrink(t *testing.T) {
	fake := &fakeTemplateAPI{page: twoTemplatePage()}
	s := NewTemplateStore(fake, testLogger())
	require.NoError(t, s.FetchTemplates("co-1", models.TemplateFilter{}))

	fake.deleteErr = &api.APIError{StatusCode: 404, Message: "Template not found"}
	fake.onDelete = func() {
		fake.page = models.TemplatePage{}
		require.NoError(t, s.FetchTemplates("co-1", models.TemplateFilter{}))
	}

	require.Error(t, s.DeleteTemplate("co-1", "tpl-b"))

	tpl, found := s.TemplateByID("tpl-b")
	require.True(t, found, "the refused delete restores the row")
	assert.Equal(t, "Follow-up SMS", tpl.Name)
}
