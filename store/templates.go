package store

import (
	"log"
	"time"

	"github.com/google/uuid"

	"salesdesk/models"
)

// TemplateAPI is the accessor surface the template store drives.
type TemplateAPI interface {
	GetTemplates(companyID string, filter models.TemplateFilter) (models.TemplatePage, error)
	GetTemplate(companyID, templateID string) (models.Template, error)
	CreateTemplate(companyID string, input models.TemplateInput) (models.Template, error)
	UpdateTemplate(companyID, templateID string, input models.TemplateInput) (models.Template, error)
	DeleteTemplate(companyID, templateID string) error
}

// TemplateSnapshot is what the presentation layer renders from.
type TemplateSnapshot struct {
	Templates       []models.Template `json:"templates"`
	Total           int               `json:"total"`
	Page            int               `json:"page"`
	TotalPages      int               `json:"totalPages"`
	CurrentTemplate *models.Template  `json:"currentTemplate,omitempty"`
	IsLoading       bool              `json:"isLoading"`
	Error           string            `json:"error,omitempty"`
}

// TemplateStore caches the company's message templates.
type TemplateStore struct {
	base
	api TemplateAPI
	log *log.Logger

	templates       []models.Template
	total           int
	page            int
	totalPages      int
	currentTemplate *models.Template

	lastFilter models.TemplateFilter
}

func NewTemplateStore(api TemplateAPI, logger *log.Logger) *TemplateStore {
	return &TemplateStore{api: api, log: logger}
}

func (s *TemplateStore) FetchTemplates(companyID string, filter models.TemplateFilter) error {
	s.mu.Lock()
	s.lastFilter = filter
	s.mu.Unlock()

	seq := s.beginFetch()
	page, err := s.api.GetTemplates(companyID, filter)
	return s.settleFetch(seq, err, func() {
		s.templates = page.Templates
		s.total = page.Total
		s.page = page.Page
		s.totalPages = page.TotalPages
	})
}

func (s *TemplateStore) FetchTemplate(companyID, templateID string) error {
	seq := s.beginFetch()
	tpl, err := s.api.GetTemplate(companyID, templateID)
	return s.settleFetch(seq, err, func() {
		s.currentTemplate = &tpl
	})
}

func (s *TemplateStore) AddTemplate(companyID string, input models.TemplateInput) error {
	optimistic := models.Template{
		ID:        "pending-" + uuid.NewString(),
		CompanyID: companyID,
		Name:      input.Name,
		Type:      input.Type,
		Subject:   input.Subject,
		Body:      input.Body,
		CreatedAt: time.Now(),
	}
	s.mu.Lock()
	s.templates = append(s.templates, optimistic)
	s.mu.Unlock()

	if _, err := s.api.CreateTemplate(companyID, input); err != nil {
		s.mu.Lock()
		if idx, _ := s.findLocked(optimistic.ID); idx >= 0 {
			s.templates = append(s.templates[:idx], s.templates[idx+1:]...)
		}
		s.errMsg = err.Error()
		s.mu.Unlock()
		return err
	}
	return s.refetch(companyID)
}

func (s *TemplateStore) UpdateTemplate(companyID, templateID string, input models.TemplateInput) error {
	s.mu.Lock()
	idx, prev := s.findLocked(templateID)
	if idx >= 0 {
		patched := prev
		patched.Name = input.Name
		patched.Type = input.Type
		patched.Subject = input.Subject
		patched.Body = input.Body
		s.templates[idx] = patched
	}
	s.mu.Unlock()

	if _, err := s.api.UpdateTemplate(companyID, templateID, input); err != nil {
		s.mu.Lock()
		// Re-resolve by id: a concurrent fetch may have replaced the
		// page while the lock was released.
		if i, _ := s.findLocked(templateID); i >= 0 && idx >= 0 {
			s.templates[i] = prev
		}
		s.errMsg = err.Error()
		s.mu.Unlock()
		return err
	}
	return s.refetch(companyID)
}

func (s *TemplateStore) DeleteTemplate(companyID, templateID string) error {
	s.mu.Lock()
	idx, prev := s.findLocked(templateID)
	if idx >= 0 {
		s.templates = append(s.templates[:idx], s.templates[idx+1:]...)
	}
	s.mu.Unlock()

	if err := s.api.DeleteTemplate(companyID, templateID); err != nil {
		s.mu.Lock()
		if i, _ := s.findLocked(templateID); i < 0 && idx >= 0 {
			if idx > len(s.templates) {
				idx = len(s.templates)
			}
			s.templates = append(s.templates[:idx], append([]models.Template{prev}, s.templates[idx:]...)...)
		}
		s.errMsg = err.Error()
		s.mu.Unlock()
		return err
	}
	return s.refetch(companyID)
}

// TemplateByID is a pure selector over the cached page.
func (s *TemplateStore) TemplateByID(templateID string) (models.Template, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx, tpl := s.findLocked(templateID)
	return tpl, idx >= 0
}

func (s *TemplateStore) Snapshot() TemplateSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return TemplateSnapshot{
		Templates:       append([]models.Template(nil), s.templates...),
		Total:           s.total,
		Page:            s.page,
		TotalPages:      s.totalPages,
		CurrentTemplate: s.currentTemplate,
		IsLoading:       s.isLoading,
		Error:           s.errMsg,
	}
}

func (s *TemplateStore) refetch(companyID string) error {
	s.mu.Lock()
	filter := s.lastFilter
	s.mu.Unlock()
	return s.FetchTemplates(companyID, filter)
}

func (s *TemplateStore) findLocked(templateID string) (int, models.Template) {
	for i, tpl := range s.templates {
		if tpl.ID == templateID {
			return i, tpl
		}
	}
	return -1, models.Template{}
}
