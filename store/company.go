package store

import (
	"log"

	"salesdesk/models"
)

// CompanyAPI is the accessor surface the company store drives.
type CompanyAPI interface {
	GetCompany(companyID string) (models.Company, error)
	UpdateCompany(companyID string, input models.CompanyInput) (models.Company, error)
}

const companyStoreKey = "store:company"

// companyPersist is the allow-listed slice of company state that
// survives reloads.
type companyPersist struct {
	Company *models.Company `json:"company,omitempty"`
}

// CompanySnapshot is what the presentation layer renders from.
type CompanySnapshot struct {
	Company   *models.Company `json:"company,omitempty"`
	IsLoading bool            `json:"isLoading"`
	Error     string          `json:"error,omitempty"`
}

// CompanyStore caches the operator's company profile. The profile is
// persisted so the settings screen renders before the first fetch lands.
type CompanyStore struct {
	base
	api     CompanyAPI
	persist Persister
	log     *log.Logger

	company *models.Company
}

func NewCompanyStore(api CompanyAPI, persist Persister, logger *log.Logger) *CompanyStore {
	s := &CompanyStore{api: api, persist: persist, log: logger}
	var saved companyPersist
	if loadJSON(persist, companyStoreKey, &saved) {
		s.company = saved.Company
	}
	return s
}

func (s *CompanyStore) FetchCompany(companyID string) error {
	seq := s.beginFetch()
	company, err := s.api.GetCompany(companyID)
	return s.settleFetch(seq, err, func() {
		s.company = &company
		s.persistLocked()
	})
}

func (s *CompanyStore) UpdateCompany(companyID string, input models.CompanyInput) error {
	s.mu.Lock()
	prev := s.company
	if prev != nil {
		patched := *prev
		patched.Name = input.Name
		patched.Domain = input.Domain
		patched.Industry = input.Industry
		patched.Address = input.Address
		patched.City = input.City
		patched.Country = input.Country
		patched.LogoURL = input.LogoURL
		s.company = &patched
	}
	s.mu.Unlock()

	if _, err := s.api.UpdateCompany(companyID, input); err != nil {
		s.mu.Lock()
		s.company = prev
		s.errMsg = err.Error()
		s.mu.Unlock()
		return err
	}
	return s.FetchCompany(companyID)
}

func (s *CompanyStore) Company() (models.Company, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.company == nil {
		return models.Company{}, false
	}
	return *s.company, true
}

func (s *CompanyStore) Snapshot() CompanySnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return CompanySnapshot{
		Company:   s.company,
		IsLoading: s.isLoading,
		Error:     s.errMsg,
	}
}

func (s *CompanyStore) persistLocked() {
	saveJSON(s.persist, companyStoreKey, companyPersist{Company: s.company})
}
