package store

import (
	"log"

	"github.com/google/uuid"

	"salesdesk/models"
)

// DealAPI is the accessor surface the deal store drives.
type DealAPI interface {
	GetDealBoard(companyID string, filter models.DealFilter) (models.DealBoard, error)
	GetDeal(companyID, dealID string) (models.Deal, error)
	CreateDeal(companyID string, input models.DealInput) (models.Deal, error)
	UpdateDeal(companyID, dealID string, input models.DealInput) (models.Deal, error)
	MoveDealStage(companyID, dealID, stage string) (models.Deal, error)
	DeleteDeal(companyID, dealID string) error
}

// DealSnapshot is what the presentation layer renders from.
type DealSnapshot struct {
	Board       models.DealBoard `json:"board"`
	CurrentDeal *models.Deal     `json:"currentDeal,omitempty"`
	IsLoading   bool             `json:"isLoading"`
	Error       string           `json:"error,omitempty"`
}

// DealStore caches the pipeline board grouped into stage buckets.
type DealStore struct {
	base
	api DealAPI
	log *log.Logger

	board       models.DealBoard
	currentDeal *models.Deal

	lastFilter models.DealFilter
}

func NewDealStore(api DealAPI, logger *log.Logger) *DealStore {
	return &DealStore{api: api, log: logger}
}

func (s *DealStore) FetchDealBoard(companyID string, filter models.DealFilter) error {
	s.mu.Lock()
	s.lastFilter = filter
	s.mu.Unlock()

	seq := s.beginFetch()
	board, err := s.api.GetDealBoard(companyID, filter)
	return s.settleFetch(seq, err, func() {
		s.board = board
	})
}

func (s *DealStore) FetchDeal(companyID, dealID string) error {
	seq := s.beginFetch()
	deal, err := s.api.GetDeal(companyID, dealID)
	return s.settleFetch(seq, err, func() {
		s.currentDeal = &deal
	})
}

// AddDeal drops an ephemeral card into the target stage bucket, then
// reconciles with one board refetch.
func (s *DealStore) AddDeal(companyID string, input models.DealInput) error {
	stage := input.Stage
	if stage == "" {
		stage = "qualification"
	}
	optimistic := models.Deal{
		ID:        "pending-" + uuid.NewString(),
		CompanyID: companyID,
		Title:     input.Title,
		Amount:    input.Amount,
		Currency:  input.Currency,
		Stage:     stage,
	}
	s.mu.Lock()
	s.insertLocked(optimistic)
	s.mu.Unlock()

	if _, err := s.api.CreateDeal(companyID, input); err != nil {
		s.mu.Lock()
		s.removeLocked(optimistic.ID)
		s.errMsg = err.Error()
		s.mu.Unlock()
		return err
	}
	return s.refetch(companyID)
}

func (s *DealStore) UpdateDeal(companyID, dealID string, input models.DealInput) error {
	s.mu.Lock()
	prev, found := s.findLocked(dealID)
	if found {
		patched := prev
		patched.Title = input.Title
		patched.Amount = input.Amount
		patched.Probability = input.Probability
		patched.CloseDate = input.CloseDate
		s.replaceLocked(patched)
	}
	s.mu.Unlock()

	if _, err := s.api.UpdateDeal(companyID, dealID, input); err != nil {
		s.mu.Lock()
		if found {
			s.replaceLocked(prev)
		}
		s.errMsg = err.Error()
		s.mu.Unlock()
		return err
	}
	return s.refetch(companyID)
}

// MoveDealStage drags the card into another bucket optimistically.
func (s *DealStore) MoveDealStage(companyID, dealID, stage string) error {
	s.mu.Lock()
	prev, found := s.findLocked(dealID)
	if found {
		moved := prev
		moved.Stage = stage
		s.removeLocked(dealID)
		s.insertLocked(moved)
	}
	s.mu.Unlock()

	if _, err := s.api.MoveDealStage(companyID, dealID, stage); err != nil {
		s.mu.Lock()
		if found {
			s.removeLocked(dealID)
			s.insertLocked(prev)
		}
		s.errMsg = err.Error()
		s.mu.Unlock()
		return err
	}
	return s.refetch(companyID)
}

func (s *DealStore) DeleteDeal(companyID, dealID string) error {
	s.mu.Lock()
	prev, found := s.findLocked(dealID)
	if found {
		s.removeLocked(dealID)
	}
	s.mu.Unlock()

	if err := s.api.DeleteDeal(companyID, dealID); err != nil {
		s.mu.Lock()
		if found {
			s.insertLocked(prev)
		}
		s.errMsg = err.Error()
		s.mu.Unlock()
		return err
	}
	return s.refetch(companyID)
}

// DealByID searches every cached stage bucket. Pure selector, no
// network activity.
func (s *DealStore) DealByID(dealID string) (models.Deal, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.findLocked(dealID)
}

func (s *DealStore) Snapshot() DealSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	board := models.DealBoard{
		Stages:     append([]models.StageBucket(nil), s.board.Stages...),
		TotalValue: s.board.TotalValue,
	}
	return DealSnapshot{
		Board:       board,
		CurrentDeal: s.currentDeal,
		IsLoading:   s.isLoading,
		Error:       s.errMsg,
	}
}

func (s *DealStore) refetch(companyID string) error {
	s.mu.Lock()
	filter := s.lastFilter
	s.mu.Unlock()
	return s.FetchDealBoard(companyID, filter)
}

func (s *DealStore) findLocked(dealID string) (models.Deal, bool) {
	for _, bucket := range s.board.Stages {
		for _, deal := range bucket.Deals {
			if deal.ID == dealID {
				return deal, true
			}
		}
	}
	return models.Deal{}, false
}

func (s *DealStore) insertLocked(deal models.Deal) {
	for i := range s.board.Stages {
		if s.board.Stages[i].Stage == deal.Stage {
			s.board.Stages[i].Deals = append(s.board.Stages[i].Deals, deal)
			return
		}
	}
	s.board.Stages = append(s.board.Stages, models.StageBucket{
		Stage: deal.Stage,
		Deals: []models.Deal{deal},
	})
}

func (s *DealStore) removeLocked(dealID string) {
	for i := range s.board.Stages {
		deals := s.board.Stages[i].Deals
		for j, deal := range deals {
			if deal.ID == dealID {
				s.board.Stages[i].Deals = append(deals[:j], deals[j+1:]...)
				return
			}
		}
	}
}

func (s *DealStore) replaceLocked(deal models.Deal) {
	for i := range s.board.Stages {
		deals := s.board.Stages[i].Deals
		for j := range deals {
			if deals[j].ID == deal.ID {
				deals[j] = deal
				return
			}
		}
	}
}
