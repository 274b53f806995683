package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salesdesk/api"
	"salesdesk/models"
)

type fakeDealAPI struct {
	board models.DealBoard

	moveErr error

	boardCount int
	moveCount  int
}

func (f *fakeDealAPI) GetDealBoard(companyID string, filter models.DealFilter) (models.DealBoard, error) {
	f.boardCount++
	return f.board, nil
}

func (f *fakeDealAPI) GetDeal(companyID, dealID string) (models.Deal, error) {
	return models.Deal{ID: dealID}, nil
}

func (f *fakeDealAPI) CreateDeal(companyID string, input models.DealInput) (models.Deal, error) {
	return models.Deal{ID: "created", Title: input.Title}, nil
}

func (f *fakeDealAPI) UpdateDeal(companyID, dealID string, input models.DealInput) (models.Deal, error) {
	return models.Deal{ID: dealID, Title: input.Title}, nil
}

func (f *fakeDealAPI) MoveDealStage(companyID, dealID, stage string) (models.Deal, error) {
	f.moveCount++
	if f.moveErr != nil {
		return models.Deal{}, f.moveErr
	}
	return models.Deal{ID: dealID, Stage: stage}, nil
}

func (f *fakeDealAPI) DeleteDeal(companyID, dealID string) error {
	return nil
}

func testBoard() models.DealBoard {
	return models.DealBoard{
		TotalValue: 150000,
		Stages: []models.StageBucket{
			{Stage: "qualification", Deals: []models.Deal{
				{ID: "deal-1", Title: "Acme rollout", Stage: "qualification", Amount: 50000},
			}},
			{Stage: "proposal", Deals: []models.Deal{
				{ID: "deal-2", Title: "Globex renewal", Stage: "proposal", Amount: 100000},
			}},
		},
	}
}

func TestDealByIDSearchesAllBuckets(t *testing.T) {
	fake := &fakeDealAPI{board: testBoard()}
	s := NewDealStore(fake, testLogger())
	require.NoError(t, s.FetchDealBoard("co-1", models.DealFilter{}))

	deal, found := s.DealByID("deal-2")
	require.True(t, found)
	assert.Equal(t, "Globex renewal", deal.Title)
	assert.Equal(t, "proposal", deal.Stage)

	_, found = s.DealByID("deal-404")
	assert.False(t, found)
}

func TestMoveDealStageRefetchesOnce(t *testing.T) {
	fake := &fakeDealAPI{board: testBoard()}
	s := NewDealStore(fake, testLogger())
	require.NoError(t, s.FetchDealBoard("co-1", models.DealFilter{}))

	before := fake.boardCount
	require.NoError(t, s.MoveDealStage("co-1", "deal-1", "proposal"))

	assert.Equal(t, 1, fake.moveCount)
	assert.Equal(t, before+1, fake.boardCount)
}

func TestMoveDealStageRollsBackOnFailure(t *testing.T) {
	fake := &fakeDealAPI{board: testBoard()}
	s := NewDealStore(fake, testLogger())
	require.NoError(t, s.FetchDealBoard("co-1", models.DealFilter{}))

	fake.moveErr = &api.APIError{StatusCode: 409, Message: "deal already closed"}
	before := fake.boardCount

	err := s.MoveDealStage("co-1", "deal-1", "closed_won")
	require.Error(t, err)

	deal, found := s.DealByID("deal-1")
	require.True(t, found)
	assert.Equal(t, "qualification", deal.Stage, "card returns to its original column")
	assert.Equal(t, before, fake.boardCount, "no refetch after a failed move")
	assert.Equal(t, "deal already closed", s.Err())
}

func TestAddDealInsertsIntoStageBucket(t *testing.T) {
	fake := &fakeDealAPI{board: testBoard()}
	s := NewDealStore(fake, testLogger())
	require.NoError(t, s.FetchDealBoard("co-1", models.DealFilter{}))

	require.NoError(t, s.AddDeal("co-1", models.DealInput{
		Title: "Initech pilot",
		Stage: "proposal",
	}))

	// The refetch replaced the optimistic card with the backend board.
	snap := s.Snapshot()
	assert.Len(t, snap.Board.Stages, 2)
}
