package store

import (
	"log"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salesdesk/api"
	"salesdesk/models"
)

type fakeCallAPI struct {
	page    models.CallPage
	listErr error
	onList  func()

	createErr error
	deleteErr error
	updateErr error

	onUpdate func()
	onDelete func()

	listCount   int
	createCount int
	deleteCount int
}

func (f *fakeCallAPI) GetAllCalls(companyID string, filter models.CallFilter) (models.CallPage, error) {
	f.listCount++
	if f.onList != nil {
		f.onList()
	}
	if f.listErr != nil {
		return models.CallPage{}, f.listErr
	}
	return f.page, nil
}

func (f *fakeCallAPI) GetCall(companyID, callID string) (models.Call, error) {
	for _, call := range f.page.Calls {
		if call.ID == callID {
			return call, nil
		}
	}
	return models.Call{}, &api.APIError{StatusCode: 404, Message: "Call not found"}
}

func (f *fakeCallAPI) CreateCall(companyID string, input models.CallInput) (models.Call, error) {
	f.createCount++
	if f.createErr != nil {
		return models.Call{}, f.createErr
	}
	return models.Call{ID: "created", Title: input.Title}, nil
}

func (f *fakeCallAPI) UpdateCall(companyID, callID string, input models.CallInput) (models.Call, error) {
	if f.onUpdate != nil {
		f.onUpdate()
	}
	if f.updateErr != nil {
		return models.Call{}, f.updateErr
	}
	return models.Call{ID: callID, Title: input.Title}, nil
}

func (f *fakeCallAPI) RescheduleCall(companyID, callID string, startTime time.Time) (models.Call, error) {
	return models.Call{ID: callID, StartTime: startTime}, nil
}

func (f *fakeCallAPI) DeleteCall(companyID, callID string) error {
	f.deleteCount++
	if f.onDelete != nil {
		f.onDelete()
	}
	return f.deleteErr
}

func testLogger() *log.Logger {
	return log.New(os.Stdout, "TEST: ", log.LstdFlags)
}

func twoCallPage() models.CallPage {
	return models.CallPage{
		Total:      2,
		Page:       1,
		TotalPages: 1,
		Calls: []models.Call{
			{ID: "call-a", Title: "Discovery call", Status: "scheduled"},
			{ID: "call-b", Title: "Follow-up call", Status: "scheduled"},
		},
	}
}

func TestFetchAllCallsCommitsPage(t *testing.T) {
	fake := &fakeCallAPI{page: twoCallPage()}
	s := NewCallStore(fake, testLogger())

	require.NoError(t, s.FetchAllCalls("co-1", models.CallFilter{Page: 1}))

	snap := s.Snapshot()
	assert.Equal(t, 2, snap.Total)
	require.Len(t, snap.Calls, 2)
	assert.Equal(t, "call-a", snap.Calls[0].ID)
	assert.Equal(t, "call-b", snap.Calls[1].ID)
	assert.False(t, snap.IsLoading)
	assert.Empty(t, snap.Error)
}

func TestFetchSetsLoadingWhileInFlight(t *testing.T) {
	fake := &fakeCallAPI{page: twoCallPage()}
	s := NewCallStore(fake, testLogger())

	fake.onList = func() {
		assert.True(t, s.IsLoading())
		assert.Empty(t, s.Err())
	}

	require.NoError(t, s.FetchAllCalls("co-1", models.CallFilter{}))
	assert.False(t, s.IsLoading())
}

func TestFetchFailureKeepsPriorData(t *testing.T) {
	fake := &fakeCallAPI{page: twoCallPage()}
	s := NewCallStore(fake, testLogger())
	require.NoError(t, s.FetchAllCalls("co-1", models.CallFilter{}))

	fake.listErr = &api.APIError{StatusCode: 500, Message: "backend exploded"}
	err := s.FetchAllCalls("co-1", models.CallFilter{})
	require.Error(t, err)

	snap := s.Snapshot()
	assert.Len(t, snap.Calls, 2, "previously loaded page must survive a failed fetch")
	assert.Equal(t, "backend exploded", snap.Error)
	assert.False(t, snap.IsLoading)
}

func TestFetchClearsPreviousError(t *testing.T) {
	fake := &fakeCallAPI{page: twoCallPage()}
	s := NewCallStore(fake, testLogger())

	fake.listErr = &api.APIError{StatusCode: 500, Message: "backend exploded"}
	require.Error(t, s.FetchAllCalls("co-1", models.CallFilter{}))

	fake.listErr = nil
	require.NoError(t, s.FetchAllCalls("co-1", models.CallFilter{}))
	assert.Empty(t, s.Err())
}

func TestAddCallRefetchesExactlyOnce(t *testing.T) {
	fake := &fakeCallAPI{page: twoCallPage()}
	s := NewCallStore(fake, testLogger())
	require.NoError(t, s.FetchAllCalls("co-1", models.CallFilter{}))

	before := fake.listCount
	require.NoError(t, s.AddCall("co-1", models.CallInput{
		Title:     "Demo call",
		CallType:  "outbound",
		StartTime: time.Now().Add(time.Hour),
	}))

	assert.Equal(t, 1, fake.createCount)
	assert.Equal(t, before+1, fake.listCount, "one successful mutation triggers exactly one refetch")

	// The ephemeral row is replaced by the backend page.
	for _, call := range s.Snapshot().Calls {
		assert.NotContains(t, call.ID, "pending-")
	}
}

func TestAddCallRollsBackOnFailure(t *testing.T) {
	fake := &fakeCallAPI{page: twoCallPage()}
	s := NewCallStore(fake, testLogger())
	require.NoError(t, s.FetchAllCalls("co-1", models.CallFilter{}))

	fake.createErr = &api.APIError{StatusCode: 422, Message: "title too long"}
	before := fake.listCount

	err := s.AddCall("co-1", models.CallInput{Title: "x", CallType: "outbound", StartTime: time.Now()})
	require.Error(t, err)

	snap := s.Snapshot()
	assert.Len(t, snap.Calls, 2, "optimistic row must be rolled back")
	assert.Equal(t, "title too long", snap.Error)
	assert.Equal(t, before, fake.listCount, "no refetch after a failed mutation")
}

func TestDeleteCallRestoresRowOnNotFound(t *testing.T) {
	fake := &fakeCallAPI{page: twoCallPage()}
	s := NewCallStore(fake, testLogger())
	require.NoError(t, s.FetchAllCalls("co-1", models.CallFilter{}))

	fake.deleteErr = &api.APIError{StatusCode: 404, Message: "Call not found"}
	err := s.DeleteCall("co-1", "call-a")
	require.Error(t, err)
	assert.True(t, api.IsNotFound(err))

	snap := s.Snapshot()
	assert.Len(t, snap.Calls, 2, "deleted row comes back when the backend says not found")
	_, found := s.CallByID("call-a")
	assert.True(t, found)
	assert.Equal(t, "Call not found", snap.Error)
}

func TestMutationBeforeAnyFetchStillRefetches(t *testing.T) {
	fake := &fakeCallAPI{page: twoCallPage()}
	s := NewCallStore(fake, testLogger())

	require.NoError(t, s.AddCall("co-1", models.CallInput{
		Title:     "First ever call",
		CallType:  "inbound",
		StartTime: time.Now().Add(time.Hour),
	}))

	assert.Equal(t, 1, fake.listCount)
	assert.Len(t, s.Snapshot().Calls, 2)
}

// A fetch that lands while a mutation is in flight can replace the page
// with a smaller one; the failure rollback must cope with that.
func TestUpdateCallRollbackSurvivesConcurrentShrink(t *testing.T) {
	fake := &fakeCallAPI{page: twoCallPage()}
	s := NewCallStore(fake, testLogger())
	require.NoError(t, s.FetchAllCalls("co-1", models.CallFilter{}))

	fake.updateErr = &api.APIError{StatusCode: 422, Message: "title too long"}
	fake.onUpdate = func() {
		fake.page = models.CallPage{}
		require.NoError(t, s.FetchAllCalls("co-1", models.CallFilter{}))
	}

	require.Error(t, s.UpdateCall("co-1", "call-b", models.CallInput{Title: "x"}))

	assert.Empty(t, s.Snapshot().Calls, "rollback must not write into the replaced page")
	assert.Equal(t, "title too long", s.Err())
}

func TestDeleteCallRollbackSurvivesConcurrentShrink(t *testing.T) {
	fake := &fakeCallAPI{page: twoCallPage()}
	s := NewCallStore(fake, testLogger())
	require.NoError(t, s.FetchAllCalls("co-1", models.CallFilter{}))

	fake.deleteErr = &api.APIError{StatusCode: 404, Message: "Call not found"}
	fake.onDelete = func() {
		fake.page = models.CallPage{}
		require.NoError(t, s.FetchAllCalls("co-1", models.CallFilter{}))
	}

	require.Error(t, s.DeleteCall("co-1", "call-b"))

	call, found := s.CallByID("call-b")
	require.True(t, found, "the refused delete restores the row")
	assert.Equal(t, "Follow-up call", call.Title)
}

func TestCallByIDIsPureSelector(t *testing.T) {
	fake := &fakeCallAPI{page: twoCallPage()}
	s := NewCallStore(fake, testLogger())
	require.NoError(t, s.FetchAllCalls("co-1", models.CallFilter{}))

	before := fake.listCount
	call, found := s.CallByID("call-b")
	require.True(t, found)
	assert.Equal(t, "Follow-up call", call.Title)

	_, found = s.CallByID("nope")
	assert.False(t, found)
	assert.Equal(t, before, fake.listCount, "selectors never touch the network")
}
