package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salesdesk/api"
	"salesdesk/models"
)

type fakeMeetingAPI struct {
	page models.MeetingPage

	updateErr error
	onUpdate  func()
	deleteErr error
	onDelete  func()
}

func (f *fakeMeetingAPI) GetAllMeetings(companyID string, filter models.MeetingFilter) (models.MeetingPage, error) {
	return f.page, nil
}

func (f *fakeMeetingAPI) GetMeeting(companyID, meetingID string) (models.Meeting, error) {
	return models.Meeting{ID: meetingID}, nil
}

func (f *fakeMeetingAPI) CreateMeeting(companyID string, input models.MeetingInput) (models.Meeting, error) {
	return models.Meeting{ID: "created", Title: input.Title}, nil
}

func (f *fakeMeetingAPI) UpdateMeeting(companyID, meetingID string, input models.MeetingInput) (models.Meeting, error) {
	if f.onUpdate != nil {
		f.onUpdate()
	}
	if f.updateErr != nil {
		return models.Meeting{}, f.updateErr
	}
	return models.Meeting{ID: meetingID, Title: input.Title}, nil
}

func (f *fakeMeetingAPI) RescheduleMeeting(companyID, meetingID string, start, end time.Time) (models.Meeting, error) {
	return models.Meeting{ID: meetingID, StartTime: start, EndTime: end}, nil
}

func (f *fakeMeetingAPI) DeleteMeeting(companyID, meetingID string) error {
	if f.onDelete != nil {
		f.onDelete()
	}
	return f.deleteErr
}

func twoMeetingPage() models.MeetingPage {
	return models.MeetingPage{
		Total:      2,
		Page:       1,
		TotalPages: 1,
		Meetings: []models.Meeting{
			{ID: "mtg-a", Title: "Kickoff", Status: "scheduled"},
			{ID: "mtg-b", Title: "Pipeline review", Status: "scheduled"},
		},
	}
}

func TestUpdateMeetingRollbackSurvivesConcurrentShrink(t *testing.T) {
	fake := &fakeMeetingAPI{page: twoMeetingPage()}
	s := NewMeetingStore(fake, testLogger())
	require.NoError(t, s.FetchAllMeetings("co-1", models.MeetingFilter{}))

	fake.updateErr = &api.APIError{StatusCode: 409, Message: "room already booked"}
	fake.onUpdate = func() {
		fake.page = models.MeetingPage{}
		require.NoError(t, s.FetchAllMeetings("co-1", models.MeetingFilter{}))
	}

	require.Error(t, s.UpdateMeeting("co-1", "mtg-b", models.MeetingInput{Title: "Moved"}))

	assert.Empty(t, s.Snapshot().Meetings, "rollback must not write into the replaced page")
	assert.Equal(t, "room already booked", s.Err())
}

func TestDeleteMeetingRollbackSurvivesConcurrentShrink(t *testing.T) {
	fake := &fakeMeetingAPI{page: twoMeetingPage()}
	s := NewMeetingStore(fake, testLogger())
	require.NoError(t, s.FetchAllMeetings("co-1", models.MeetingFilter{}))

	fake.deleteErr = &api.APIError{StatusCode: 404, Message: "Meeting not found"}
	fake.onDelete = func() {
		fake.page = models.MeetingPage{}
		require.NoError(t, s.FetchAllMeetings("co-1", models.MeetingFilter{}))
	}

	require.Error(t, s.DeleteMeeting("co-1", "mtg-b"))

	meeting, found := s.MeetingByID("mtg-b")
	require.True(t, found, "the refused delete restores the row")
	assert.Equal(t, "Pipeline review", meeting.Title)
}
