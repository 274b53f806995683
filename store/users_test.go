package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salesdesk/api"
	"salesdesk/models"
)

type fakeUserAPI struct {
	page models.UserPage

	updateErr error
	onUpdate  func()
	deleteErr error
	onDelete  func()
}

func (f *fakeUserAPI) GetUsers(companyID string, filter models.UserFilter) (models.UserPage, error) {
	return f.page, nil
}

func (f *fakeUserAPI) GetUser(companyID, userID string) (models.User, error) {
	return models.User{ID: userID}, nil
}

func (f *fakeUserAPI) CreateUser(companyID string, input models.UserInput) (models.User, error) {
	return models.User{ID: "created", Email: input.Email}, nil
}

func (f *fakeUserAPI) UpdateUser(companyID, userID string, input models.UserInput) (models.User, error) {
	if f.onUpdate != nil {
		f.onUpdate()
	}
	if f.updateErr != nil {
		return models.User{}, f.updateErr
	}
	return models.User{ID: userID, Email: input.Email}, nil
}

func (f *fakeUserAPI) AssignManager(companyID, userID, managerID string) (models.User, error) {
	return models.User{ID: userID}, nil
}

func (f *fakeUserAPI) DeactivateUser(companyID, userID string) error { return nil }

func (f *fakeUserAPI) DeleteUser(companyID, userID string) error {
	if f.onDelete != nil {
		f.onDelete()
	}
	return f.deleteErr
}

func twoUserPage() models.UserPage {
	return models.UserPage{
		Total:      2,
		Page:       1,
		TotalPages: 1,
		Users: []models.User{
			{ID: "usr-a", FirstName: "Dana", Role: "admin", IsActive: true},
			{ID: "usr-b", FirstName: "Rami", Role: "member", IsActive: true},
		},
	}
}

func TestUpdateUserRollbackSurvivesConcurrentShrink(t *testing.T) {
	fake := &fakeUserAPI{page: twoUserPage()}
	s := NewUserStore(fake, testLogger())
	require.NoError(t, s.FetchUsers("co-1", models.UserFilter{}))

	fake.updateErr = &api.APIError{StatusCode: 403, Message: "cannot change role"}
	fake.onUpdate = func() {
		fake.page = models.UserPage{}
		require.NoError(t, s.FetchUsers("co-1", models.UserFilter{}))
	}

	require.Error(t, s.UpdateUser("co-1", "usr-b", models.UserInput{Role: "admin"}))

	assert.Empty(t, s.Snapshot().Users, "rollback must not write into the replaced page")
	assert.Equal(t, "cannot change role", s.Err())
}

func TestDeleteUserRollbackSurvivesConcurrentShrink(t *testing.T) {
	fake := &fakeUserAPI{page: twoUserPage()}
	s := NewUserStore(fake, testLogger())
	require.NoError(t, s.FetchUsers("co-1", models.UserFilter{}))

	fake.deleteErr = &api.APIError{StatusCode: 409, Message: "user owns open deals"}
	fake.onDelete = func() {
		fake.page = models.UserPage{}
		require.NoError(t, s.FetchUsers("co-1", models.UserFilter{}))
	}

	require.Error(t, s.DeleteUser("co-1", "usr-b"))

	user, found := s.UserByID("usr-b")
	require.True(t, found, "the refused delete restores the row")
	assert.Equal(t, "Rami", user.FirstName)
}
