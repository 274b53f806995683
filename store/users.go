package store

import (
	"log"

	"salesdesk/models"
)

// UserAPI is the accessor surface the admin user store drives.
type UserAPI interface {
	GetUsers(companyID string, filter models.UserFilter) (models.UserPage, error)
	GetUser(companyID, userID string) (models.User, error)
	CreateUser(companyID string, input models.UserInput) (models.User, error)
	UpdateUser(companyID, userID string, input models.UserInput) (models.User, error)
	AssignManager(companyID, userID, managerID string) (models.User, error)
	DeactivateUser(companyID, userID string) error
	DeleteUser(companyID, userID string) error
}

// UserSnapshot is what the presentation layer renders from.
type UserSnapshot struct {
	Users       []models.User `json:"users"`
	Total       int           `json:"total"`
	Page        int           `json:"page"`
	TotalPages  int           `json:"totalPages"`
	CurrentUser *models.User  `json:"currentUser,omitempty"`
	IsLoading   bool          `json:"isLoading"`
	Error       string        `json:"error,omitempty"`
}

// UserStore caches the company's account members for the admin screens.
type UserStore struct {
	base
	api UserAPI
	log *log.Logger

	users       []models.User
	total       int
	page        int
	totalPages  int
	currentUser *models.User

	lastFilter models.UserFilter
}

func NewUserStore(api UserAPI, logger *log.Logger) *UserStore {
	return &UserStore{api: api, log: logger}
}

func (s *UserStore) FetchUsers(companyID string, filter models.UserFilter) error {
	s.mu.Lock()
	s.lastFilter = filter
	s.mu.Unlock()

	seq := s.beginFetch()
	page, err := s.api.GetUsers(companyID, filter)
	return s.settleFetch(seq, err, func() {
		s.users = page.Users
		s.total = page.Total
		s.page = page.Page
		s.totalPages = page.TotalPages
	})
}

func (s *UserStore) FetchUser(companyID, userID string) error {
	seq := s.beginFetch()
	user, err := s.api.GetUser(companyID, userID)
	return s.settleFetch(seq, err, func() {
		s.currentUser = &user
	})
}

// AddUser creates a member without an optimistic row: the backend
// assigns the invite state, so showing a guess would mislead.
func (s *UserStore) AddUser(companyID string, input models.UserInput) error {
	if _, err := s.api.CreateUser(companyID, input); err != nil {
		s.recordErr(err)
		return err
	}
	return s.refetch(companyID)
}

func (s *UserStore) UpdateUser(companyID, userID string, input models.UserInput) error {
	s.mu.Lock()
	idx, prev := s.findLocked(userID)
	if idx >= 0 {
		patched := prev
		patched.FirstName = input.FirstName
		patched.LastName = input.LastName
		patched.Email = input.Email
		patched.Phone = input.Phone
		patched.Role = input.Role
		s.users[idx] = patched
	}
	s.mu.Unlock()

	if _, err := s.api.UpdateUser(companyID, userID, input); err != nil {
		s.mu.Lock()
		// Re-resolve by id: a concurrent fetch may have replaced the
		// page while the lock was released.
		if i, _ := s.findLocked(userID); i >= 0 && idx >= 0 {
			s.users[i] = prev
		}
		s.errMsg = err.Error()
		s.mu.Unlock()
		return err
	}
	return s.refetch(companyID)
}

// AssignManager attaches a member to a manager. The missing-manager
// precondition fails in the accessor before any request goes out.
func (s *UserStore) AssignManager(companyID, userID, managerID string) error {
	s.mu.Lock()
	idx, prev := s.findLocked(userID)
	if idx >= 0 && managerID != "" {
		s.users[idx].Manager = models.IDRef[models.Owner](managerID)
	}
	s.mu.Unlock()

	if _, err := s.api.AssignManager(companyID, userID, managerID); err != nil {
		s.mu.Lock()
		if i, _ := s.findLocked(userID); i >= 0 && idx >= 0 {
			s.users[i] = prev
		}
		s.errMsg = err.Error()
		s.mu.Unlock()
		return err
	}
	return s.refetch(companyID)
}

func (s *UserStore) DeactivateUser(companyID, userID string) error {
	s.mu.Lock()
	idx, prev := s.findLocked(userID)
	if idx >= 0 {
		s.users[idx].IsActive = false
	}
	s.mu.Unlock()

	if err := s.api.DeactivateUser(companyID, userID); err != nil {
		s.mu.Lock()
		if i, _ := s.findLocked(userID); i >= 0 && idx >= 0 {
			s.users[i] = prev
		}
		s.errMsg = err.Error()
		s.mu.Unlock()
		return err
	}
	return s.refetch(companyID)
}

func (s *UserStore) DeleteUser(companyID, userID string) error {
	s.mu.Lock()
	idx, prev := s.findLocked(userID)
	if idx >= 0 {
		s.users = append(s.users[:idx], s.users[idx+1:]...)
	}
	s.mu.Unlock()

	if err := s.api.DeleteUser(companyID, userID); err != nil {
		s.mu.Lock()
		if i, _ := s.findLocked(userID); i < 0 && idx >= 0 {
			if idx > len(s.users) {
				idx = len(s.users)
			}
			s.users = append(s.users[:idx], append([]models.User{prev}, s.users[idx:]...)...)
		}
		s.errMsg = err.Error()
		s.mu.Unlock()
		return err
	}
	return s.refetch(companyID)
}

// UserByID is a pure selector over the cached page.
func (s *UserStore) UserByID(userID string) (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx, user := s.findLocked(userID)
	return user, idx >= 0
}

func (s *UserStore) Snapshot() UserSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return UserSnapshot{
		Users:       append([]models.User(nil), s.users...),
		Total:       s.total,
		Page:        s.page,
		TotalPages:  s.totalPages,
		CurrentUser: s.currentUser,
		IsLoading:   s.isLoading,
		Error:       s.errMsg,
	}
}

func (s *UserStore) refetch(companyID string) error {
	s.mu.Lock()
	filter := s.lastFilter
	s.mu.Unlock()
	return s.FetchUsers(companyID, filter)
}

func (s *UserStore) findLocked(userID string) (int, models.User) {
	for i, user := range s.users {
		if user.ID == userID {
			return i, user
		}
	}
	return -1, models.User{}
}
