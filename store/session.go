package store

import (
	"log"

	"salesdesk/models"
)

// SessionAPI is the accessor surface the session store drives.
type SessionAPI interface {
	Login(creds models.Credentials) (models.Session, error)
	RefreshSession(refreshToken string) (models.Session, error)
	Logout(refreshToken string) error
}

// SessionStore holds the signed-in operator's session: the bearer pair
// and the current user. It doubles as the api client's token source, so
// every request automatically carries the active credential.
type SessionStore struct {
	base
	api SessionAPI
	log *log.Logger

	session *models.Session
}

func NewSessionStore(logger *log.Logger) *SessionStore {
	return &SessionStore{log: logger}
}

// AttachAPI wires the accessor layer in after construction. The client
// needs the store as its token source, so the two are built in that
// order and bound here.
func (s *SessionStore) AttachAPI(api SessionAPI) {
	s.api = api
}

// AccessToken implements api.TokenSource.
func (s *SessionStore) AccessToken() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return ""
	}
	return s.session.AccessToken
}

func (s *SessionStore) RefreshToken() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return ""
	}
	return s.session.RefreshToken
}

// Login exchanges credentials for a session and makes it the active one.
func (s *SessionStore) Login(creds models.Credentials) error {
	seq := s.beginFetch()
	session, err := s.api.Login(creds)
	return s.settleFetch(seq, err, func() {
		s.session = &session
		s.log.Printf("session opened for %s", session.User.Email)
	})
}

// Refresh performs the caller-driven refresh exchange using the stored
// refresh token. It is never triggered automatically.
func (s *SessionStore) Refresh() error {
	token := s.RefreshToken()
	seq := s.beginFetch()
	session, err := s.api.RefreshSession(token)
	return s.settleFetch(seq, err, func() {
		s.session = &session
	})
}

// Logout revokes the refresh token and drops the session locally even
// when revocation fails.
func (s *SessionStore) Logout() {
	token := s.RefreshToken()
	if token != "" {
		if err := s.api.Logout(token); err != nil {
			s.log.Printf("logout revocation failed: %v", err)
		}
	}
	s.mu.Lock()
	s.session = nil
	s.errMsg = ""
	s.mu.Unlock()
}

// CurrentUser returns the signed-in user, false when nobody is.
func (s *SessionStore) CurrentUser() (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return models.User{}, false
	}
	return s.session.User, true
}

// CompanyID is the tenant scope every resource action runs under.
func (s *SessionStore) CompanyID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return ""
	}
	return s.session.User.CompanyID
}
