package auth

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"auction-house/internal/auctionerrors"
	model "auction-house/internal/models"
	"auction-house/internal/notifications"
	"auction-house/internal/toasts"
	"auction-house/utils"

	"golang.org/x/crypto/bcrypt"
)

// Session binds a token to a logged-in user plus the per-session state the
// views depend on: the notification tracker and the toast feed.
type Session struct {
	Token   string
	User    model.User
	Tracker *notifications.Tracker
	Toasts  *toasts.Feed
}

// Service manages the fixed user set and active sessions. There is no
// registration; users come from the seed set.
type Service struct {
	mu       sync.RWMutex
	users    []model.User
	sessions map[string]*Session
	toastTTL time.Duration
}

// NewService creates an auth service over the given user set.
func NewService(users []model.User, toastTTL time.Duration) *Service {
	return &Service{
		users:    users,
		sessions: make(map[string]*Session),
		toastTTL: toastTTL,
	}
}

// Login matches the username case-insensitively and the password exactly,
// then opens a fresh session with empty snapshots and an empty toast feed.
func (s *Service) Login(username, password string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, user := range s.users {
		if !strings.EqualFold(user.Username, username) {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
			break
		}

		session := &Session{
			Token:   utils.GenerateID(),
			User:    user,
			Tracker: notifications.NewTracker(),
			Toasts:  toasts.NewFeed(s.toastTTL),
		}
		s.sessions[session.Token] = session
		return session, nil
	}

	return nil, fmt.Errorf("login %q: %w", username, auctionerrors.ErrInvalidCredentials)
}

// Logout drops the session, cancelling its toast timers and discarding
// its notification snapshots.
func (s *Service) Logout(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if session, ok := s.sessions[token]; ok {
		session.Toasts.Close()
		delete(s.sessions, token)
	}
}

// Get resolves a session token.
func (s *Service) Get(token string) (*Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[token]
	return session, ok
}

// SeedUsers returns the fixed demo user set with bcrypt-hashed passwords.
func SeedUsers() ([]model.User, error) {
	seed := []struct {
		id       int64
		username string
		password string
	}{
		{1, "ana", "123"},
		{2, "bruno", "123"},
		{3, "carla", "123"},
	}

	users := make([]model.User, 0, len(seed))
	for _, u := range seed {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash password for %s: %w", u.username, err)
		}
		users = append(users, model.User{ID: u.id, Username: u.username, PasswordHash: string(hash)})
	}
	return users, nil
}
