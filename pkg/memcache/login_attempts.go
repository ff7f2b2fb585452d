package mem

import (
	"sync"
	"time"
)

// LoginAttemptStore throttles repeated failed logins per email.
type LoginAttemptStore interface {
	RecordFailure(email string, ttl time.Duration)
	TooMany(email string, limit int) bool
	Reset(email string)
}

type attemptEntry struct {
	count     int
	expiresAt time.Time
}

type LoginAttempts struct {
	mu   sync.RWMutex
	data map[string]attemptEntry
}

func NewLoginAttempts() *LoginAttempts {
	return &LoginAttempts{
		data: make(map[string]attemptEntry),
	}
}

func (s *LoginAttempts) RecordFailure(email string, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.data[email]
	if !ok || time.Now().After(e.expiresAt) {
		s.data[email] = attemptEntry{count: 1, expiresAt: time.Now().Add(ttl)}
		return
	}
	e.count++
	s.data[email] = e
}

func (s *LoginAttempts) TooMany(email string, limit int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.data[email]
	if !ok || time.Now().After(e.expiresAt) {
		return false
	}
	return e.count >= limit
}

func (s *LoginAttempts) Reset(email string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, email)
}
