package models

import "time"

// SessionInfo is what a successful login hands back. ExpiresAt and Subject are
// only filled when the token carries readable claims.
type SessionInfo struct {
	Token     string
	Subject   string
	ExpiresAt time.Time
}

func (s *SessionInfo) Expired(now time.Time) bool {
	return s != nil && !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}
