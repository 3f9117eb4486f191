package models

import "time"

// PlayerSession ties a browser to the quiz it is playing
type PlayerSession struct {
	PlayerID  string
	StartedAt time.Time
	LastSeen  time.Time
}

// IsIdle reports whether the session has been unused for longer than ttl
func (s *PlayerSession) IsIdle(now time.Time, ttl time.Duration) bool {
	return now.Sub(s.LastSeen) > ttl
}
