package models

import "time"

// Session is the authenticated principal resolved from a bearer token.
// It is passed explicitly through usecase signatures.
type Session struct {
	SessionID string    `json:"sessionId"`
	UserID    string    `json:"userId"`
	Role      string    `json:"role"`
	ExpiresAt time.Time `json:"expiresAt"`
}

func (s *Session) IsAdmin() bool {
	return s.Role == "Admin"
}

func (s *Session) IsDoctor() bool {
	return s.Role == "Doctor"
}

func (s *Session) IsPatient() bool {
	return s.Role == "Patient"
}
