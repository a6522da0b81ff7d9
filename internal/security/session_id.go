package security

import "github.com/google/uuid"

// NewSessionID returns an unguessable identifier for a client session.
func NewSessionID() string {
	return uuid.NewString()
}
