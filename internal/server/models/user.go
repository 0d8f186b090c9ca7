package models

import "time"

// User is the stored credential record. Created once at registration and
// immutable afterwards; only the credential store mutates the backing row.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}
