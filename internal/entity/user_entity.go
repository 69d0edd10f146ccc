package entity

import "time"

// User is the single public account shape exposed by both auth modes.
type User struct {
	Id    string
	Email string
	Name  *string
}

// LocalCredential is the persisted record of a local-mode account.
// PasswordHash is a fixed-salt single-round digest: a fallback-only
// mechanism, not secure credential storage.
type LocalCredential struct {
	Id           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password_hash"`
	Name         *string   `json:"name,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
