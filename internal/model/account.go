package model

import "time"

// Account holds sign-in credentials for an email.
// Separate from User: a User row appears only once the account
// saves its first generation.
type Account struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
