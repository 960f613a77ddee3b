// Package model defines domain entities for the application.
package model

import "time"

// User represents a generation owner.
// Users are created lazily on the first generation save for an email;
// credentials live on Account, not here.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
