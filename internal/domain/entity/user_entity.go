package entity

import "time"

// User is an account created at first successful Google sign-in.
// There is no profile-edit path: the row is written once and only read
// afterwards, so the entity carries no UpdatedAt.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	Image     string    `json:"image,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
