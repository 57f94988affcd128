package model

import (
	"time"

	"github.com/google/uuid"
)

// Account is a registered planner identity with its own task list
type Account struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password_hash"`
	CreatedAt    time.Time `json:"created_at"`
	Tasks        []Task    `json:"tasks"`
}

// NewAccount creates an account with an empty task list
func NewAccount(name, email, passwordHash string) Account {
	return Account{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
		Tasks:        []Task{},
	}
}

// Session points at the currently authenticated account. It holds a
// reference only; the task list is always read through the roster.
type Session struct {
	AccountID  string    `json:"account_id"`
	Email      string    `json:"email"`
	LoggedInAt time.Time `json:"logged_in_at"`
}

// Valid reports whether the session carries enough identity to resolve
func (s *Session) Valid() bool {
	return s.AccountID != "" && s.Email != ""
}
