package schedule

import (
	"fmt"
	"strings"
	"time"

	"github.com/existflow/dayplan/internal/logger"
	"github.com/existflow/dayplan/internal/model"
	"golang.org/x/crypto/bcrypt"
)

// MinPasswordLen is the minimum accepted password length
const MinPasswordLen = 6

// SignUp registers a new account and logs it in. Email is the uniqueness
// key within the roster, compared exactly.
func (p *Planner) SignUp(name, email, password, confirm string) (*model.Account, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)

	switch {
	case name == "":
		return nil, &ValidationError{Field: "name", Reason: "required"}
	case email == "":
		return nil, &ValidationError{Field: "email", Reason: "required"}
	case password == "":
		return nil, &ValidationError{Field: "password", Reason: "required"}
	case confirm == "":
		return nil, &ValidationError{Field: "confirm_password", Reason: "required"}
	case password != confirm:
		return nil, &ValidationError{Field: "confirm_password", Reason: "passwords do not match"}
	case len(password) < MinPasswordLen:
		return nil, &ValidationError{Field: "password", Reason: fmt.Sprintf("must be at least %d characters", MinPasswordLen)}
	}

	roster, err := p.loadRoster()
	if err != nil {
		return nil, err
	}
	for _, a := range roster {
		if a.Email == email {
			return nil, &ValidationError{Field: "email", Reason: "an account with this email already exists"}
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	account := model.NewAccount(name, email, string(hash))
	roster = append(roster, account)
	if err := p.saveRoster(roster); err != nil {
		return nil, err
	}
	if err := p.saveSession(model.Session{
		AccountID:  account.ID,
		Email:      account.Email,
		LoggedInAt: time.Now(),
	}); err != nil {
		return nil, err
	}

	logger.Info("Account created", logger.F("email", email))
	return &account, nil
}

// LogIn authenticates against the roster and sets the session pointer
func (p *Planner) LogIn(email, password string) (*model.Account, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	email = strings.TrimSpace(email)

	roster, err := p.loadRoster()
	if err != nil {
		return nil, err
	}
	for i := range roster {
		if roster[i].Email != email {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(roster[i].PasswordHash), []byte(password)) != nil {
			break
		}
		if err := p.saveSession(model.Session{
			AccountID:  roster[i].ID,
			Email:      roster[i].Email,
			LoggedInAt: time.Now(),
		}); err != nil {
			return nil, err
		}
		logger.Info("Logged in", logger.F("email", email))
		account := roster[i]
		return &account, nil
	}

	logger.Warn("Login failed", logger.F("email", email))
	return nil, &AuthenticationError{Email: email}
}

// LogOut clears the session pointer. Logging out while logged out is fine.
func (p *Planner) LogOut() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.store.Remove(keySession); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	logger.Info("Logged out")
	return nil
}

// CurrentAccount resolves the session pointer through the roster. It
// returns nil without error when no valid session exists or the session
// points at an account that is no longer in the roster.
func (p *Planner) CurrentAccount() (*model.Account, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.currentLocked()
}

func (p *Planner) currentLocked() (*model.Account, error) {
	session, err := p.loadSession()
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, nil
	}

	roster, err := p.loadRoster()
	if err != nil {
		return nil, err
	}
	for i := range roster {
		if roster[i].ID == session.AccountID {
			account := roster[i]
			return &account, nil
		}
	}
	return nil, nil
}

// SeedDemoAccounts inserts the demo accounts unless their emails are
// already taken. Demo passwords go through the same hashing as real ones.
func (p *Planner) SeedDemoAccounts() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	roster, err := p.loadRoster()
	if err != nil {
		return err
	}

	demos := []struct {
		name     string
		email    string
		password string
		tasks    []model.Task
	}{
		{
			name:     "Demo User",
			email:    "user@demo.com",
			password: "demo123",
			tasks: []model.Task{
				model.NewTask(1, "Morning meditation", 7, 30),
				model.NewTask(2, "Work on project", 9, 120),
			},
		},
		{
			name:     "Test User",
			email:    "test@demo.com",
			password: "test123",
			tasks:    []model.Task{},
		},
	}

	changed := false
	for _, d := range demos {
		exists := false
		for _, a := range roster {
			if a.Email == d.email {
				exists = true
				break
			}
		}
		if exists {
			continue
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(d.password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash demo password: %w", err)
		}
		account := model.NewAccount(d.name, d.email, string(hash))
		account.Tasks = d.tasks
		roster = append(roster, account)
		changed = true
	}

	if !changed {
		return nil
	}
	return p.saveRoster(roster)
}
