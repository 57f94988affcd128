// Package schedule implements the account-scoped task store: a roster of
// accounts, a session pointer naming the active one, and the task
// operations of the daily timeline. All state lives in a kvstore.Store as
// JSON; the session pointer holds a reference only, so the roster is the
// single source of truth for every task list.
package schedule

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/existflow/dayplan/internal/kvstore"
	"github.com/existflow/dayplan/internal/model"
)

// Store keys. "schedule" is the anonymous task list used before login.
const (
	keyAccounts  = "accounts"
	keySession   = "session"
	keyAnonTasks = "schedule"
	keyTheme     = "theme"
)

// Planner is the planner core. One instance owns one store; operations
// are serialized so each read-modify-write is atomic for callers.
type Planner struct {
	mu    sync.Mutex
	store kvstore.Store
}

// New creates a planner over the given store
func New(store kvstore.Store) *Planner {
	return &Planner{store: store}
}

func (p *Planner) loadRoster() ([]model.Account, error) {
	raw, ok, err := p.store.Get(keyAccounts)
	if err != nil {
		return nil, fmt.Errorf("failed to load accounts: %w", err)
	}
	if !ok {
		return []model.Account{}, nil
	}
	var roster []model.Account
	if err := json.Unmarshal([]byte(raw), &roster); err != nil {
		return nil, fmt.Errorf("failed to parse accounts: %w", err)
	}
	return roster, nil
}

func (p *Planner) saveRoster(roster []model.Account) error {
	data, err := json.Marshal(roster)
	if err != nil {
		return fmt.Errorf("failed to marshal accounts: %w", err)
	}
	if err := p.store.Set(keyAccounts, string(data)); err != nil {
		return fmt.Errorf("failed to save accounts: %w", err)
	}
	return nil
}

// loadSession returns the session pointer, or nil when absent or
// malformed. A session that fails to parse is treated as logged out.
func (p *Planner) loadSession() (*model.Session, error) {
	raw, ok, err := p.store.Get(keySession)
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	if !ok {
		return nil, nil
	}
	var s model.Session
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		return nil, nil
	}
	if !s.Valid() {
		return nil, nil
	}
	return &s, nil
}

func (p *Planner) saveSession(s model.Session) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	if err := p.store.Set(keySession, string(data)); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

func (p *Planner) loadAnonTasks() ([]model.Task, error) {
	raw, ok, err := p.store.Get(keyAnonTasks)
	if err != nil {
		return nil, fmt.Errorf("failed to load schedule: %w", err)
	}
	if !ok {
		return []model.Task{}, nil
	}
	var tasks []model.Task
	if err := json.Unmarshal([]byte(raw), &tasks); err != nil {
		return nil, fmt.Errorf("failed to parse schedule: %w", err)
	}
	return tasks, nil
}

func (p *Planner) saveAnonTasks(tasks []model.Task) error {
	data, err := json.Marshal(tasks)
	if err != nil {
		return fmt.Errorf("failed to marshal schedule: %w", err)
	}
	if err := p.store.Set(keyAnonTasks, string(data)); err != nil {
		return fmt.Errorf("failed to save schedule: %w", err)
	}
	return nil
}

// Theme returns the saved theme preference, defaulting to "dark"
func (p *Planner) Theme() (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	theme, ok, err := p.store.Get(keyTheme)
	if err != nil {
		return "", fmt.Errorf("failed to load theme: %w", err)
	}
	if !ok || theme == "" {
		return "dark", nil
	}
	return theme, nil
}

// SetTheme saves the theme preference
func (p *Planner) SetTheme(tag string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.store.Set(keyTheme, tag); err != nil {
		return fmt.Errorf("failed to save theme: %w", err)
	}
	return nil
}
