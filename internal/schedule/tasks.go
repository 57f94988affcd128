package schedule

import (
	"strings"
	"time"

	"github.com/existflow/dayplan/internal/logger"
	"github.com/existflow/dayplan/internal/model"
)

// activeLocked resolves the task list the planner currently operates on:
// the active account's list when a session resolves through the roster,
// otherwise the anonymous device-global list. The returned save function
// persists a new list back to the same target.
func (p *Planner) activeLocked() ([]model.Task, func([]model.Task) error, error) {
	session, err := p.loadSession()
	if err != nil {
		return nil, nil, err
	}
	if session != nil {
		roster, err := p.loadRoster()
		if err != nil {
			return nil, nil, err
		}
		for i := range roster {
			if roster[i].ID != session.AccountID {
				continue
			}
			tasks := append([]model.Task{}, roster[i].Tasks...)
			save := func(ts []model.Task) error {
				roster[i].Tasks = ts
				return p.saveRoster(roster)
			}
			return tasks, save, nil
		}
		// Dangling session: account gone from roster, treat as logged out.
	}

	tasks, err := p.loadAnonTasks()
	if err != nil {
		return nil, nil, err
	}
	return tasks, p.saveAnonTasks, nil
}

// Tasks returns the active task list
func (p *Planner) Tasks() ([]model.Task, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	tasks, _, err := p.activeLocked()
	return tasks, err
}

// nextTaskID derives a fresh id from the clock, bumping past any existing
// id so two tasks created in the same millisecond stay distinct.
func nextTaskID(tasks []model.Task) int64 {
	id := time.Now().UnixMilli()
	for _, t := range tasks {
		if t.ID >= id {
			id = t.ID + 1
		}
	}
	return id
}

// AddTask appends a task to the active list and returns it
func (p *Planner) AddTask(text string, hour, duration int) (*model.Task, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	text = strings.TrimSpace(text)
	switch {
	case text == "":
		return nil, &ValidationError{Field: "text", Reason: "required"}
	case !model.ValidHour(hour):
		return nil, &ValidationError{Field: "time", Reason: "outside the daily timeline"}
	case !model.ValidDuration(duration):
		return nil, &ValidationError{Field: "duration", Reason: "not an allowed duration"}
	}

	tasks, save, err := p.activeLocked()
	if err != nil {
		return nil, err
	}

	task := model.NewTask(nextTaskID(tasks), text, hour, duration)
	tasks = append(tasks, task)
	if err := save(tasks); err != nil {
		return nil, err
	}

	logger.Debug("Task added",
		logger.F("id", task.ID),
		logger.F("hour", hour),
		logger.F("duration", duration))
	return &task, nil
}

// DeleteTask removes the task with the given id and returns the resulting
// list. A missing id is a benign no-op, so deletion is idempotent.
func (p *Planner) DeleteTask(id int64) ([]model.Task, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	tasks, save, err := p.activeLocked()
	if err != nil {
		return nil, err
	}

	kept := tasks[:0:0]
	for _, t := range tasks {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	if len(kept) == len(tasks) {
		return tasks, nil
	}
	if err := save(kept); err != nil {
		return nil, err
	}

	logger.Debug("Task deleted", logger.F("id", id))
	return kept, nil
}

// UpdateTaskText replaces the text of the task with the given id, leaving
// every other field untouched. A missing id is a benign no-op.
func (p *Planner) UpdateTaskText(id int64, text string) ([]model.Task, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, &ValidationError{Field: "text", Reason: "required"}
	}

	tasks, save, err := p.activeLocked()
	if err != nil {
		return nil, err
	}

	for i := range tasks {
		if tasks[i].ID != id {
			continue
		}
		tasks[i].Text = text
		if err := save(tasks); err != nil {
			return nil, err
		}
		logger.Debug("Task updated", logger.F("id", id))
		break
	}
	return tasks, nil
}

// ClearTasks empties the active task list. Irreversible.
func (p *Planner) ClearTasks() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	_, save, err := p.activeLocked()
	if err != nil {
		return err
	}
	if err := save([]model.Task{}); err != nil {
		return err
	}

	logger.Info("All tasks cleared")
	return nil
}

// Stats computes the statistics panel values for the active list
func (p *Planner) Stats() (model.Stats, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	tasks, _, err := p.activeLocked()
	if err != nil {
		return model.Stats{}, err
	}
	return model.ComputeStats(tasks), nil
}
