package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/existflow/dayplan/internal/logger"
	"github.com/existflow/dayplan/internal/model"
	"github.com/existflow/dayplan/internal/schedule"
)

// Mode represents the current UI mode
type Mode int

const (
	ModeNormal Mode = iota
	ModeAdd
	ModeEdit
	ModeConfirmClear
)

// Model is the timeline TUI model
type Model struct {
	planner *schedule.Planner
	account *model.Account
	tasks   []model.Task
	stats   model.Stats

	// UI state
	width      int
	height     int
	mode       Mode
	hourCursor int // selected hour row on the timeline
	taskCursor int // selected task within the hour row

	// Add/edit input
	input  textinput.Model
	durIdx int   // index into model.DurationChoices
	editID int64 // task being edited in ModeEdit

	message string
}

// NewModel creates the timeline model and loads current state
func NewModel(planner *schedule.Planner) (Model, error) {
	ti := textinput.New()
	ti.Placeholder = "What are you planning?"
	ti.CharLimit = 200
	ti.Width = 40

	m := Model{
		planner:    planner,
		hourCursor: model.DayStart,
		input:      ti,
		durIdx:     1, // 30 minutes
	}
	if err := m.reload(); err != nil {
		return Model{}, err
	}

	logger.Debug("TUI model initialized", logger.F("tasks", len(m.tasks)))
	return m, nil
}

// reload re-reads account, tasks and stats from the planner
func (m *Model) reload() error {
	account, err := m.planner.CurrentAccount()
	if err != nil {
		return err
	}
	tasks, err := m.planner.Tasks()
	if err != nil {
		return err
	}
	stats, err := m.planner.Stats()
	if err != nil {
		return err
	}

	m.account = account
	m.tasks = tasks
	m.stats = stats
	m.clampTaskCursor()
	return nil
}

// slotTasks returns the tasks assigned to an hour, in insertion order
func (m *Model) slotTasks(hour int) []model.Task {
	var slot []model.Task
	for _, t := range m.tasks {
		if t.Hour == hour {
			slot = append(slot, t)
		}
	}
	return slot
}

func (m *Model) clampTaskCursor() {
	n := len(m.slotTasks(m.hourCursor))
	if m.taskCursor >= n {
		m.taskCursor = n - 1
	}
	if m.taskCursor < 0 {
		m.taskCursor = 0
	}
}

// selectedTask returns the task under the cursor, or nil
func (m *Model) selectedTask() *model.Task {
	slot := m.slotTasks(m.hourCursor)
	if m.taskCursor < len(slot) {
		t := slot[m.taskCursor]
		return &t
	}
	return nil
}
