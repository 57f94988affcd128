package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/existflow/dayplan/internal/logger"
	"github.com/existflow/dayplan/internal/model"
)

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case ModeNormal:
			return m.updateNormal(msg)
		case ModeAdd, ModeEdit:
			return m.updateInput(msg)
		case ModeConfirmClear:
			return m.updateConfirmClear(msg)
		}
	}
	return m, nil
}

func (m Model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, keys.Up):
		if m.hourCursor > model.DayStart {
			m.hourCursor--
			m.taskCursor = 0
		}

	case key.Matches(msg, keys.Down):
		if m.hourCursor < model.DayEnd {
			m.hourCursor++
			m.taskCursor = 0
		}

	case key.Matches(msg, keys.Left):
		if m.taskCursor > 0 {
			m.taskCursor--
		}

	case key.Matches(msg, keys.Right):
		if m.taskCursor < len(m.slotTasks(m.hourCursor))-1 {
			m.taskCursor++
		}

	case key.Matches(msg, keys.Add):
		m.mode = ModeAdd
		m.message = ""
		m.input.SetValue("")
		m.input.Focus()
		return m, nil

	case key.Matches(msg, keys.Edit):
		task := m.selectedTask()
		if task == nil {
			m.message = "Nothing to edit in this slot"
			return m, nil
		}
		m.mode = ModeEdit
		m.message = ""
		m.editID = task.ID
		m.input.SetValue(task.Text)
		m.input.CursorEnd()
		m.input.Focus()
		return m, nil

	case key.Matches(msg, keys.Delete):
		task := m.selectedTask()
		if task == nil {
			m.message = "Nothing to delete in this slot"
			return m, nil
		}
		if _, err := m.planner.DeleteTask(task.ID); err != nil {
			m.message = err.Error()
			return m, nil
		}
		if err := m.reload(); err != nil {
			m.message = err.Error()
		} else {
			m.message = "Task deleted"
		}

	case key.Matches(msg, keys.Clear):
		if len(m.tasks) == 0 {
			m.message = "Nothing to clear"
			return m, nil
		}
		m.mode = ModeConfirmClear
		m.message = ""
	}
	return m, nil
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Escape):
		m.mode = ModeNormal
		m.input.Blur()
		return m, nil

	case key.Matches(msg, keys.Duration):
		m.durIdx = (m.durIdx + 1) % len(model.DurationChoices)
		return m, nil

	case key.Matches(msg, keys.Enter):
		text := m.input.Value()
		duration := model.DurationChoices[m.durIdx]

		var err error
		if m.mode == ModeAdd {
			_, err = m.planner.AddTask(text, m.hourCursor, duration)
		} else {
			_, err = m.planner.UpdateTaskText(m.editID, text)
		}
		if err != nil {
			m.message = err.Error()
			return m, nil
		}

		m.mode = ModeNormal
		m.input.Blur()
		if err := m.reload(); err != nil {
			m.message = err.Error()
		} else {
			m.message = "Saved"
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateConfirmClear(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		if err := m.planner.ClearTasks(); err != nil {
			m.message = err.Error()
		} else if err := m.reload(); err != nil {
			m.message = err.Error()
		} else {
			m.message = "All tasks cleared"
			logger.Info("Timeline cleared from TUI")
		}
		m.mode = ModeNormal
	default:
		m.mode = ModeNormal
		m.message = fmt.Sprintf("Kept %d tasks", len(m.tasks))
	}
	return m, nil
}
