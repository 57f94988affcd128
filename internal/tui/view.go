package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/existflow/dayplan/internal/model"
)

// View implements tea.Model
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.viewHeader())
	b.WriteString("\n\n")

	if m.mode == ModeAdd || m.mode == ModeEdit {
		b.WriteString(m.viewInputModal())
		b.WriteString("\n\n")
	}
	if m.mode == ModeConfirmClear {
		b.WriteString(ModalStyle.Render("Clear all tasks? This cannot be undone.  (y/N)"))
		b.WriteString("\n\n")
	}

	b.WriteString(m.viewTimeline())
	b.WriteString("\n")
	b.WriteString(m.viewStatusBar())

	return b.String()
}

func (m Model) viewHeader() string {
	who := "not signed in"
	if m.account != nil {
		who = m.account.Name
	}
	date := time.Now().Format("Monday, January 2, 2006")
	return HeaderStyle.Render(fmt.Sprintf("DayPlan — %s — %s", date, who))
}

func (m Model) viewTimeline() string {
	var b strings.Builder

	for hour := model.DayStart; hour <= model.DayEnd; hour++ {
		label := HourLabelStyle
		if hour == m.hourCursor {
			label = HourLabelActiveStyle
		}
		b.WriteString(label.Render(model.FormatHour(hour)))

		slot := m.slotTasks(hour)
		if len(slot) == 0 {
			b.WriteString(EmptySlotStyle.Render(" ·"))
		}
		for i, t := range slot {
			style := TaskStyle
			if hour == m.hourCursor && i == m.taskCursor && m.mode == ModeNormal {
				style = TaskSelectedStyle
			}
			b.WriteString(style.Render(t.Text))
			b.WriteString(DurationStyle.Render(fmt.Sprintf(" %dm", t.Duration)))
			if i < len(slot)-1 {
				b.WriteString(EmptySlotStyle.Render(" |"))
			}
		}
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) viewInputModal() string {
	verb := "Add task"
	if m.mode == ModeEdit {
		verb = "Edit task"
	}
	duration := model.DurationChoices[m.durIdx]
	header := fmt.Sprintf("%s at %s — %d min (tab to change)", verb, model.FormatHour(m.hourCursor), duration)
	return ModalStyle.Render(header + "\n\n" + m.input.View())
}

func (m Model) viewStatusBar() string {
	stats := fmt.Sprintf("%d tasks · %.1f h planned · %d%% productivity",
		m.stats.TotalTasks, m.stats.TotalHours, m.stats.Productivity)

	help := HelpStyle.Render("a add · e edit · d delete · C clear · ↑↓←→ move · q quit")

	line := StatusBarStyle.Render(stats + "   " + help)
	if m.message != "" {
		line += "\n" + MessageStyle.Render(m.message)
	}
	return line
}
