package model

import "math"

// Stats summarizes a day's planned workload
type Stats struct {
	TotalTasks   int     `json:"total_tasks"`
	TotalHours   float64 `json:"total_hours"`
	Productivity int     `json:"productivity"`
}

// ComputeStats derives the statistics panel values from a task list.
// Productivity is the share of an eight-task day, capped at 100.
func ComputeStats(tasks []Task) Stats {
	total := len(tasks)
	hours := 0.0
	for _, t := range tasks {
		hours += float64(t.Duration) / 60.0
	}
	score := int(math.Round(float64(total) / 8.0 * 100.0))
	if score > 100 {
		score = 100
	}
	return Stats{
		TotalTasks:   total,
		TotalHours:   hours,
		Productivity: score,
	}
}
