package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidHour(t *testing.T) {
	assert.False(t, ValidHour(5))
	assert.True(t, ValidHour(6))
	assert.True(t, ValidHour(12))
	assert.True(t, ValidHour(22))
	assert.False(t, ValidHour(23))
}

func TestValidDuration(t *testing.T) {
	for _, d := range DurationChoices {
		assert.True(t, ValidDuration(d))
	}
	assert.False(t, ValidDuration(0))
	assert.False(t, ValidDuration(25))
	assert.False(t, ValidDuration(-30))
}

func TestFormatHour(t *testing.T) {
	assert.Equal(t, "6 AM", FormatHour(6))
	assert.Equal(t, "11 AM", FormatHour(11))
	assert.Equal(t, "12 PM", FormatHour(12))
	assert.Equal(t, "1 PM", FormatHour(13))
	assert.Equal(t, "10 PM", FormatHour(22))
}

func TestComputeStats(t *testing.T) {
	stats := ComputeStats([]Task{
		NewTask(1, "Gym", 7, 30),
		NewTask(2, "Deep work", 9, 120),
	})
	assert.Equal(t, 2, stats.TotalTasks)
	assert.InDelta(t, 2.5, stats.TotalHours, 0.001)
	assert.Equal(t, 25, stats.Productivity)
}

func TestComputeStats_Empty(t *testing.T) {
	stats := ComputeStats(nil)
	assert.Equal(t, 0, stats.TotalTasks)
	assert.Equal(t, 0.0, stats.TotalHours)
	assert.Equal(t, 0, stats.Productivity)
}

func TestComputeStats_ProductivityCapped(t *testing.T) {
	var tasks []Task
	for i := 0; i < 12; i++ {
		tasks = append(tasks, NewTask(int64(i), "t", 8, 15))
	}
	assert.Equal(t, 100, ComputeStats(tasks).Productivity)
}
