package schedule

import (
	"encoding/json"
	"testing"

	"github.com/existflow/dayplan/internal/kvstore"
	"github.com/existflow/dayplan/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rosterTasks reads the signed-in account's tasks straight from the store,
// bypassing the planner, to check both read paths observe the same data.
func rosterTasks(t *testing.T, store kvstore.Store, email string) []model.Task {
	t.Helper()
	raw, ok, err := store.Get("accounts")
	require.NoError(t, err)
	require.True(t, ok)

	var roster []model.Account
	require.NoError(t, json.Unmarshal([]byte(raw), &roster))
	for _, a := range roster {
		if a.Email == email {
			return a.Tasks
		}
	}
	t.Fatalf("account %s not in roster", email)
	return nil
}

func signedInPlanner(t *testing.T) (*Planner, kvstore.Store) {
	t.Helper()
	store := kvstore.NewMemory()
	p := New(store)
	_, err := p.SignUp("Ann", "ann@x.com", "secret1", "secret1")
	require.NoError(t, err)
	return p, store
}

func TestAddTask(t *testing.T) {
	p, store := signedInPlanner(t)

	gym, err := p.AddTask("Gym", 7, 30)
	require.NoError(t, err)
	lunch, err := p.AddTask("Lunch", 12, 60)
	require.NoError(t, err)

	assert.NotEqual(t, gym.ID, lunch.ID)
	assert.Equal(t, 7, gym.Hour)
	assert.Equal(t, 12, lunch.Hour)
	assert.False(t, gym.Completed)

	tasks, err := p.Tasks()
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, "Gym", tasks[0].Text)
	assert.Equal(t, "Lunch", tasks[1].Text)

	// The roster entry and the session-resolved view must agree.
	assert.Equal(t, tasks, rosterTasks(t, store, "ann@x.com"))
}

func TestAddTask_Validation(t *testing.T) {
	p, _ := signedInPlanner(t)
	var verr *ValidationError

	_, err := p.AddTask("   ", 7, 30)
	require.ErrorAs(t, err, &verr)

	_, err = p.AddTask("Early", 5, 30)
	require.ErrorAs(t, err, &verr)

	_, err = p.AddTask("Late", 23, 30)
	require.ErrorAs(t, err, &verr)

	_, err = p.AddTask("Odd duration", 7, 17)
	require.ErrorAs(t, err, &verr)

	tasks, err := p.Tasks()
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestAddTask_TrimsText(t *testing.T) {
	p, _ := signedInPlanner(t)

	task, err := p.AddTask("  Gym  ", 7, 30)
	require.NoError(t, err)
	assert.Equal(t, "Gym", task.Text)
}

func TestDeleteTask_Idempotent(t *testing.T) {
	p, store := signedInPlanner(t)

	gym, err := p.AddTask("Gym", 7, 30)
	require.NoError(t, err)
	_, err = p.AddTask("Lunch", 12, 60)
	require.NoError(t, err)

	after1, err := p.DeleteTask(gym.ID)
	require.NoError(t, err)
	require.Len(t, after1, 1)
	assert.Equal(t, "Lunch", after1[0].Text)

	// Second delete of the same id observes the same state.
	after2, err := p.DeleteTask(gym.ID)
	require.NoError(t, err)
	assert.Equal(t, after1, after2)

	assert.Equal(t, after2, rosterTasks(t, store, "ann@x.com"))
}

func TestUpdateTaskText_PreservesOtherFields(t *testing.T) {
	p, store := signedInPlanner(t)

	task, err := p.AddTask("Gym", 7, 30)
	require.NoError(t, err)

	tasks, err := p.UpdateTaskText(task.ID, "Gym - leg day")
	require.NoError(t, err)
	require.Len(t, tasks, 1)

	updated := tasks[0]
	assert.Equal(t, "Gym - leg day", updated.Text)
	assert.Equal(t, task.ID, updated.ID)
	assert.Equal(t, task.Hour, updated.Hour)
	assert.Equal(t, task.Duration, updated.Duration)
	assert.Equal(t, task.Completed, updated.Completed)
	assert.True(t, task.Created.Equal(updated.Created))

	assert.Equal(t, tasks, rosterTasks(t, store, "ann@x.com"))
}

func TestUpdateTaskText_MissingIDIsNoOp(t *testing.T) {
	p, _ := signedInPlanner(t)

	task, err := p.AddTask("Gym", 7, 30)
	require.NoError(t, err)

	tasks, err := p.UpdateTaskText(task.ID+1, "Other")
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Gym", tasks[0].Text)
}

func TestUpdateTaskText_EmptyRejected(t *testing.T) {
	p, _ := signedInPlanner(t)

	task, err := p.AddTask("Gym", 7, 30)
	require.NoError(t, err)

	var verr *ValidationError
	_, err = p.UpdateTaskText(task.ID, "   ")
	require.ErrorAs(t, err, &verr)
}

func TestClearTasks(t *testing.T) {
	p, store := signedInPlanner(t)

	_, err := p.AddTask("Gym", 7, 30)
	require.NoError(t, err)
	_, err = p.AddTask("Lunch", 12, 60)
	require.NoError(t, err)

	require.NoError(t, p.ClearTasks())

	tasks, err := p.Tasks()
	require.NoError(t, err)
	assert.Empty(t, tasks)
	assert.Empty(t, rosterTasks(t, store, "ann@x.com"))
}

func TestAnonymousFallback(t *testing.T) {
	store := kvstore.NewMemory()
	p := New(store)

	// No session: tasks land on the device-global list.
	_, err := p.AddTask("Errand", 10, 30)
	require.NoError(t, err)

	tasks, err := p.Tasks()
	require.NoError(t, err)
	require.Len(t, tasks, 1)

	raw, ok, err := store.Get("schedule")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Contains(t, raw, "Errand")

	// Signing up switches to the empty account list.
	_, err = p.SignUp("Ann", "ann@x.com", "secret1", "secret1")
	require.NoError(t, err)

	tasks, err = p.Tasks()
	require.NoError(t, err)
	assert.Empty(t, tasks)

	// Logging out surfaces the anonymous list again.
	require.NoError(t, p.LogOut())
	tasks, err = p.Tasks()
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Errand", tasks[0].Text)
}

func TestTasksScopedPerAccount(t *testing.T) {
	p, _ := signedInPlanner(t)

	_, err := p.AddTask("Ann's task", 8, 30)
	require.NoError(t, err)

	_, err = p.SignUp("Bob", "bob@x.com", "secret2", "secret2")
	require.NoError(t, err)

	tasks, err := p.Tasks()
	require.NoError(t, err)
	assert.Empty(t, tasks, "Bob starts with an empty schedule")

	_, err = p.LogIn("ann@x.com", "secret1")
	require.NoError(t, err)
	tasks, err = p.Tasks()
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Ann's task", tasks[0].Text)
}

func TestStats(t *testing.T) {
	p, _ := signedInPlanner(t)

	_, err := p.AddTask("Gym", 7, 30)
	require.NoError(t, err)
	_, err = p.AddTask("Deep work", 9, 120)
	require.NoError(t, err)

	stats, err := p.Stats()
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalTasks)
	assert.InDelta(t, 2.5, stats.TotalHours, 0.001)
	assert.Equal(t, 25, stats.Productivity)
}

func TestTheme(t *testing.T) {
	p := newTestPlanner(t)

	theme, err := p.Theme()
	require.NoError(t, err)
	assert.Equal(t, "dark", theme)

	require.NoError(t, p.SetTheme("light"))
	theme, err = p.Theme()
	require.NoError(t, err)
	assert.Equal(t, "light", theme)
}
