//go:build unit
// +build unit

package tasks

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validTask() *Task {
	now := time.Now()
	return &Task{
		ID:         uuid.NewString(),
		EmployeeID: uuid.NewString(),
		Title:      "Polish the rocks",
		Status:     StatusTodo,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func TestTask_Validate(t *testing.T) {
	require.NoError(t, validTask().Validate())

	task := validTask()
	task.Title = ""
	assert.Error(t, task.Validate())

	task = validTask()
	task.Status = "blocked"
	assert.Error(t, task.Validate())
}

func TestTask_CanTransition(t *testing.T) {
	tests := []struct {
		from, to string
		allowed  bool
	}{
		{StatusTodo, StatusInProgress, true},
		{StatusTodo, StatusDone, true},
		{StatusInProgress, StatusTodo, true},
		{StatusDone, StatusInProgress, true},
		{StatusDone, StatusTodo, false},
		{StatusTodo, "archived", false},
	}

	for _, tt := range tests {
		t.Run(tt.from+"->"+tt.to, func(t *testing.T) {
			task := validTask()
			task.Status = tt.from
			assert.Equal(t, tt.allowed, task.CanTransition(tt.to))
		})
	}
}

func TestTask_Overdue(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Hour)

	task := validTask()
	assert.False(t, task.Overdue(now))

	task.DueDate = &past
	assert.True(t, task.Overdue(now))

	task.Status = StatusDone
	assert.False(t, task.Overdue(now))
}

func TestQuery_Validate(t *testing.T) {
	require.NoError(t, NewQuery().Validate())
	assert.Error(t, (&Query{Limit: -1}).Validate())
	assert.Error(t, (&Query{SortBy: "password"}).Validate())
	assert.Error(t, (&Query{EmployeeID: "not-a-uuid"}).Validate())
}
