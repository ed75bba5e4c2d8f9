//go:build integration
// +build integration

package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/renantrendt/yates-inc-sub001/internal/domain/budget"
	"github.com/renantrendt/yates-inc-sub001/internal/domain/tasks"
	"github.com/renantrendt/yates-inc-sub001/internal/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTask(employeeID, title, status string, created time.Time) *tasks.Task {
	return &tasks.Task{
		ID:         uuid.NewString(),
		EmployeeID: employeeID,
		Title:      title,
		Status:     status,
		CreatedAt:  created,
		UpdatedAt:  created,
	}
}

func TestTaskSqliteRepository(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()
	employeeID := uuid.NewString()
	now := time.Now().UTC()

	first := newTask(employeeID, "Count rocks", tasks.StatusTodo, now)
	second := newTask(employeeID, "Polish rocks", tasks.StatusDone, now.Add(time.Second))
	other := newTask(uuid.NewString(), "Sell air", tasks.StatusTodo, now)
	for _, task := range []*tasks.Task{first, second, other} {
		require.NoError(t, tc.TaskRepo.Create(ctx, task))
	}

	query := tasks.NewQuery()
	query.EmployeeID = employeeID
	list, err := tc.TaskRepo.List(ctx, query)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, first.ID, list[0].ID)

	query.Status = tasks.StatusDone
	list, err = tc.TaskRepo.List(ctx, query)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, second.ID, list[0].ID)

	_, err = tc.TaskRepo.List(ctx, &tasks.Query{SortBy: "priority"})
	assert.Error(t, err)

	first.Status = tasks.StatusInProgress
	require.NoError(t, tc.TaskRepo.UpdateByID(ctx, first))
	got, err := tc.TaskRepo.GetByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, tasks.StatusInProgress, got.Status)

	require.NoError(t, tc.TaskRepo.DeleteByID(ctx, first.ID))
	_, err = tc.TaskRepo.GetByID(ctx, first.ID)
	assert.ErrorIs(t, err, tasks.ErrNotFound)
	assert.ErrorIs(t, tc.TaskRepo.DeleteByID(ctx, first.ID), tasks.ErrNotFound)
}

func TestBudgetSqliteRepository(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()
	now := time.Now().UTC()

	b := &budget.Budget{ID: uuid.NewString(), OwnerID: uuid.NewString(), Name: "Rocks", LimitCents: 10_000, CreatedAt: now}
	require.NoError(t, tc.BudgetRepo.CreateBudget(ctx, b))

	for i, amount := range []int64{-2_500, 1_000, -500} {
		require.NoError(t, tc.BudgetRepo.AddTransaction(ctx, &budget.Transaction{
			ID:          uuid.NewString(),
			BudgetID:    b.ID,
			AmountCents: amount,
			Category:    "rocks",
			OccurredAt:  now.Add(time.Duration(i) * time.Minute),
		}))
	}

	txs, err := tc.BudgetRepo.ListTransactions(ctx, b.ID, &budget.Query{SortOrder: "desc"})
	require.NoError(t, err)
	require.Len(t, txs, 3)
	assert.Equal(t, int64(-500), txs[0].AmountCents)

	employeeID := uuid.NewString()
	paycheck := &budget.Paycheck{
		ID:          uuid.NewString(),
		EmployeeID:  employeeID,
		GrossCents:  200_000,
		TaxCents:    30_000,
		NetCents:    170_000,
		PeriodStart: now.Add(-14 * 24 * time.Hour),
		PeriodEnd:   now,
		IssuedAt:    now,
	}
	income := &budget.Transaction{
		ID:          uuid.NewString(),
		BudgetID:    b.ID,
		AmountCents: paycheck.NetCents,
		Category:    budget.CategoryPaycheck,
		OccurredAt:  now.Add(time.Hour),
	}
	require.NoError(t, tc.BudgetRepo.CreatePaycheck(ctx, paycheck, income))

	paychecks, err := tc.BudgetRepo.ListPaychecks(ctx, employeeID)
	require.NoError(t, err)
	require.Len(t, paychecks, 1)
	assert.Equal(t, int64(170_000), paychecks[0].NetCents)

	txs, err = tc.BudgetRepo.ListTransactions(ctx, b.ID, &budget.Query{Category: budget.CategoryPaycheck})
	require.NoError(t, err)
	require.Len(t, txs, 1)

	budgets, err := tc.BudgetRepo.ListBudgets(ctx, b.OwnerID)
	require.NoError(t, err)
	require.Len(t, budgets, 1)

	require.NoError(t, tc.BudgetRepo.DeleteBudget(ctx, b.ID))
	_, err = tc.BudgetRepo.GetBudget(ctx, b.ID)
	assert.ErrorIs(t, err, budget.ErrNotFound)
	assert.ErrorIs(t, tc.BudgetRepo.DeleteBudget(ctx, b.ID), budget.ErrNotFound)
}
