package postgresql_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hangerline/hangerline-backend-go/internal/domain/linetarget"
	"github.com/hangerline/hangerline-backend-go/internal/domain/production"
	"github.com/hangerline/hangerline-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineTargetRepository_DetailTotals(t *testing.T) {
	setup := NewTestDatabase(t)
	repo := postgresql.NewLineTargetRepository(setup.DB)
	ctx := context.Background()
	date := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	var targetID string
	err := postgresql.WithTransaction(ctx, setup.DB, func(tx pgx.Tx) error {
		txCtx := postgresql.ContextWithTx(ctx, tx)
		created, err := repo.Create(txCtx, production.LineTarget{
			Line:       "line-21",
			TargetDate: date,
			Shift:      production.ShiftDay,
			LoadingQty: 900,
		})
		if err != nil {
			return err
		}
		targetID = created.ID
		return nil
	})
	require.NoError(t, err)
	require.NotEmpty(t, targetID)

	first, err := repo.CreateDetail(ctx, production.LineTargetDetail{LineTargetID: targetID, TargetQty: 400})
	require.NoError(t, err)
	_, err = repo.CreateDetail(ctx, production.LineTargetDetail{LineTargetID: targetID, TargetQty: 350})
	require.NoError(t, err)

	total, err := repo.RecalculateTotal(ctx, targetID)
	require.NoError(t, err)
	assert.Equal(t, int64(750), total)

	first.TargetQty = 500
	_, err = repo.UpdateDetail(ctx, first)
	require.NoError(t, err)
	total, err = repo.RecalculateTotal(ctx, targetID)
	require.NoError(t, err)
	assert.Equal(t, int64(850), total)

	require.NoError(t, repo.DeleteDetail(ctx, targetID, first.ID))
	total, err = repo.RecalculateTotal(ctx, targetID)
	require.NoError(t, err)
	assert.Equal(t, int64(350), total)

	got, err := repo.GetByID(ctx, targetID)
	require.NoError(t, err)
	assert.Equal(t, int64(350), got.TotalTargetQty)
	assert.Equal(t, "line-21", got.Line)
	assert.Equal(t, production.ShiftDay, got.Shift)

	details, err := repo.ListDetails(ctx, targetID)
	require.NoError(t, err)
	assert.Len(t, details, 1)
}

func TestLineTargetRepository_Errors(t *testing.T) {
	setup := NewTestDatabase(t)
	repo := postgresql.NewLineTargetRepository(setup.DB)
	ctx := context.Background()
	date := time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)

	target := production.LineTarget{Line: "line-22", TargetDate: date, Shift: production.ShiftNight}
	created, err := repo.Create(ctx, target)
	require.NoError(t, err)

	_, err = repo.Create(ctx, target)
	assert.ErrorIs(t, err, linetarget.ErrLineTargetExists)

	found, err := repo.GetByLineDateShift(ctx, "line-22", date, production.ShiftNight)
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	_, err = repo.GetByLineDateShift(ctx, "line-22", date, production.ShiftDay)
	assert.ErrorIs(t, err, linetarget.ErrLineTargetNotFound)

	_, err = repo.GetByID(ctx, "00000000-0000-0000-0000-000000000000")
	assert.ErrorIs(t, err, linetarget.ErrLineTargetNotFound)

	err = repo.DeleteDetail(ctx, created.ID, "00000000-0000-0000-0000-000000000000")
	assert.ErrorIs(t, err, linetarget.ErrLineTargetDetailNotFound)
}

func TestLineTargetRepository_WritesJoinContextTransaction(t *testing.T) {
	setup := NewTestDatabase(t)
	repo := postgresql.NewLineTargetRepository(setup.DB)
	ctx := context.Background()
	date := time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC)
	abort := errors.New("abort")

	err := postgresql.WithTransaction(ctx, setup.DB, func(tx pgx.Tx) error {
		txCtx := postgresql.ContextWithTx(ctx, tx)
		if _, err := repo.Create(txCtx, production.LineTarget{Line: "line-23", TargetDate: date, Shift: production.ShiftDay}); err != nil {
			return err
		}
		return abort
	})
	require.ErrorIs(t, err, abort)

	_, err = repo.GetByLineDateShift(ctx, "line-23", date, production.ShiftDay)
	assert.ErrorIs(t, err, linetarget.ErrLineTargetNotFound)
}
