package postgresql_test

import (
	"context"
	"testing"

	"github.com/hangerline/hangerline-backend-go/internal/domain/user"
	"github.com/hangerline/hangerline-backend-go/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func createTestUser(t *testing.T, setup *TestDatabaseSetup, username string, isStaff bool) string {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	var id string
	err = setup.DB.QueryRow(context.Background(), `
		INSERT INTO dashboard_user (username, password_hash, is_staff)
		VALUES ($1, $2, $3)
		RETURNING id::TEXT
	`, username, string(hash), isStaff).Scan(&id)
	require.NoError(t, err)
	return id
}

func TestUserRepository_GetByUsername(t *testing.T) {
	setup := NewTestDatabase(t)
	repo := postgresql.NewUserRepository(setup.DB)
	ctx := context.Background()

	id := createTestUser(t, setup, "supervisor", true)

	got, err := repo.GetByUsername(ctx, "supervisor")
	require.NoError(t, err)
	assert.Equal(t, id, got.ID)
	assert.True(t, got.IsStaff)
	assert.True(t, got.IsActive)
	assert.Nil(t, got.LastLogin)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(got.PasswordHash), []byte("password123")))

	_, err = repo.GetByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestUserRepository_UpdateLastLogin(t *testing.T) {
	setup := NewTestDatabase(t)
	repo := postgresql.NewUserRepository(setup.DB)
	ctx := context.Background()

	id := createTestUser(t, setup, "viewer", false)

	require.NoError(t, repo.UpdateLastLogin(ctx, id))

	got, err := repo.GetByUsername(ctx, "viewer")
	require.NoError(t, err)
	assert.NotNil(t, got.LastLogin)

	err = repo.UpdateLastLogin(ctx, "00000000-0000-0000-0000-000000000000")
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}
