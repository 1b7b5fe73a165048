package users

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/avdoshkin/helpnet/internal/common"
	"github.com/avdoshkin/helpnet/internal/logging"
	"github.com/avdoshkin/helpnet/internal/models"
	"github.com/avdoshkin/helpnet/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSQLiteRepo(t *testing.T) *SQLiteRepository {
	t.Helper()
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	dsn := "sqlite:" + filepath.Join(t.TempDir(), "users_test.db")
	gw, err := storage.New(context.Background(), dsn, logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = gw.Close() })
	return NewSQLiteRepository(gw.DB())
}

func TestSQLiteCreate_RoundTrip(t *testing.T) {
	repo := newSQLiteRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, &models.User{
		Username:       "alice",
		Email:          "a@x.com",
		HashedPassword: "$2a$10$fakefakefakefakefakefa",
		Skills:         []string{"go", "gardening"},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	assert.False(t, created.CreatedAt.IsZero(), "created_at must be set by the storage layer")

	got, err := repo.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "alice", got.Username)
	assert.Equal(t, "a@x.com", got.Email)
	assert.Equal(t, []string{"go", "gardening"}, got.Skills)

	byEmail, err := repo.GetByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, got.ID, byEmail.ID)
}

func TestSQLiteCreate_NilSkillsStoredAsEmptyList(t *testing.T) {
	repo := newSQLiteRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, &models.User{
		Username:       "bob",
		Email:          "b@x.com",
		HashedPassword: "$2a$10$fakefakefakefakefakefa",
	})
	require.NoError(t, err)
	assert.NotNil(t, created.Skills)
	assert.Empty(t, created.Skills)

	got, err := repo.GetByUsername(ctx, "bob")
	require.NoError(t, err)
	assert.NotNil(t, got.Skills)
	assert.Empty(t, got.Skills)
}

func TestSQLiteCreate_DuplicateUsername(t *testing.T) {
	repo := newSQLiteRepo(t)
	ctx := context.Background()

	_, err := repo.Create(ctx, &models.User{
		Username: "carol", Email: "c1@x.com", HashedPassword: "h",
	})
	require.NoError(t, err)

	_, err = repo.Create(ctx, &models.User{
		Username: "carol", Email: "c2@x.com", HashedPassword: "h",
	})
	assert.ErrorIs(t, err, common.ErrDuplicateIdentity)
}

func TestSQLiteCreate_DuplicateEmail(t *testing.T) {
	repo := newSQLiteRepo(t)
	ctx := context.Background()

	_, err := repo.Create(ctx, &models.User{
		Username: "dave", Email: "d@x.com", HashedPassword: "h",
	})
	require.NoError(t, err)

	_, err = repo.Create(ctx, &models.User{
		Username: "dave2", Email: "d@x.com", HashedPassword: "h",
	})
	assert.ErrorIs(t, err, common.ErrDuplicateIdentity)
}

func TestSQLiteGet_NotFound(t *testing.T) {
	repo := newSQLiteRepo(t)
	ctx := context.Background()

	_, err := repo.GetByUsername(ctx, "ghost")
	assert.ErrorIs(t, err, common.ErrNotFound)

	_, err = repo.GetByEmail(ctx, "ghost@x.com")
	assert.ErrorIs(t, err, common.ErrNotFound)
}
