package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/asset-tracker/internal/config"
	"github.com/MKhiriev/asset-tracker/internal/logger"
	"github.com/MKhiriev/asset-tracker/models"
)

// newSQLiteStorages opens a migrated in-memory SQLite database.
func newSQLiteStorages(t *testing.T) *Storages {
	t.Helper()

	ctx := context.Background()
	s, err := NewStorages(ctx, config.Storage{DB: config.DB{DSN: ":memory:"}}, logger.Nop())
	if err != nil {
		t.Skipf("sqlite unavailable (built without cgo?): %v", err)
	}
	t.Cleanup(func() { s.Close() })

	require.NoError(t, s.Ping(ctx))
	return s
}

func TestSQLiteStorages_Users(t *testing.T) {
	s := newSQLiteStorages(t)
	ctx := context.Background()

	created, err := s.UserRepository.CreateUser(ctx, models.User{
		Username: "admin", PasswordHash: "hash", CreatedAt: time.Now().UTC(),
	})
	require.NoError(t, err)
	assert.Positive(t, created.UserID)

	_, err = s.UserRepository.CreateUser(ctx, models.User{Username: "admin", PasswordHash: "x", CreatedAt: time.Now().UTC()})
	assert.ErrorIs(t, err, ErrLoginAlreadyExists)

	found, err := s.UserRepository.FindUserByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, created.UserID, found.UserID)
	assert.Equal(t, "hash", found.PasswordHash)

	_, err = s.UserRepository.FindUserByUsername(ctx, "Admin")
	assert.ErrorIs(t, err, ErrNoUserWasFound)
}

func TestSQLiteStorages_UserCreatedAtDefault(t *testing.T) {
	s := newSQLiteStorages(t)
	ctx := context.Background()

	_, err := s.UserRepository.CreateUser(ctx, models.User{Username: "seed", PasswordHash: "hash"})
	require.NoError(t, err)

	found, err := s.UserRepository.FindUserByUsername(ctx, "seed")
	require.NoError(t, err)
	assert.False(t, found.CreatedAt.IsZero(), "created_at must come from the column default")
	assert.WithinDuration(t, time.Now().UTC(), found.CreatedAt, time.Minute)
}

func TestSQLiteStorages_AssetLifecycle(t *testing.T) {
	s := newSQLiteStorages(t)
	repo := s.AssetRepository
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	john := "John Doe"

	laptop, err := repo.Create(ctx, models.Asset{
		AssetID: "LAP-001", Name: "MacBook Pro", Category: models.CategoryLaptop,
		Status: models.StatusAllocated, AssignedTo: &john, CreatedAt: base,
	})
	require.NoError(t, err)
	assert.Positive(t, laptop.ID)
	require.NotNil(t, laptop.AssignedTo)
	assert.Equal(t, john, *laptop.AssignedTo)

	card, err := repo.Create(ctx, models.Asset{
		AssetID: "AC-100", Name: "Door badge", Category: models.CategoryAccessCard,
		Status: models.StatusAvailable, CreatedAt: base.Add(time.Minute),
	})
	require.NoError(t, err)
	assert.Nil(t, card.AssignedTo)

	// duplicate business id
	_, err = repo.Create(ctx, models.Asset{
		AssetID: "LAP-001", Name: "Other", Category: models.CategoryLaptop,
		Status: models.StatusAvailable, CreatedAt: base,
	})
	assert.ErrorIs(t, err, ErrDuplicateAssetID)

	// the table itself refuses an assigned Faulty asset
	_, err = repo.Create(ctx, models.Asset{
		AssetID: "MON-1", Name: "Dell", Category: models.CategoryMonitor,
		Status: models.StatusFaulty, AssignedTo: &john, CreatedAt: base,
	})
	assert.ErrorIs(t, err, ErrConstraintViolated)

	// newest first
	all, err := repo.List(ctx, models.AssetFilter{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "AC-100", all[0].AssetID)
	assert.Equal(t, "LAP-001", all[1].AssetID)

	// case-insensitive search over name, asset_id and assigned_to
	for _, term := range []string{"lap", "MACBOOK", "john"} {
		found, err := repo.List(ctx, models.AssetFilter{Search: term})
		require.NoError(t, err, term)
		require.Len(t, found, 1, term)
		assert.Equal(t, "LAP-001", found[0].AssetID, term)
	}

	// wildcards are literal
	found, err := repo.List(ctx, models.AssetFilter{Search: "%"})
	require.NoError(t, err)
	assert.Empty(t, found)

	byCategory, err := repo.List(ctx, models.AssetFilter{Category: models.CategoryAccessCard})
	require.NoError(t, err)
	require.Len(t, byCategory, 1)
	assert.Equal(t, card.ID, byCategory[0].ID)

	byStatus, err := repo.List(ctx, models.AssetFilter{Status: models.StatusFaulty})
	require.NoError(t, err)
	assert.Empty(t, byStatus)

	// full update keeps created_at
	updated, err := repo.Update(ctx, models.Asset{
		ID: laptop.ID, AssetID: "LAP-001", Name: "MacBook Pro 14", Category: models.CategoryLaptop,
		Status: models.StatusFaulty,
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusFaulty, updated.Status)
	assert.Nil(t, updated.AssignedTo)
	assert.True(t, base.Equal(updated.CreatedAt), "created_at changed: %v", updated.CreatedAt)

	_, err = repo.Update(ctx, models.Asset{
		ID: card.ID, AssetID: "LAP-001", Name: "Door badge", Category: models.CategoryAccessCard,
		Status: models.StatusAvailable,
	})
	assert.ErrorIs(t, err, ErrDuplicateAssetID)

	_, err = repo.Update(ctx, models.Asset{
		ID: 999, AssetID: "X", Name: "X", Category: models.CategoryPhone, Status: models.StatusAvailable,
	})
	assert.ErrorIs(t, err, ErrAssetNotFound)

	require.NoError(t, repo.Delete(ctx, card.ID))
	assert.ErrorIs(t, repo.Delete(ctx, card.ID), ErrAssetNotFound)

	remaining, err := repo.List(ctx, models.AssetFilter{})
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, laptop.ID, remaining[0].ID)
}
