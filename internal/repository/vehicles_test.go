package repository

import (
	"context"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ozgarage/workshop-tracker/internal/entity"
)

func openTestDB(t *testing.T) VehicleRepository {
	t.Helper()
	db, closeDB, err := Open(context.Background(), Config{
		URL: "file:" + filepath.Join(t.TempDir(), "test.db"),
	}, slog.New(slog.DiscardHandler))
	require.NoError(t, err)
	t.Cleanup(closeDB)
	return NewVehicleRepository(db, nil)
}

func TestSaveAndListVehicles(t *testing.T) {
	repo := openTestDB(t)
	ctx := context.Background()

	require.NoError(t, repo.SaveVehicle(ctx, entity.Vehicle{
		Registration: "ABC123",
		State:        "VIC",
		Make:         "Toyota",
		Model:        "Corolla ZR",
		OwnerName:    "Jess",
	}))
	require.NoError(t, repo.SaveVehicle(ctx, entity.Vehicle{
		Registration: "XYZ789",
		State:        "NSW",
		Make:         "Mazda",
	}))

	got, err := repo.ListVehicles(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "ABC123", got[0].Registration)
	assert.Equal(t, "Jess", got[0].OwnerName)
	assert.Equal(t, "XYZ789", got[1].Registration)
}

func TestSaveVehicleUpsertsByCaseInsensitiveKey(t *testing.T) {
	repo := openTestDB(t)
	ctx := context.Background()

	require.NoError(t, repo.SaveVehicle(ctx, entity.Vehicle{Registration: "abc123", State: "VIC"}))
	require.NoError(t, repo.SaveVehicle(ctx, entity.Vehicle{Registration: "ABC123", State: "NSW", VIN: "VIN001"}))

	got, err := repo.ListVehicles(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1, "differing case must hit the same row")
	assert.Equal(t, "NSW", got[0].State)
	assert.Equal(t, "VIN001", got[0].VIN)
}

func TestListVehiclesEmpty(t *testing.T) {
	repo := openTestDB(t)

	got, err := repo.ListVehicles(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}
