package repository

import (
	"context"
	"database/sql"
	"log/slog"
	"strings"
	"time"

	"github.com/ozgarage/workshop-tracker/internal/entity"
)

// VehicleRepository persists the vehicle registry across restarts. The
// in-memory registry stays authoritative while the process runs; this layer
// only loads it at boot and writes entries back after each mutation.
type VehicleRepository interface {
	SaveVehicle(ctx context.Context, v entity.Vehicle) error
	ListVehicles(ctx context.Context) ([]entity.Vehicle, error)
}

type vehicleRepository struct {
	db     *sql.DB
	logger *slog.Logger
}

func NewVehicleRepository(db *sql.DB, logger *slog.Logger) VehicleRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &vehicleRepository{db: db, logger: logger}
}

const upsertVehicleSQL = `
INSERT INTO vehicles (
	registration_key, registration, state, vin, make, model, engine,
	transmission, owner_name, owner_phone, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $11)
ON CONFLICT (registration_key) DO UPDATE SET
	registration = EXCLUDED.registration,
	state        = EXCLUDED.state,
	vin          = EXCLUDED.vin,
	make         = EXCLUDED.make,
	model        = EXCLUDED.model,
	engine       = EXCLUDED.engine,
	transmission = EXCLUDED.transmission,
	owner_name   = EXCLUDED.owner_name,
	owner_phone  = EXCLUDED.owner_phone,
	updated_at   = EXCLUDED.updated_at`

func (r *vehicleRepository) SaveVehicle(ctx context.Context, v entity.Vehicle) error {
	key := strings.ToUpper(strings.TrimSpace(v.Registration))
	_, err := r.db.ExecContext(ctx, upsertVehicleSQL,
		key, v.Registration, v.State, v.VIN, v.Make, v.Model, v.Engine,
		v.Transmission, v.OwnerName, v.OwnerPhone, time.Now().UTC(),
	)
	if err != nil {
		r.logger.Error("failed to save vehicle", "registration", v.Registration, "error", err)
		return err
	}
	return nil
}

const listVehiclesSQL = `
SELECT registration, state, vin, make, model, engine, transmission, owner_name, owner_phone
FROM vehicles
ORDER BY created_at, registration_key`

func (r *vehicleRepository) ListVehicles(ctx context.Context) ([]entity.Vehicle, error) {
	rows, err := r.db.QueryContext(ctx, listVehiclesSQL)
	if err != nil {
		r.logger.Error("failed to list vehicles", "error", err)
		return nil, err
	}
	defer rows.Close()

	var result []entity.Vehicle
	for rows.Next() {
		var v entity.Vehicle
		if err := rows.Scan(
			&v.Registration, &v.State, &v.VIN, &v.Make, &v.Model,
			&v.Engine, &v.Transmission, &v.OwnerName, &v.OwnerPhone,
		); err != nil {
			return nil, err
		}
		result = append(result, v)
	}
	return result, rows.Err()
}
