// Package vehicles owns the registry: it is the single writer, serializing
// lookup merges and manual edits, and mirroring every mutation to storage.
package vehicles

import (
	"context"
	"log/slog"
	"sync"

	"github.com/ozgarage/workshop-tracker/constants"
	"github.com/ozgarage/workshop-tracker/internal/common"
	"github.com/ozgarage/workshop-tracker/internal/entity"
	"github.com/ozgarage/workshop-tracker/internal/registry"
	"github.com/ozgarage/workshop-tracker/internal/repository"
)

// Lookuper is the lookup service dependency.
type Lookuper interface {
	Lookup(ctx context.Context, plate, state string) (*entity.VehicleRecord, error)
}

type Service struct {
	lookups Lookuper
	repo    repository.VehicleRepository
	logger  *slog.Logger

	mu  sync.Mutex
	reg *registry.Registry
}

func NewService(lookups Lookuper, repo repository.VehicleRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		lookups: lookups,
		repo:    repo,
		logger:  logger,
		reg:     registry.New(),
	}
}

// Load fills the registry from storage. Called once at boot, before the
// service is shared.
func (s *Service) Load(ctx context.Context) error {
	stored, err := s.repo.ListVehicles(ctx)
	if err != nil {
		return common.WrapError(err, "load vehicles")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, v := range stored {
		s.reg.Upsert(v)
	}
	s.logger.Info("registry.loaded", "vehicles", len(stored))
	return nil
}

// LookupAndMerge runs a remote lookup and reconciles the result into the
// registry. A lookup that produced no data returns (nil, nil): the caller
// shows "nothing found" and decides when to try again. pendingOwner seeds the
// owner fields only when the registration is new to the registry.
func (s *Service) LookupAndMerge(ctx context.Context, plate, state string, pendingOwner entity.OwnerDetails) (*entity.Vehicle, error) {
	record, err := s.lookups.Lookup(ctx, plate, state)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, nil
	}

	s.mu.Lock()
	merged, key := s.reg.Apply(*record, pendingOwner)
	s.mu.Unlock()

	if err := s.repo.SaveVehicle(ctx, merged); err != nil {
		// The in-memory registry already holds the merge; storage catches up
		// on the next save for this key.
		s.logger.Error("vehicle.persist_failed", "registration", key, "error", err)
	}

	s.logger.Info("vehicle.merge.ok", "registration", key, "source", record.Source)
	return &merged, nil
}

// Save upserts a caller-edited vehicle. Registration and state are required;
// the caller owns every field including owner details.
func (s *Service) Save(ctx context.Context, v entity.Vehicle) (entity.Vehicle, error) {
	validator := common.NewValidator()
	validator.Field("registration", v.Registration, common.Required)
	validator.Field("state", v.State, common.Required, common.StateCode)
	if err := common.ValidateAndReturnError(validator); err != nil {
		return entity.Vehicle{}, err
	}

	s.mu.Lock()
	key := s.reg.Upsert(v)
	s.mu.Unlock()

	if err := s.repo.SaveVehicle(ctx, v); err != nil {
		return entity.Vehicle{}, common.WrapError(err, "save vehicle")
	}

	s.logger.Info("vehicle.saved", "registration", key, "source", constants.SourceManual)
	return v, nil
}

func (s *Service) Get(registration string) (entity.Vehicle, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reg.Get(registration)
}

func (s *Service) List() []entity.Vehicle {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reg.List()
}
