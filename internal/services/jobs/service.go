// Package jobs keeps the scheduled-work book: each job references a registry
// vehicle, carries a description and a scheduled date.
package jobs

import (
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/ozgarage/workshop-tracker/internal/common"
	"github.com/ozgarage/workshop-tracker/internal/entity"
)

// defaultLeadTime is how far out a job lands when no date is given.
const defaultLeadTime = 7 * 24 * time.Hour

// VehicleFinder resolves a registration against the registry.
type VehicleFinder interface {
	Get(registration string) (entity.Vehicle, bool)
}

type Service struct {
	vehicles VehicleFinder
	logger   *slog.Logger
	now      func() time.Time

	mu   sync.Mutex
	list []entity.Job
}

func NewService(vehicles VehicleFinder, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{vehicles: vehicles, logger: logger, now: time.Now}
}

// Add appends a job. The vehicle must already be in the registry; a job is
// never a way to create one. A zero scheduled time defaults to a week out,
// and any time-of-day is truncated: jobs are scheduled per day.
func (s *Service) Add(job entity.Job) (entity.Job, error) {
	validator := common.NewValidator()
	validator.Field("registration", job.Registration, common.Required)
	validator.Field("description", job.Description, common.Required)
	if err := common.ValidateAndReturnError(validator); err != nil {
		return entity.Job{}, err
	}

	vehicle, ok := s.vehicles.Get(job.Registration)
	if !ok {
		return entity.Job{}, common.NotFoundError("vehicle not found: " + job.Registration)
	}

	job.Registration = vehicle.Registration
	job.Description = strings.TrimSpace(job.Description)
	if job.ScheduledAt.IsZero() {
		job.ScheduledAt = s.now().Add(defaultLeadTime)
	}
	job.ScheduledAt = job.ScheduledAt.Truncate(24 * time.Hour)

	s.mu.Lock()
	s.list = append(s.list, job)
	s.mu.Unlock()

	s.logger.Info("job.added",
		"registration", job.Registration,
		"scheduled_at", job.ScheduledAt.Format("2006-01-02"),
	)
	return job, nil
}

// List returns jobs in the order they were added.
func (s *Service) List() []entity.Job {
	s.mu.Lock()
	defer s.mu.Unlock()
	result := make([]entity.Job, len(s.list))
	copy(result, s.list)
	return result
}

// ListForVehicle returns the jobs scheduled against one registration.
func (s *Service) ListForVehicle(registration string) []entity.Job {
	key := strings.ToUpper(strings.TrimSpace(registration))

	s.mu.Lock()
	defer s.mu.Unlock()
	var result []entity.Job
	for _, job := range s.list {
		if strings.ToUpper(job.Registration) == key {
			result = append(result, job)
		}
	}
	return result
}
