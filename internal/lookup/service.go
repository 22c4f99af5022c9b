package lookup

import (
	"context"
	"log/slog"
	"strings"

	"golang.org/x/sync/singleflight"

	"github.com/ozgarage/workshop-tracker/internal/entity"
)

// Transport is the interface the service depends on.
type Transport interface {
	Lookup(ctx context.Context, plate, state string) (Outcome, error)
}

// Service sits between the transport and callers. It absorbs every remote
// failure mode into an absence of data: only invalid caller input and
// caller-initiated cancellation come back as errors.
type Service struct {
	transport Transport
	log       *slog.Logger
	flight    singleflight.Group
}

func NewService(transport Transport, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{transport: transport, log: logger}
}

// Lookup fetches and normalizes the record for a plate/state pair. At most one
// call per key is in flight at a time; concurrent callers for the same key
// share the single result instead of issuing their own request. The in-process
// replacement for a disabled lookup button.
func (s *Service) Lookup(ctx context.Context, plate, state string) (*entity.VehicleRecord, error) {
	key := flightKey(plate, state)

	v, err, shared := s.flight.Do(key, func() (any, error) {
		rec, err := s.lookupOnce(ctx, plate, state)
		if err != nil || rec == nil {
			return nil, err
		}
		return rec, nil
	})
	if err != nil {
		return nil, err
	}
	if shared {
		s.log.Info("lookup.shared_flight", "plate", plate, "state", state)
	}
	if v == nil {
		return nil, nil
	}
	return v.(*entity.VehicleRecord), nil
}

func (s *Service) lookupOnce(ctx context.Context, plate, state string) (*entity.VehicleRecord, error) {
	outcome, err := s.transport.Lookup(ctx, plate, state)
	if err != nil {
		return nil, err
	}

	if outcome.Status != StatusFound {
		// The transport already logged the condition at the right severity;
		// from here every non-Found outcome is identical: no data.
		return nil, nil
	}

	record, ok := Normalize(outcome.Payload)
	if !ok {
		s.log.Warn("lookup.partial_data", "plate", plate, "state", state)
		return nil, nil
	}
	return record, nil
}

func flightKey(plate, state string) string {
	return strings.ToUpper(strings.TrimSpace(plate)) + "|" + strings.ToUpper(strings.TrimSpace(state))
}
