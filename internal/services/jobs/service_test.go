package jobs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ozgarage/workshop-tracker/internal/common"
	"github.com/ozgarage/workshop-tracker/internal/entity"
)

type stubFinder struct {
	vehicles map[string]entity.Vehicle
}

func (s *stubFinder) Get(registration string) (entity.Vehicle, bool) {
	v, ok := s.vehicles[registration]
	return v, ok
}

func newFixture() *Service {
	return NewService(&stubFinder{vehicles: map[string]entity.Vehicle{
		"ABC123": {Registration: "ABC123", State: "VIC"},
	}}, nil)
}

func TestAddValidates(t *testing.T) {
	svc := newFixture()

	_, err := svc.Add(entity.Job{Registration: "", Description: "Brakes"})
	assert.ErrorIs(t, err, common.ErrInvalidArgument)

	_, err = svc.Add(entity.Job{Registration: "ABC123", Description: "   "})
	assert.ErrorIs(t, err, common.ErrInvalidArgument)
}

func TestAddRequiresKnownVehicle(t *testing.T) {
	svc := newFixture()

	_, err := svc.Add(entity.Job{Registration: "ZZZ999", Description: "Brakes"})
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrNotFound)
	assert.Empty(t, svc.List())
}

func TestAddDefaultsScheduleOneWeekOut(t *testing.T) {
	svc := newFixture()
	fixed := time.Date(2026, 8, 31, 14, 30, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	job, err := svc.Add(entity.Job{Registration: "ABC123", Description: "  Full service  "})
	require.NoError(t, err)
	assert.Equal(t, "Full service", job.Description)
	assert.Equal(t, time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC), job.ScheduledAt,
		"default is a week out, date only")
}

func TestAddTruncatesExplicitDate(t *testing.T) {
	svc := newFixture()

	job, err := svc.Add(entity.Job{
		Registration: "ABC123",
		Description:  "Brakes",
		ScheduledAt:  time.Date(2026, 9, 10, 16, 45, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC), job.ScheduledAt)
}

func TestListOrderAndPerVehicleFilter(t *testing.T) {
	svc := NewService(&stubFinder{vehicles: map[string]entity.Vehicle{
		"ABC123": {Registration: "ABC123"},
		"XYZ789": {Registration: "XYZ789"},
	}}, nil)

	for _, j := range []entity.Job{
		{Registration: "ABC123", Description: "Brakes"},
		{Registration: "XYZ789", Description: "Tyres"},
		{Registration: "ABC123", Description: "Oil change"},
	} {
		_, err := svc.Add(j)
		require.NoError(t, err)
	}

	descriptions := make([]string, 0)
	for _, job := range svc.List() {
		descriptions = append(descriptions, job.Description)
	}
	assert.Equal(t, []string{"Brakes", "Tyres", "Oil change"}, descriptions)

	forABC := svc.ListForVehicle("abc123")
	require.Len(t, forABC, 2)
	assert.Equal(t, "Brakes", forABC[0].Description)
	assert.Equal(t, "Oil change", forABC[1].Description)
}
