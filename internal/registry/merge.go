package registry

import (
	"strings"

	"github.com/ozgarage/workshop-tracker/internal/entity"
)

// nonBlankWins keeps the existing value unless the incoming one carries data.
// Blank never overwrites.
func nonBlankWins(incoming, existing string) string {
	if strings.TrimSpace(incoming) == "" {
		return existing
	}
	return incoming
}

// MergeVehicle applies a lookup record onto an existing registry entry, field
// by field under the non-blank-wins rule. Registration (the identity key) and
// the owner fields are never touched by a merge. Pure; merging the same record
// twice is the same as merging it once.
func MergeVehicle(existing entity.Vehicle, rec entity.VehicleRecord) entity.Vehicle {
	existing.State = nonBlankWins(rec.State, existing.State)
	existing.VIN = nonBlankWins(rec.VIN, existing.VIN)
	existing.Make = nonBlankWins(rec.Make, existing.Make)
	existing.Model = nonBlankWins(rec.Model, existing.Model)
	existing.Engine = nonBlankWins(rec.Engine, existing.Engine)
	existing.Transmission = nonBlankWins(rec.Transmission, existing.Transmission)
	return existing
}

// NewVehicle builds a registry entry from a record on first insert. Owner
// fields are seeded from whatever the caller currently holds as pending input,
// not looked up.
func NewVehicle(rec entity.VehicleRecord, owner entity.OwnerDetails) entity.Vehicle {
	return entity.Vehicle{
		Registration: rec.Registration,
		State:        rec.State,
		VIN:          rec.VIN,
		Make:         rec.Make,
		Model:        rec.Model,
		Engine:       rec.Engine,
		Transmission: rec.Transmission,
		OwnerName:    strings.TrimSpace(owner.Name),
		OwnerPhone:   strings.TrimSpace(owner.Phone),
	}
}
