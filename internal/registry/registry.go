// Package registry holds the locally known vehicles, keyed by registration,
// and reconciles incoming lookup records into them.
package registry

import (
	"strings"

	"github.com/ozgarage/workshop-tracker/internal/entity"
)

// Registry is the in-memory vehicle registry. Lookup key is the registration
// number, compared case-insensitively. The registry imposes no locking of its
// own; it assumes a single writer (the owning service serializes access).
// Entries are never deleted here.
type Registry struct {
	entries map[string]entity.Vehicle
	order   []string
}

func New() *Registry {
	return &Registry{entries: make(map[string]entity.Vehicle)}
}

func registrationKey(registration string) string {
	return strings.ToUpper(strings.TrimSpace(registration))
}

// Apply merges a canonical lookup record into the registry: insert when the
// registration is unknown (seeding owner fields from the caller's pending
// input), otherwise a field-level non-blank-wins merge. Returns the affected
// entry and its key.
func (r *Registry) Apply(rec entity.VehicleRecord, owner entity.OwnerDetails) (entity.Vehicle, string) {
	key := registrationKey(rec.Registration)

	existing, ok := r.entries[key]
	if !ok {
		v := NewVehicle(rec, owner)
		r.entries[key] = v
		r.order = append(r.order, key)
		return v, key
	}

	merged := MergeVehicle(existing, rec)
	r.entries[key] = merged
	return merged, key
}

// Upsert stores a caller-edited vehicle wholesale, inserting or replacing by
// registration. Used for manual add/edit, where the caller owns every field
// including the owner details.
func (r *Registry) Upsert(v entity.Vehicle) string {
	key := registrationKey(v.Registration)
	if _, ok := r.entries[key]; !ok {
		r.order = append(r.order, key)
	}
	r.entries[key] = v
	return key
}

func (r *Registry) Get(registration string) (entity.Vehicle, bool) {
	v, ok := r.entries[registrationKey(registration)]
	return v, ok
}

// List returns the vehicles in insertion order.
func (r *Registry) List() []entity.Vehicle {
	result := make([]entity.Vehicle, 0, len(r.order))
	for _, key := range r.order {
		result = append(result, r.entries[key])
	}
	return result
}

func (r *Registry) Len() int {
	return len(r.entries)
}
