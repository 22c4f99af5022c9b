package lookup

import (
	"strings"

	"github.com/ozgarage/workshop-tracker/constants"
	"github.com/ozgarage/workshop-tracker/internal/entity"
)

// JoinNonBlank joins the non-blank parts with sep, inserting no separator for
// an omitted part. All-blank input yields "".
func JoinNonBlank(parts []string, sep string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}

// Normalize converts a wire payload into a canonical vehicle record. It fails
// closed: a payload whose registration or state is blank yields (nil, false)
// rather than a partially valid record.
func Normalize(p *Payload) (*entity.VehicleRecord, bool) {
	if p == nil {
		return nil, false
	}

	registration := strings.TrimSpace(p.RegistrationNumber)
	state := strings.TrimSpace(p.State)
	if registration == "" || state == "" {
		return nil, false
	}

	return &entity.VehicleRecord{
		Registration: registration,
		State:        state,
		VIN:          p.Vin,
		Year:         p.Year,
		Make:         p.Make,
		Model:        JoinNonBlank([]string{p.Model, p.Badge}, " "),
		BodyType:     p.BodyType,
		FuelType:     p.FuelType,
		Engine:       JoinNonBlank([]string{p.EngineCapacity, p.Drivetrain}, " "),
		Transmission: p.Transmission,
		Colour:       p.Colour,
		Confidence:   p.ConfidenceScore,
		Source:       constants.SourceLookup,
	}, true
}
