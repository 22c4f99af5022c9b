package lookup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ozgarage/workshop-tracker/constants"
)

func TestJoinNonBlank(t *testing.T) {
	tests := []struct {
		name  string
		parts []string
		want  string
	}{
		{"both present", []string{"Corolla", "ZR"}, "Corolla ZR"},
		{"second blank", []string{"Corolla", ""}, "Corolla"},
		{"first blank", []string{"", "AWD"}, "AWD"},
		{"all blank", []string{"", "  "}, ""},
		{"whitespace only part skipped", []string{"2.0L", "   "}, "2.0L"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, JoinNonBlank(tt.parts, " "))
		})
	}
}

func TestNormalizeComposesModelAndEngine(t *testing.T) {
	p := &Payload{
		RegistrationNumber: " ABC123 ",
		State:              "VIC",
		Vin:                "VIN001",
		Make:               "Toyota",
		Model:              "Corolla",
		Badge:              "ZR",
		EngineCapacity:     "2.0L",
		Drivetrain:         "FWD",
		Transmission:       "CVT",
	}

	rec, ok := Normalize(p)
	require.True(t, ok)
	assert.Equal(t, "ABC123", rec.Registration)
	assert.Equal(t, "VIC", rec.State)
	assert.Equal(t, "Corolla ZR", rec.Model)
	assert.Equal(t, "2.0L FWD", rec.Engine)
	assert.Equal(t, constants.SourceLookup, rec.Source)
}

func TestNormalizeCompositeOmitsBlankParts(t *testing.T) {
	p := &Payload{
		RegistrationNumber: "ABC123",
		State:              "VIC",
		Model:              "Corolla",
		EngineCapacity:     "",
		Drivetrain:         "AWD",
	}

	rec, ok := Normalize(p)
	require.True(t, ok)
	assert.Equal(t, "Corolla", rec.Model, "no trailing separator for missing badge")
	assert.Equal(t, "AWD", rec.Engine, "no leading separator for missing capacity")
}

func TestNormalizeFailsClosed(t *testing.T) {
	_, ok := Normalize(nil)
	assert.False(t, ok)

	_, ok = Normalize(&Payload{RegistrationNumber: "  ", State: "VIC", Make: "Toyota"})
	assert.False(t, ok, "blank registration must reject the whole payload")

	_, ok = Normalize(&Payload{RegistrationNumber: "ABC123", State: "", Make: "Toyota"})
	assert.False(t, ok, "blank state must reject the whole payload")
}
