package invoice

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ozgarage/workshop-tracker/internal/common"
	"github.com/ozgarage/workshop-tracker/internal/entity"
)

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{180.5, "$180.50"},
		{0, "$0.00"},
		{99.999, "$100.00"},
		{0.125, "$0.13"},
		{7, "$7.00"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatAmount(tt.in))
	}
}

func TestSumLinesPreservesOrderIndependence(t *testing.T) {
	lines := []entity.InvoiceLine{
		{Description: "Oil change", Amount: 89.5},
		{Description: "Brake pads", Amount: 240},
		{Description: "Labour", Amount: 120.25},
	}
	assert.InDelta(t, 449.75, entity.SumLines(lines), 1e-9)
	assert.Zero(t, entity.SumLines(nil))

	total := entity.SumLines([]entity.InvoiceLine{
		{Description: "Service", Amount: 120.00},
		{Description: "Parts", Amount: 45.50},
		{Description: "Consumables", Amount: 15.00},
	})
	assert.Equal(t, "$180.50", FormatAmount(total))
}

func TestComposeRejectsBadInput(t *testing.T) {
	composer := NewComposer(t.TempDir(), nil)
	vehicle := entity.Vehicle{Registration: "ABC123", Make: "Toyota", Model: "Corolla"}
	lines := []entity.InvoiceLine{{Description: "Oil change", Amount: 89.5}}

	_, err := composer.Compose(entity.Customer{Name: "", Email: "jess@example.com"}, vehicle, lines)
	assert.ErrorIs(t, err, common.ErrInvalidArgument)

	_, err = composer.Compose(entity.Customer{Name: "Jess", Email: "  "}, vehicle, lines)
	assert.ErrorIs(t, err, common.ErrInvalidArgument)

	_, err = composer.Compose(entity.Customer{Name: "Jess", Email: "jess@example.com"}, vehicle, nil)
	assert.ErrorIs(t, err, common.ErrInvalidArgument)
}

func TestComposeWritesArtifact(t *testing.T) {
	dir := t.TempDir()
	composer := NewComposer(dir, nil)

	path, err := composer.Compose(
		entity.Customer{Name: "Jess Chen", Email: "jess@example.com", Phone: "0400000000"},
		entity.Vehicle{Registration: "ABC123", Make: "Toyota", Model: "Corolla ZR", VIN: "VIN001"},
		[]entity.InvoiceLine{
			{Description: "Oil change", Amount: 89.5},
			{Description: "Brake pads", Amount: 240},
		},
	)
	require.NoError(t, err)
	assert.Equal(t, dir, filepath.Dir(path))
	assert.Contains(t, filepath.Base(path), "Invoice-ABC123-")

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}
