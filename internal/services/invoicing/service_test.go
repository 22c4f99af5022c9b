package invoicing

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ozgarage/workshop-tracker/internal/common"
	"github.com/ozgarage/workshop-tracker/internal/entity"
	"github.com/ozgarage/workshop-tracker/internal/invoice"
	"github.com/ozgarage/workshop-tracker/internal/mail"
	"github.com/ozgarage/workshop-tracker/internal/services/customers"
	"github.com/ozgarage/workshop-tracker/internal/services/vehicles"
)

type stubLookuper struct{}

func (stubLookuper) Lookup(context.Context, string, string) (*entity.VehicleRecord, error) {
	return nil, nil
}

type memoryRepo struct{}

func (memoryRepo) SaveVehicle(context.Context, entity.Vehicle) error     { return nil }
func (memoryRepo) ListVehicles(context.Context) ([]entity.Vehicle, error) { return nil, nil }

type recordingOutbox struct {
	queued []mail.Message
}

func (r *recordingOutbox) Enqueue(_ context.Context, msg mail.Message) error {
	r.queued = append(r.queued, msg)
	return nil
}

func newFixture(t *testing.T) (*Service, *recordingOutbox) {
	t.Helper()

	veh := vehicles.NewService(stubLookuper{}, memoryRepo{}, nil)
	_, err := veh.Save(context.Background(), entity.Vehicle{
		Registration: "ABC123", State: "VIC", Make: "Toyota", Model: "Corolla ZR",
	})
	require.NoError(t, err)

	cust := customers.NewService(nil)
	_, err = cust.Upsert(entity.Customer{Name: "Jess Chen", Email: "jess@example.com"})
	require.NoError(t, err)

	outbox := &recordingOutbox{}
	composer := invoice.NewComposer(t.TempDir(), nil)
	return NewService(composer, veh, cust, outbox, nil), outbox
}

var testLines = []entity.InvoiceLine{
	{Description: "Oil change", Amount: 89.5},
	{Description: "Labour", Amount: 91},
}

func TestGenerateUnknownPartiesAreNotFound(t *testing.T) {
	svc, _ := newFixture(t)

	_, err := svc.Generate(context.Background(), "nobody@example.com", "ABC123", testLines)
	assert.ErrorIs(t, err, common.ErrNotFound)

	_, err = svc.Generate(context.Background(), "jess@example.com", "ZZZ999", testLines)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestGenerateWritesArtifact(t *testing.T) {
	svc, _ := newFixture(t)

	path, err := svc.Generate(context.Background(), "jess@example.com", "ABC123", testLines)
	require.NoError(t, err)
	_, err = os.Stat(path)
	require.NoError(t, err)
}

func TestEmailReusesGeneratedArtifact(t *testing.T) {
	svc, outbox := newFixture(t)

	path, err := svc.Generate(context.Background(), "jess@example.com", "ABC123", testLines)
	require.NoError(t, err)

	sent, err := svc.Email(context.Background(), "jess@example.com", "abc123", testLines)
	require.NoError(t, err)
	assert.Equal(t, path, sent, "existing artifact is attached, not regenerated")

	require.Len(t, outbox.queued, 1)
	msg := outbox.queued[0]
	assert.Equal(t, "jess@example.com", msg.To)
	assert.Equal(t, "Invoice for ABC123", msg.Subject)
	assert.Contains(t, msg.Body, "Hi Jess Chen,")
	assert.Contains(t, msg.Body, "Toyota Corolla ZR (ABC123)")
	assert.Equal(t, path, msg.AttachmentPath)
}

func TestEmailRegeneratesWhenArtifactMissing(t *testing.T) {
	svc, outbox := newFixture(t)

	path, err := svc.Generate(context.Background(), "jess@example.com", "ABC123", testLines)
	require.NoError(t, err)
	require.NoError(t, os.Remove(path))

	sent, err := svc.Email(context.Background(), "jess@example.com", "ABC123", testLines)
	require.NoError(t, err)
	_, err = os.Stat(sent)
	require.NoError(t, err, "a fresh artifact must exist for the attachment")
	require.Len(t, outbox.queued, 1)
}
