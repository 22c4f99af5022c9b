package customers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ozgarage/workshop-tracker/internal/common"
	"github.com/ozgarage/workshop-tracker/internal/entity"
)

func TestUpsertValidation(t *testing.T) {
	svc := NewService(nil)

	_, err := svc.Upsert(entity.Customer{Name: "", Email: "jess@example.com"})
	assert.ErrorIs(t, err, common.ErrInvalidArgument)

	_, err = svc.Upsert(entity.Customer{Name: "Jess", Email: "not-an-email"})
	assert.ErrorIs(t, err, common.ErrInvalidArgument)
}

func TestUpsertKeepsEmailIdentity(t *testing.T) {
	svc := NewService(nil)

	_, err := svc.Upsert(entity.Customer{Name: "Jess", Email: "jess@example.com", Phone: "0400000000"})
	require.NoError(t, err)

	// Same address in different case updates in place.
	updated, err := svc.Upsert(entity.Customer{Name: "Jess Chen", Email: "JESS@example.com", Phone: "0411111111"})
	require.NoError(t, err)
	assert.Equal(t, "Jess Chen", updated.Name)
	assert.Equal(t, "0411111111", updated.Phone)

	got, ok := svc.Get("jess@example.com")
	require.True(t, ok)
	assert.Equal(t, "Jess Chen", got.Name)
	assert.Len(t, svc.List(), 1)
}

func TestListPreservesInsertionOrder(t *testing.T) {
	svc := NewService(nil)

	for _, c := range []entity.Customer{
		{Name: "Casey", Email: "casey@example.com"},
		{Name: "Alex", Email: "alex@example.com"},
		{Name: "Billie", Email: "billie@example.com"},
	} {
		_, err := svc.Upsert(c)
		require.NoError(t, err)
	}

	names := make([]string, 0)
	for _, c := range svc.List() {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{"Casey", "Alex", "Billie"}, names)
}
