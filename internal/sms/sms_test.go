package sms

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ozgarage/workshop-tracker/internal/common"
	"github.com/ozgarage/workshop-tracker/internal/entity"
)

type recordingSender struct {
	phone   string
	message string
}

func (r *recordingSender) Send(_ context.Context, phone, message string) error {
	r.phone = phone
	r.message = message
	return nil
}

func TestBuildMessage(t *testing.T) {
	v := entity.Vehicle{
		Registration: "ABC123",
		Make:         "Toyota",
		Model:        "Corolla",
		OwnerName:    "Jess",
	}

	assert.Equal(t,
		"Hi Jess, your Toyota Corolla (ABC123) is due for service. Reply YES to confirm.",
		BuildMessage(TemplateServiceDue, v))

	assert.Equal(t,
		"Hi Jess, your booking for ABC123 is confirmed. We look forward to seeing you!",
		BuildMessage(TemplateBookingConfirmation, v))

	assert.Equal(t, BuildMessage(TemplateServiceDue, v), BuildMessage(Template("bogus"), v),
		"unknown template falls back to service-due wording")
}

func TestNotifyRequiresOwnerPhone(t *testing.T) {
	svc := NewService(&recordingSender{}, nil)

	_, err := svc.Notify(context.Background(), entity.Vehicle{Registration: "ABC123"}, TemplateServiceDue)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrInvalidArgument)
}

func TestNotifySendsRenderedMessage(t *testing.T) {
	sender := &recordingSender{}
	svc := NewService(sender, nil)

	v := entity.Vehicle{Registration: "ABC123", OwnerName: "Jess", OwnerPhone: "0400000000"}
	msg, err := svc.Notify(context.Background(), v, TemplateBookingConfirmation)
	require.NoError(t, err)
	assert.Equal(t, "0400000000", sender.phone)
	assert.Equal(t, msg, sender.message)
}
