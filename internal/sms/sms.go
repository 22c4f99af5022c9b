// Package sms renders owner notification messages. Sending is simulated: the
// original tool had no real SMS protocol, and neither does this one.
package sms

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ozgarage/workshop-tracker/internal/common"
	"github.com/ozgarage/workshop-tracker/internal/entity"
)

type Template string

const (
	TemplateServiceDue          Template = "service_due"
	TemplateBookingConfirmation Template = "booking_confirmation"
)

// BuildMessage renders the template from the vehicle's details. Unknown
// templates fall back to the service-due wording.
func BuildMessage(t Template, v entity.Vehicle) string {
	switch t {
	case TemplateBookingConfirmation:
		return fmt.Sprintf("Hi %s, your booking for %s is confirmed. We look forward to seeing you!",
			v.OwnerName, v.Registration)
	default:
		return fmt.Sprintf("Hi %s, your %s %s (%s) is due for service. Reply YES to confirm.",
			v.OwnerName, v.Make, v.Model, v.Registration)
	}
}

// Sender delivers a rendered message to a phone number.
type Sender interface {
	Send(ctx context.Context, phone, message string) error
}

// SimulatedSender "queues" the message by logging it, which is all the
// original did with its dialog box.
type SimulatedSender struct {
	log *slog.Logger
}

func NewSimulatedSender(logger *slog.Logger) *SimulatedSender {
	if logger == nil {
		logger = slog.Default()
	}
	return &SimulatedSender{log: logger}
}

func (s *SimulatedSender) Send(_ context.Context, phone, message string) error {
	s.log.Info("sms.queued", "recipient", phone, "message", message)
	return nil
}

// Service renders and "sends" notifications for registry vehicles.
type Service struct {
	sender Sender
	log    *slog.Logger
}

func NewService(sender Sender, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{sender: sender, log: logger}
}

// Notify builds the message for the vehicle and hands it to the sender. The
// owner phone is required; everything else renders with whatever is on file.
func (s *Service) Notify(ctx context.Context, v entity.Vehicle, t Template) (string, error) {
	if strings.TrimSpace(v.OwnerPhone) == "" {
		return "", common.InvalidArgumentError("vehicle has no owner phone on file")
	}

	message := BuildMessage(t, v)
	if err := s.sender.Send(ctx, v.OwnerPhone, message); err != nil {
		return "", common.WrapError(err, "send sms")
	}
	return message, nil
}
