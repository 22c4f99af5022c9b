// Package invoicing drives invoice generation and delivery: compose the PDF,
// remember where it went, and queue the email with the artifact attached.
package invoicing

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/ozgarage/workshop-tracker/internal/common"
	"github.com/ozgarage/workshop-tracker/internal/entity"
	"github.com/ozgarage/workshop-tracker/internal/invoice"
	"github.com/ozgarage/workshop-tracker/internal/mail"
	"github.com/ozgarage/workshop-tracker/internal/services/customers"
	"github.com/ozgarage/workshop-tracker/internal/services/vehicles"
)

// Enqueuer is the outbox dependency.
type Enqueuer interface {
	Enqueue(ctx context.Context, msg mail.Message) error
}

type Service struct {
	composer  *invoice.Composer
	vehicles  *vehicles.Service
	customers *customers.Service
	outbox    Enqueuer
	logger    *slog.Logger

	mu        sync.Mutex
	lastPaths map[string]string // registration key -> last generated artifact
}

func NewService(composer *invoice.Composer, veh *vehicles.Service, cust *customers.Service, outbox Enqueuer, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		composer:  composer,
		vehicles:  veh,
		customers: cust,
		outbox:    outbox,
		logger:    logger,
		lastPaths: make(map[string]string),
	}
}

// Generate composes the invoice PDF and returns its path. The path is
// remembered per registration so a later email can reuse the artifact
// instead of regenerating it.
func (s *Service) Generate(ctx context.Context, customerEmail, registration string, lines []entity.InvoiceLine) (string, error) {
	customer, vehicle, err := s.resolve(customerEmail, registration)
	if err != nil {
		return "", err
	}

	path, err := s.composer.Compose(customer, vehicle, lines)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	s.lastPaths[registrationKey(registration)] = path
	s.mu.Unlock()
	return path, nil
}

// Email queues the invoice email, regenerating the PDF first when no artifact
// from a previous Generate survives on disk.
func (s *Service) Email(ctx context.Context, customerEmail, registration string, lines []entity.InvoiceLine) (string, error) {
	customer, vehicle, err := s.resolve(customerEmail, registration)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	path := s.lastPaths[registrationKey(registration)]
	s.mu.Unlock()

	if path == "" || !fileExists(path) {
		path, err = s.Generate(ctx, customerEmail, registration, lines)
		if err != nil {
			return "", err
		}
	}

	msg := mail.Message{
		To:      customer.Email,
		Subject: fmt.Sprintf("Invoice for %s", vehicle.Registration),
		Body: fmt.Sprintf("Hi %s,\n\nAttached is the invoice for %s %s (%s).\n\nThank you.",
			customer.Name, vehicle.Make, vehicle.Model, vehicle.Registration),
		AttachmentPath: path,
	}
	if err := s.outbox.Enqueue(ctx, msg); err != nil {
		return "", common.WrapError(err, "queue invoice email")
	}

	s.logger.Info("invoice.email.queued", "registration", vehicle.Registration, "recipient", customer.Email)
	return path, nil
}

func (s *Service) resolve(customerEmail, registration string) (entity.Customer, entity.Vehicle, error) {
	customer, ok := s.customers.Get(customerEmail)
	if !ok {
		return entity.Customer{}, entity.Vehicle{}, common.NotFoundError("customer not found: " + customerEmail)
	}
	vehicle, ok := s.vehicles.Get(registration)
	if !ok {
		return entity.Customer{}, entity.Vehicle{}, common.NotFoundError("vehicle not found: " + registration)
	}
	return customer, vehicle, nil
}

func registrationKey(registration string) string {
	return strings.ToUpper(strings.TrimSpace(registration))
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
