// Package customers keeps the in-memory customer book, keyed by email.
package customers

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/ozgarage/workshop-tracker/internal/common"
	"github.com/ozgarage/workshop-tracker/internal/entity"
)

type Service struct {
	logger *slog.Logger

	mu      sync.Mutex
	byEmail map[string]entity.Customer
	order   []string
}

func NewService(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		logger:  logger,
		byEmail: make(map[string]entity.Customer),
	}
}

func emailKey(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Upsert adds or updates a customer. Email is the identity and never changes
// on update; name and phone take the incoming values.
func (s *Service) Upsert(c entity.Customer) (entity.Customer, error) {
	validator := common.NewValidator()
	validator.Field("name", c.Name, common.Required)
	validator.Field("email", c.Email, common.Required, common.EmailAddress)
	if err := common.ValidateAndReturnError(validator); err != nil {
		return entity.Customer{}, err
	}

	key := emailKey(c.Email)
	c.Name = strings.TrimSpace(c.Name)
	c.Phone = strings.TrimSpace(c.Phone)

	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.byEmail[key]
	if !ok {
		s.byEmail[key] = c
		s.order = append(s.order, key)
		s.logger.Info("customer.added", "email", key)
		return c, nil
	}

	existing.Name = c.Name
	existing.Phone = c.Phone
	s.byEmail[key] = existing
	s.logger.Info("customer.updated", "email", key)
	return existing, nil
}

func (s *Service) Get(email string) (entity.Customer, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.byEmail[emailKey(email)]
	return c, ok
}

// List returns customers in insertion order.
func (s *Service) List() []entity.Customer {
	s.mu.Lock()
	defer s.mu.Unlock()
	result := make([]entity.Customer, 0, len(s.order))
	for _, key := range s.order {
		result = append(result, s.byEmail[key])
	}
	return result
}
