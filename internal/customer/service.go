package customer

import (
	"strings"

	"go.uber.org/zap"
)

// Service provides high-level customer directory operations on a Storage backend.
type Service struct {
	storage Storage
	logger  *zap.Logger
}

// NewService creates a new Service.
func NewService(storage Storage, logger *zap.Logger) *Service {
	if logger == nil {
		logger, _ = zap.NewProduction()
	}

	return &Service{
		storage: storage,
		logger:  logger,
	}
}

// AddCustomer validates and registers a new customer.
func (s *Service) AddCustomer(name, email, phone string) (*Customer, error) {
	c, err := NewCustomer(strings.TrimSpace(name), strings.TrimSpace(email), strings.TrimSpace(phone))
	if err != nil {
		return nil, err
	}

	if err := s.storage.Set(c); err != nil {
		return nil, err
	}

	s.logger.Info("customer added", zap.String("email", c.Email))
	return c, nil
}

// FindByEmail retrieves a customer by their email.
func (s *Service) FindByEmail(email string) (*Customer, error) {
	return s.storage.Read(strings.TrimSpace(email))
}

// FindByName finds customers whose name contains the query, case-insensitively.
func (s *Service) FindByName(name string) ([]*Customer, error) {
	name = strings.ToLower(strings.TrimSpace(name))

	all, err := s.storage.GetAll()
	if err != nil {
		return nil, err
	}

	found := make([]*Customer, 0)
	for _, c := range all {
		if strings.Contains(strings.ToLower(c.Name), name) {
			found = append(found, c)
		}
	}
	return found, nil
}

// UpdateDetails changes a customer's email and/or phone. Empty values
// leave the corresponding field untouched. New values are validated the
// same way as at registration.
func (s *Service) UpdateDetails(email, newEmail, newPhone string) (*Customer, error) {
	email = strings.TrimSpace(email)

	c, err := s.storage.Read(email)
	if err != nil {
		return nil, err
	}

	if newEmail != "" {
		if !emailPattern.MatchString(newEmail) {
			return nil, ErrInvalidEmail
		}
		c.Email = newEmail
	}
	if newPhone != "" {
		if !phonePattern.MatchString(newPhone) {
			return nil, ErrInvalidPhone
		}
		c.Phone = newPhone
	}

	if err := s.storage.Replace(email, c); err != nil {
		return nil, err
	}

	s.logger.Info("customer updated", zap.String("email", email), zap.String("new_email", c.Email))
	return c, nil
}

// RemoveCustomer deletes a customer by their email.
func (s *Service) RemoveCustomer(email string) error {
	email = strings.TrimSpace(email)

	if err := s.storage.Delete(email); err != nil {
		return err
	}

	s.logger.Info("customer removed", zap.String("email", email))
	return nil
}

// ListCustomers retrieves all registered customers.
func (s *Service) ListCustomers() ([]*Customer, error) {
	return s.storage.GetAll()
}
