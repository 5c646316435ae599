package customer

import (
	"errors"
	"fmt"
	"regexp"
)

var (
	emailPattern = regexp.MustCompile(`^[^@]+@[^@]+\.[^@]+$`)
	phonePattern = regexp.MustCompile(`^\+?[\d\s-]{10,}$`)
)

// ErrMissingFields is returned when a customer is created with an empty field.
var ErrMissingFields = errors.New("all customer fields are required")

// ErrInvalidEmail is returned when an email does not look like an address.
var ErrInvalidEmail = errors.New("invalid email format")

// ErrInvalidPhone is returned when a phone number has the wrong shape.
var ErrInvalidPhone = errors.New("invalid phone number format")

// Customer represents a customer with basic contact information.
type Customer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// NewCustomer validates the fields and builds a Customer.
func NewCustomer(name, email, phone string) (*Customer, error) {
	if name == "" || email == "" || phone == "" {
		return nil, ErrMissingFields
	}
	if !emailPattern.MatchString(email) {
		return nil, ErrInvalidEmail
	}
	if !phonePattern.MatchString(phone) {
		return nil, ErrInvalidPhone
	}

	return &Customer{
		Name:  name,
		Email: email,
		Phone: phone,
	}, nil
}

// Details returns a formatted string of customer details.
func (c *Customer) Details() string {
	return fmt.Sprintf("Name: %s\nEmail: %s\nPhone: %s", c.Name, c.Email, c.Phone)
}
