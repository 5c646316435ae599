package customer

import (
	"errors"
	"sync"
)

// ErrNotFound is returned when no customer with the given email exists.
var ErrNotFound = errors.New("customer not found")

// ErrAlreadyExists is returned when adding an email that is already registered.
var ErrAlreadyExists = errors.New("customer already exists")

// Storage is the main interface for the customer directory layer.
type Storage interface {
	Set(c *Customer) error
	Read(email string) (*Customer, error)
	Replace(email string, c *Customer) error
	Delete(email string) error
	GetAll() ([]*Customer, error)
}

// LocalStorage provides an in-memory implementation for storing
// customers, keyed by email. Safe for concurrent use.
type LocalStorage struct {
	mu sync.Mutex
	m  map[string]*Customer
}

// NewLocalStorage instantiates a new LocalStorage with an empty directory.
func NewLocalStorage() *LocalStorage {
	return &LocalStorage{
		m: map[string]*Customer{},
	}
}

// Set adds a customer to the directory.
// Returns ErrAlreadyExists if the email is already registered.
func (l *LocalStorage) Set(c *Customer) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.m[c.Email]; ok {
		return ErrAlreadyExists
	}
	stored := *c
	l.m[c.Email] = &stored
	return nil
}

// Read retrieves a copy of a customer by email.
// Returns ErrNotFound if the customer is not registered.
func (l *LocalStorage) Read(email string) (*Customer, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	c, ok := l.m[email]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *c
	return &copied, nil
}

// Replace swaps the record stored under email for c, rekeying when the
// email itself changed. The removal and the insert happen under one lock.
func (l *LocalStorage) Replace(email string, c *Customer) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.m[email]; !ok {
		return ErrNotFound
	}
	if c.Email != email {
		if _, ok := l.m[c.Email]; ok {
			return ErrAlreadyExists
		}
		delete(l.m, email)
	}
	stored := *c
	l.m[c.Email] = &stored
	return nil
}

// Delete removes a customer by email.
// Returns ErrNotFound if the customer is not registered.
func (l *LocalStorage) Delete(email string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.m[email]; !ok {
		return ErrNotFound
	}
	delete(l.m, email)
	return nil
}

// GetAll retrieves copies of all customers in the directory.
func (l *LocalStorage) GetAll() ([]*Customer, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	customers := make([]*Customer, 0, len(l.m))
	for _, c := range l.m {
		copied := *c
		customers = append(customers, &copied)
	}
	return customers, nil
}
