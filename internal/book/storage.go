package book

import (
	"errors"
	"fmt"
	"sync"
)

// ErrNotFound is returned when a book with the given title is not in the inventory.
var ErrNotFound = errors.New("book not found")

// ErrAlreadyExists is returned when adding a title that is already in the inventory.
var ErrAlreadyExists = errors.New("book already exists in inventory")

// ErrMissingFields is returned when a book is created without a title or author.
var ErrMissingFields = errors.New("title and author cannot be empty")

// ErrInvalidPrice is returned when a book price is zero or negative.
var ErrInvalidPrice = errors.New("price must be a positive number")

// ErrNegativeQuantity is returned when a book is created with a negative quantity.
var ErrNegativeQuantity = errors.New("quantity cannot be negative")

// InsufficientStockError reports how many copies remain when a
// decrement asks for more than are in stock.
type InsufficientStockError struct {
	Title     string
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("only %d copies of %q available", e.Available, e.Title)
}

// Storage is the main interface for the book inventory layer.
type Storage interface {
	Set(b *Book) error
	Read(title string) (*Book, error)
	GetAll() ([]*Book, error)
	Decrement(title string, amount int) error
}

// LocalStorage provides an in-memory implementation for storing books,
// keyed by exact title. Safe for concurrent use.
type LocalStorage struct {
	mu sync.Mutex
	m  map[string]*Book
}

// NewLocalStorage instantiates a new LocalStorage with an empty inventory.
func NewLocalStorage() *LocalStorage {
	return &LocalStorage{
		m: map[string]*Book{},
	}
}

// Set adds a book to the inventory.
// Returns ErrAlreadyExists if the title is already present.
func (l *LocalStorage) Set(b *Book) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.m[b.Title]; ok {
		return ErrAlreadyExists
	}
	stored := *b
	l.m[b.Title] = &stored
	return nil
}

// Read retrieves a copy of a book by exact title.
// Returns ErrNotFound if the book is not in the inventory.
func (l *LocalStorage) Read(title string) (*Book, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.m[title]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *b
	return &copied, nil
}

// GetAll retrieves copies of all books in the inventory.
func (l *LocalStorage) GetAll() ([]*Book, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	books := make([]*Book, 0, len(l.m))
	for _, b := range l.m {
		copied := *b
		books = append(books, &copied)
	}
	return books, nil
}

// Decrement reduces a book's quantity by amount. The check and the
// write happen under one lock, so two decrements cannot both pass the
// stock check against the same copies.
// Returns ErrNotFound if the title is absent and *InsufficientStockError
// if amount exceeds the available quantity.
func (l *LocalStorage) Decrement(title string, amount int) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.m[title]
	if !ok {
		return ErrNotFound
	}
	if amount > b.Quantity {
		return &InsufficientStockError{Title: title, Available: b.Quantity}
	}
	b.Quantity -= amount
	return nil
}
