package book

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Service provides high-level inventory management operations on a Storage backend.
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

// AddBook validates and adds a new book to the inventory.
func (s *Service) AddBook(title, author string, price decimal.Decimal, quantity int) (*Book, error) {
	b, err := NewBook(strings.TrimSpace(title), strings.TrimSpace(author), price, quantity)
	if err != nil {
		return nil, err
	}

	if err := s.storage.Set(b); err != nil {
		return nil, err
	}

	s.logger.Info("book added",
		zap.String("title", b.Title),
		zap.String("price", b.Price.StringFixed(2)),
		zap.Int("quantity", b.Quantity),
	)
	return b, nil
}

// GetBook retrieves a book by its exact title.
func (s *Service) GetBook(title string) (*Book, error) {
	return s.storage.Read(strings.TrimSpace(title))
}

// SearchBooks finds books whose title or author contains the query,
// case-insensitively. Returns ErrNotFound when nothing matches.
func (s *Service) SearchBooks(query string) ([]*Book, error) {
	query = strings.ToLower(strings.TrimSpace(query))

	all, err := s.storage.GetAll()
	if err != nil {
		return nil, err
	}

	found := make([]*Book, 0)
	for _, b := range all {
		if strings.Contains(strings.ToLower(b.Title), query) ||
			strings.Contains(strings.ToLower(b.Author), query) {
			found = append(found, b)
		}
	}
	if len(found) == 0 {
		return nil, ErrNotFound
	}
	return found, nil
}

// ListBooks retrieves all books in the inventory.
func (s *Service) ListBooks() ([]*Book, error) {
	return s.storage.GetAll()
}

// FilterByPrice returns the books priced between minPrice and maxPrice
// inclusive. A zero maxPrice means no upper bound.
func (s *Service) FilterByPrice(minPrice, maxPrice decimal.Decimal) ([]*Book, error) {
	all, err := s.storage.GetAll()
	if err != nil {
		return nil, err
	}

	filtered := make([]*Book, 0)
	for _, b := range all {
		if b.Price.LessThan(minPrice) {
			continue
		}
		if !maxPrice.IsZero() && b.Price.GreaterThan(maxPrice) {
			continue
		}
		filtered = append(filtered, b)
	}
	return filtered, nil
}

// SortByTitle returns all books sorted alphabetically by title.
func (s *Service) SortByTitle(desc bool) ([]*Book, error) {
	all, err := s.storage.GetAll()
	if err != nil {
		return nil, err
	}

	sort.Slice(all, func(i, j int) bool {
		if desc {
			return all[i].Title > all[j].Title
		}
		return all[i].Title < all[j].Title
	})
	return all, nil
}

// SortByPrice returns all books sorted by price.
func (s *Service) SortByPrice(desc bool) ([]*Book, error) {
	all, err := s.storage.GetAll()
	if err != nil {
		return nil, err
	}

	sort.Slice(all, func(i, j int) bool {
		if desc {
			return all[i].Price.GreaterThan(all[j].Price)
		}
		return all[i].Price.LessThan(all[j].Price)
	})
	return all, nil
}

// DecrementQuantity reduces the stock for a title after a sale.
func (s *Service) DecrementQuantity(title string, amount int) error {
	if err := s.storage.Decrement(strings.TrimSpace(title), amount); err != nil {
		return err
	}

	s.logger.Info("stock decremented",
		zap.String("title", title),
		zap.Int("amount", amount),
	)
	return nil
}
