package sales

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"bookstore/internal/book"
	"bookstore/internal/customer"
)

// ErrInvalidQuantity is returned when a sale asks for zero or fewer copies.
var ErrInvalidQuantity = errors.New("quantity must be positive")

// Catalog is the inventory collaborator the ledger reads from and
// decrements. Satisfied by *book.Service.
type Catalog interface {
	GetBook(title string) (*book.Book, error)
	DecrementQuantity(title string, amount int) error
}

// Directory resolves customers by email. Satisfied by *customer.Service.
type Directory interface {
	FindByEmail(email string) (*customer.Customer, error)
}

// Service records sales against a book catalog and a customer
// directory. It does not own either collaborator.
type Service struct {
	storage   Storage
	catalog   Catalog
	directory Directory
	logger    *zap.Logger

	// mu serializes CreateSale so the stock check and the decrement act
	// as one unit; without it two concurrent sales of the same title
	// could both pass the check and oversell.
	mu sync.Mutex
}

// NewService creates a new Service.
func NewService(storage Storage, catalog Catalog, directory Directory, logger *zap.Logger) *Service {
	if logger == nil {
		logger, _ = zap.NewProduction()
	}

	return &Service{
		storage:   storage,
		catalog:   catalog,
		directory: directory,
		logger:    logger,
	}
}

// CreateSale validates and records a sale of quantity copies of the
// given title to the customer with the given email.
//
// Checks run in order and the first failure aborts before any mutation:
// unknown customer, unknown book, non-positive quantity, then quantity
// above the available stock (the returned error carries the actual
// count). Only when all checks pass is the catalog's stock decremented;
// the catalog re-validates availability under its own lock. The total
// is the price read at lookup time multiplied by quantity, and the
// recorded transaction snapshots the customer and book fields by value.
//
// If the ledger append itself failed the stock would stay decremented;
// there is no rollback path.
func (s *Service) CreateSale(customerEmail, bookTitle string, quantity int) (*Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cust, err := s.directory.FindByEmail(customerEmail)
	if err != nil {
		return nil, err
	}

	b, err := s.catalog.GetBook(bookTitle)
	if err != nil {
		return nil, err
	}

	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	if quantity > b.Quantity {
		return nil, &book.InsufficientStockError{Title: b.Title, Available: b.Quantity}
	}

	if err := s.catalog.DecrementQuantity(b.Title, quantity); err != nil {
		return nil, err
	}

	totalAmount := b.Price.Mul(decimal.NewFromInt(int64(quantity)))

	transaction := &Transaction{
		ID:            uuid.NewString(),
		CustomerName:  cust.Name,
		CustomerEmail: cust.Email,
		CustomerPhone: cust.Phone,
		BookTitle:     b.Title,
		QuantitySold:  quantity,
		TotalAmount:   totalAmount,
		Date:          time.Now(),
	}

	if err := s.storage.Append(transaction); err != nil {
		s.logger.Error("failed to record transaction",
			zap.String("transaction_id", transaction.ID),
			zap.Error(err),
		)
		return nil, err
	}

	s.logger.Info("sale recorded",
		zap.String("transaction_id", transaction.ID),
		zap.String("customer_email", cust.Email),
		zap.String("book_title", b.Title),
		zap.Int("quantity", quantity),
		zap.String("total_amount", totalAmount.StringFixed(2)),
	)
	return transaction, nil
}

// ListTransactions returns a formatted description of every recorded
// transaction, oldest first.
func (s *Service) ListTransactions() ([]string, error) {
	all, err := s.storage.GetAll()
	if err != nil {
		return nil, err
	}

	descriptions := make([]string, 0, len(all))
	for _, t := range all {
		descriptions = append(descriptions, t.Display())
	}
	return descriptions, nil
}

// Summary aggregates all recorded transactions.
type Summary struct {
	TotalSales       decimal.Decimal `json:"total_sales"`
	TransactionCount int             `json:"transaction_count"`
}

// GetSummary totals every transaction in the ledger. Both fields are
// zero for an empty ledger.
func (s *Service) GetSummary() (Summary, error) {
	all, err := s.storage.GetAll()
	if err != nil {
		return Summary{}, err
	}

	totalSales := decimal.Zero
	for _, t := range all {
		totalSales = totalSales.Add(t.TotalAmount)
	}

	return Summary{
		TotalSales:       totalSales,
		TransactionCount: len(all),
	}, nil
}
