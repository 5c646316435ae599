package sales

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"go.uber.org/zap/zaptest"

	"bookstore/internal/book"
	"bookstore/internal/customer"
)

type fixture struct {
	ledger    *Service
	books     *book.Service
	customers *customer.Service
	storage   *LocalStorage
}

// newFixture builds a ledger over a catalog holding "Dune" (15.00, 5
// copies) and a directory holding one customer.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	logger := zaptest.NewLogger(t)

	books := book.NewService(book.NewLocalStorage(), logger)
	if _, err := books.AddBook("Dune", "Frank Herbert", decimal.RequireFromString("15.00"), 5); err != nil {
		t.Fatalf("seeding catalog: %v", err)
	}

	customers := customer.NewService(customer.NewLocalStorage(), logger)
	if _, err := customers.AddCustomer("Alice Atreides", "a@x.com", "555-0100-200"); err != nil {
		t.Fatalf("seeding directory: %v", err)
	}

	storage := NewLocalStorage()
	return &fixture{
		ledger:    NewService(storage, books, customers, logger),
		books:     books,
		customers: customers,
		storage:   storage,
	}
}

func (f *fixture) duneQuantity(t *testing.T) int {
	t.Helper()
	b, err := f.books.GetBook("Dune")
	if err != nil {
		t.Fatalf("reading catalog: %v", err)
	}
	return b.Quantity
}

func (f *fixture) transactionCount(t *testing.T) int {
	t.Helper()
	all, err := f.storage.GetAll()
	if err != nil {
		t.Fatalf("reading ledger: %v", err)
	}
	return len(all)
}

func TestCreateSale(t *testing.T) {
	f := newFixture(t)

	transaction, err := f.ledger.CreateSale("a@x.com", "Dune", 2)
	if err != nil {
		t.Fatalf("CreateSale returned error: %v", err)
	}

	if transaction.ID == "" {
		t.Error("expected a generated transaction ID")
	}
	if transaction.CustomerName != "Alice Atreides" || transaction.CustomerEmail != "a@x.com" {
		t.Errorf("unexpected customer snapshot: %q %q", transaction.CustomerName, transaction.CustomerEmail)
	}
	if transaction.BookTitle != "Dune" {
		t.Errorf("unexpected book title %q", transaction.BookTitle)
	}
	if transaction.QuantitySold != 2 {
		t.Errorf("expected quantity sold 2, got %d", transaction.QuantitySold)
	}
	if want := decimal.RequireFromString("30.00"); !transaction.TotalAmount.Equal(want) {
		t.Errorf("expected total %s, got %s", want, transaction.TotalAmount)
	}
	if transaction.Date.IsZero() {
		t.Error("expected transaction date to be set")
	}

	if got := f.duneQuantity(t); got != 3 {
		t.Errorf("expected catalog quantity 3 after sale, got %d", got)
	}
	if got := f.transactionCount(t); got != 1 {
		t.Errorf("expected 1 recorded transaction, got %d", got)
	}
}

func TestCreateSale_CustomerNotFound(t *testing.T) {
	f := newFixture(t)

	transaction, err := f.ledger.CreateSale("nobody@x.com", "Dune", 2)
	if !errors.Is(err, customer.ErrNotFound) {
		t.Fatalf("expected customer.ErrNotFound, got %v", err)
	}
	if transaction != nil {
		t.Error("expected nil transaction on failure")
	}

	if got := f.duneQuantity(t); got != 5 {
		t.Errorf("catalog quantity changed to %d on failed sale", got)
	}
	if got := f.transactionCount(t); got != 0 {
		t.Errorf("ledger recorded %d transactions on failed sale", got)
	}
}

func TestCreateSale_BookNotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.ledger.CreateSale("a@x.com", "Hyperion", 1)
	if !errors.Is(err, book.ErrNotFound) {
		t.Fatalf("expected book.ErrNotFound, got %v", err)
	}

	if got := f.transactionCount(t); got != 0 {
		t.Errorf("ledger recorded %d transactions on failed sale", got)
	}
}

func TestCreateSale_InvalidQuantity(t *testing.T) {
	f := newFixture(t)

	for _, quantity := range []int{0, -3} {
		_, err := f.ledger.CreateSale("a@x.com", "Dune", quantity)
		if !errors.Is(err, ErrInvalidQuantity) {
			t.Errorf("quantity %d: expected ErrInvalidQuantity, got %v", quantity, err)
		}
	}

	if got := f.duneQuantity(t); got != 5 {
		t.Errorf("catalog quantity changed to %d on failed sale", got)
	}
	if got := f.transactionCount(t); got != 0 {
		t.Errorf("ledger recorded %d transactions on failed sale", got)
	}
}

func TestCreateSale_InsufficientStock(t *testing.T) {
	f := newFixture(t)

	_, err := f.ledger.CreateSale("a@x.com", "Dune", 10)

	var stockErr *book.InsufficientStockError
	if !errors.As(err, &stockErr) {
		t.Fatalf("expected InsufficientStockError, got %v", err)
	}
	if stockErr.Available != 5 {
		t.Errorf("expected available count 5 in error, got %d", stockErr.Available)
	}

	if got := f.duneQuantity(t); got != 5 {
		t.Errorf("catalog quantity changed to %d on failed sale", got)
	}
	if got := f.transactionCount(t); got != 0 {
		t.Errorf("ledger recorded %d transactions on failed sale", got)
	}
}

// A recorded transaction must keep the customer data and price that
// were current at sale time, regardless of later directory edits.
func TestCreateSale_SnapshotsCustomerData(t *testing.T) {
	f := newFixture(t)

	transaction, err := f.ledger.CreateSale("a@x.com", "Dune", 1)
	if err != nil {
		t.Fatalf("CreateSale returned error: %v", err)
	}

	if _, err := f.customers.UpdateDetails("a@x.com", "new@x.com", "555-9999-999"); err != nil {
		t.Fatalf("updating customer: %v", err)
	}

	all, err := f.storage.GetAll()
	if err != nil {
		t.Fatalf("reading ledger: %v", err)
	}
	recorded := all[0]
	if recorded.CustomerEmail != "a@x.com" || recorded.CustomerPhone != "555-0100-200" {
		t.Errorf("transaction snapshot mutated by customer update: %q %q",
			recorded.CustomerEmail, recorded.CustomerPhone)
	}
	if !recorded.TotalAmount.Equal(transaction.TotalAmount) {
		t.Errorf("recorded total %s differs from returned total %s",
			recorded.TotalAmount, transaction.TotalAmount)
	}
}

func TestCreateSale_TimestampPerTransaction(t *testing.T) {
	f := newFixture(t)

	first, err := f.ledger.CreateSale("a@x.com", "Dune", 1)
	if err != nil {
		t.Fatalf("CreateSale returned error: %v", err)
	}
	second, err := f.ledger.CreateSale("a@x.com", "Dune", 1)
	if err != nil {
		t.Fatalf("CreateSale returned error: %v", err)
	}

	if second.Date.Before(first.Date) {
		t.Errorf("second transaction dated %v before first %v", second.Date, first.Date)
	}
}

func TestListTransactions(t *testing.T) {
	f := newFixture(t)

	if _, err := f.ledger.CreateSale("a@x.com", "Dune", 2); err != nil {
		t.Fatalf("CreateSale returned error: %v", err)
	}
	if _, err := f.ledger.CreateSale("a@x.com", "Dune", 1); err != nil {
		t.Fatalf("CreateSale returned error: %v", err)
	}

	descriptions, err := f.ledger.ListTransactions()
	if err != nil {
		t.Fatalf("ListTransactions returned error: %v", err)
	}
	if len(descriptions) != 2 {
		t.Fatalf("expected 2 descriptions, got %d", len(descriptions))
	}

	// Oldest first: the 2-copy sale was recorded before the 1-copy one.
	wantFirst := "Total Amount: $30.00"
	wantSecond := "Total Amount: $15.00"
	if !strings.Contains(descriptions[0], wantFirst) {
		t.Errorf("first description %q missing %q", descriptions[0], wantFirst)
	}
	if !strings.Contains(descriptions[1], wantSecond) {
		t.Errorf("second description %q missing %q", descriptions[1], wantSecond)
	}

	again, err := f.ledger.ListTransactions()
	if err != nil {
		t.Fatalf("ListTransactions returned error: %v", err)
	}
	if !reflect.DeepEqual(descriptions, again) {
		t.Error("repeated ListTransactions calls returned different sequences")
	}
}

func TestGetSummary_Empty(t *testing.T) {
	f := newFixture(t)

	summary, err := f.ledger.GetSummary()
	if err != nil {
		t.Fatalf("GetSummary returned error: %v", err)
	}
	if !summary.TotalSales.IsZero() {
		t.Errorf("expected zero total for empty ledger, got %s", summary.TotalSales)
	}
	if summary.TransactionCount != 0 {
		t.Errorf("expected zero count for empty ledger, got %d", summary.TransactionCount)
	}
}

func TestGetSummary(t *testing.T) {
	f := newFixture(t)

	if _, err := f.ledger.CreateSale("a@x.com", "Dune", 2); err != nil {
		t.Fatalf("CreateSale returned error: %v", err)
	}
	if _, err := f.ledger.CreateSale("a@x.com", "Dune", 3); err != nil {
		t.Fatalf("CreateSale returned error: %v", err)
	}

	summary, err := f.ledger.GetSummary()
	if err != nil {
		t.Fatalf("GetSummary returned error: %v", err)
	}

	if want := decimal.RequireFromString("75.00"); !summary.TotalSales.Equal(want) {
		t.Errorf("expected total sales %s, got %s", want, summary.TotalSales)
	}
	if summary.TransactionCount != 2 {
		t.Errorf("expected transaction count 2, got %d", summary.TransactionCount)
	}

	all, err := f.storage.GetAll()
	if err != nil {
		t.Fatalf("reading ledger: %v", err)
	}
	sum := decimal.Zero
	for _, transaction := range all {
		sum = sum.Add(transaction.TotalAmount)
	}
	if !summary.TotalSales.Equal(sum) {
		t.Errorf("summary total %s differs from ledger sum %s", summary.TotalSales, sum)
	}
}
