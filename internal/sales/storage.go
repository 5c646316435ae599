package sales

import (
	"errors"
	"sync"
)

// ErrEmptyID is returned when trying to record a transaction with an empty ID.
var ErrEmptyID = errors.New("empty transaction ID")

// Storage is the append-only ledger of recorded transactions. There is
// no update or delete: once appended, a transaction is permanent.
type Storage interface {
	Append(t *Transaction) error
	GetAll() ([]*Transaction, error)
}

// LocalStorage keeps transactions in memory, in insertion order.
// Safe for concurrent use.
type LocalStorage struct {
	mu           sync.Mutex
	transactions []*Transaction
}

// NewLocalStorage instantiates a new LocalStorage with an empty ledger.
func NewLocalStorage() *LocalStorage {
	return &LocalStorage{}
}

// Append records a transaction at the end of the ledger.
// Returns ErrEmptyID if the transaction has an empty ID.
func (l *LocalStorage) Append(t *Transaction) error {
	if t.ID == "" {
		return ErrEmptyID
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.transactions = append(l.transactions, t)
	return nil
}

// GetAll retrieves all recorded transactions, oldest first.
func (l *LocalStorage) GetAll() ([]*Transaction, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]*Transaction, len(l.transactions))
	copy(out, l.transactions)
	return out, nil
}
