package sales

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents a completed sale. Customer and book fields are
// copies taken at sale time, so later edits to the catalog or the
// directory do not alter recorded history.
type Transaction struct {
	ID            string          `json:"id"`
	CustomerName  string          `json:"customer_name"`
	CustomerEmail string          `json:"customer_email"`
	CustomerPhone string          `json:"customer_phone"`
	BookTitle     string          `json:"book_title"`
	QuantitySold  int             `json:"quantity_sold"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	Date          time.Time       `json:"transaction_date"`
}

// Display returns a formatted multi-line description of the transaction.
func (t *Transaction) Display() string {
	return fmt.Sprintf("Transaction Date: %s\nCustomer: %s\nBook: %s\nQuantity: %d\nTotal Amount: $%s",
		t.Date.Format("2006-01-02 15:04"),
		t.CustomerName,
		t.BookTitle,
		t.QuantitySold,
		t.TotalAmount.StringFixed(2),
	)
}
