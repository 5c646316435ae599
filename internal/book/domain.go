package book

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Book represents a title in the inventory.
type Book struct {
	Title    string          `json:"title"`
	Author   string          `json:"author"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

// NewBook validates the fields and builds a Book.
func NewBook(title, author string, price decimal.Decimal, quantity int) (*Book, error) {
	if title == "" || author == "" {
		return nil, ErrMissingFields
	}
	if !price.IsPositive() {
		return nil, ErrInvalidPrice
	}
	if quantity < 0 {
		return nil, ErrNegativeQuantity
	}

	return &Book{
		Title:    title,
		Author:   author,
		Price:    price,
		Quantity: quantity,
	}, nil
}

// Details returns a formatted string of book details.
func (b *Book) Details() string {
	return fmt.Sprintf("Title: %s\nAuthor: %s\nPrice: $%s\nQuantity: %d",
		b.Title, b.Author, b.Price.StringFixed(2), b.Quantity)
}
