package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Book is a title sold by the store
type Book struct {
	ID            int
	AuthorSurname string
	Title         string
	Price         decimal.Decimal
}

func (b Book) String() string {
	return fmt.Sprintf("Id: %d, Author surname: %s, Title: %s, Price: %s", b.ID, b.AuthorSurname, b.Title, b.Price)
}

// Buyer is a store customer
type Buyer struct {
	ID      int
	Surname string
	Country string
}

func (b Buyer) String() string {
	return fmt.Sprintf("Id: %d, Surname: %s, Country: %s", b.ID, b.Surname, b.Country)
}

// Order is one purchase line; a buyer may order the same book several times
type Order struct {
	BuyerID  int
	BookID   int
	Quantity int
}
