package services

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/yigit/classworks/internal/app/models"
	"github.com/yigit/classworks/internal/app/repositories"
	"github.com/yigit/classworks/internal/pkg/apperrors"
)

// UnknownBook is shown in place of author and title for orders of a missing book
const UnknownBook = "Unknown"

// BookStoreService defines the book store statistics
type BookStoreService interface {
	BuyerOrders(surname string) ([]BuyerOrderLine, error)
	CountryStats() []CountryTotal
	AuthorStats(authorSurname string) []BookTotal
}

// BuyerOrderLine sums a buyer's orders of one book
type BuyerOrderLine struct {
	AuthorSurname string
	BookTitle     string
	Total         decimal.Decimal
}

// CountryTotal is the order value of all buyers from a country
type CountryTotal struct {
	Country string
	Total   decimal.Decimal
}

// BookTotal is the order value of one book
type BookTotal struct {
	Title string
	Total decimal.Decimal
}

type bookStoreServiceImpl struct {
	repo *repositories.BookStoreRepository
}

// NewBookStoreService creates a new book store service instance
func NewBookStoreService(repo *repositories.BookStoreRepository) BookStoreService {
	return &bookStoreServiceImpl{repo: repo}
}

// BuyerOrders lists each distinct book the buyer ordered, in order of the first order
func (s *bookStoreServiceImpl) BuyerOrders(surname string) ([]BuyerOrderLine, error) {
	buyer, err := s.repo.GetBuyerBySurname(surname)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NewCustomError(apperrors.ErrBuyerNotFound,
				fmt.Sprintf("buyer with surname %s not found", surname)).
				WithDetails(map[string]interface{}{"surname": surname})
		}
		return nil, fmt.Errorf("error retrieving buyer: %w", err)
	}

	var buyerOrders []models.Order
	for _, order := range s.repo.Orders() {
		if order.BuyerID == buyer.ID {
			buyerOrders = append(buyerOrders, order)
		}
	}

	bookIDs, byBook := groupBy(buyerOrders, func(o models.Order) int { return o.BookID })

	lines := make([]BuyerOrderLine, 0, len(bookIDs))
	for _, bookID := range bookIDs {
		quantity := 0
		for _, order := range byBook[bookID] {
			quantity += order.Quantity
		}

		line := BuyerOrderLine{AuthorSurname: UnknownBook, BookTitle: UnknownBook, Total: decimal.Zero}
		if book, err := s.repo.GetBookByID(bookID); err == nil {
			line.AuthorSurname = book.AuthorSurname
			line.BookTitle = book.Title
			line.Total = book.Price.Mul(decimal.NewFromInt(int64(quantity)))
		}
		lines = append(lines, line)
	}

	return lines, nil
}

// CountryStats totals orders per buyer country, countries in order of first buyer
func (s *bookStoreServiceImpl) CountryStats() []CountryTotal {
	books := indexBy(s.repo.Books(), func(b models.Book) int { return b.ID })
	countries, buyersByCountry := groupBy(s.repo.Buyers(), func(b models.Buyer) string { return b.Country })
	orders := s.repo.Orders()

	result := make([]CountryTotal, 0, len(countries))
	for _, country := range countries {
		buyerIDs := make(map[int]struct{})
		for _, b := range buyersByCountry[country] {
			buyerIDs[b.ID] = struct{}{}
		}

		total := decimal.Zero
		for _, order := range orders {
			if _, ok := buyerIDs[order.BuyerID]; !ok {
				continue
			}
			if book, ok := books[order.BookID]; ok {
				total = total.Add(book.Price.Mul(decimal.NewFromInt(int64(order.Quantity))))
			}
		}
		result = append(result, CountryTotal{Country: country, Total: total})
	}
	return result
}

// AuthorStats totals orders of each book written by the author, books without orders included
func (s *bookStoreServiceImpl) AuthorStats(authorSurname string) []BookTotal {
	orders := s.repo.Orders()

	var result []BookTotal
	for _, book := range s.repo.Books() {
		if book.AuthorSurname != authorSurname {
			continue
		}
		quantity := 0
		for _, order := range orders {
			if order.BookID == book.ID {
				quantity += order.Quantity
			}
		}
		result = append(result, BookTotal{Title: book.Title, Total: book.Price.Mul(decimal.NewFromInt(int64(quantity)))})
	}
	return result
}
