package repositories

import (
	"fmt"

	"github.com/yigit/classworks/internal/app/models"
)

// BookStoreRepository keeps books, buyers and orders in memory
type BookStoreRepository struct {
	books  table[models.Book]
	buyers table[models.Buyer]
	orders table[models.Order]
}

// NewBookStoreRepository creates an empty BookStoreRepository
func NewBookStoreRepository() *BookStoreRepository {
	return &BookStoreRepository{}
}

func (r *BookStoreRepository) AddBooks(books ...models.Book)    { r.books.insert(books...) }
func (r *BookStoreRepository) AddBuyers(buyers ...models.Buyer) { r.buyers.insert(buyers...) }
func (r *BookStoreRepository) AddOrders(orders ...models.Order) { r.orders.insert(orders...) }

func (r *BookStoreRepository) Books() []models.Book   { return r.books.all() }
func (r *BookStoreRepository) Buyers() []models.Buyer { return r.buyers.all() }
func (r *BookStoreRepository) Orders() []models.Order { return r.orders.all() }

// GetBuyerBySurname returns the first buyer with the given surname
func (r *BookStoreRepository) GetBuyerBySurname(surname string) (models.Buyer, error) {
	buyer, ok := r.buyers.find(func(b models.Buyer) bool { return b.Surname == surname })
	if !ok {
		return models.Buyer{}, fmt.Errorf("buyer %q: %w", surname, ErrNotFound)
	}
	return buyer, nil
}

// GetBookByID retrieves a book by ID
func (r *BookStoreRepository) GetBookByID(id int) (models.Book, error) {
	book, ok := r.books.find(func(b models.Book) bool { return b.ID == id })
	if !ok {
		return models.Book{}, fmt.Errorf("book %d: %w", id, ErrNotFound)
	}
	return book, nil
}
