package services

import (
	"errors"
	"testing"

	"github.com/Pallinder/go-randomdata"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/classworks/internal/app/models"
	"github.com/yigit/classworks/internal/app/repositories"
	"github.com/yigit/classworks/internal/pkg/apperrors"
	"github.com/yigit/classworks/internal/seed"
)

func seededBookStore(t *testing.T) (BookStoreService, *repositories.BookStoreRepository) {
	t.Helper()
	repo := repositories.NewBookStoreRepository()
	seed.BookStore(repo)
	return NewBookStoreService(repo), repo
}

func TestBookStoreService_BuyerOrders(t *testing.T) {
	svc, _ := seededBookStore(t)

	lines, err := svc.BuyerOrders("Smith")
	require.NoError(t, err)
	require.Len(t, lines, 2)

	assert.Equal(t, "Tolkien", lines[0].AuthorSurname)
	assert.Equal(t, "The Lord of the Rings", lines[0].BookTitle)
	assert.Equal(t, "40", lines[0].Total.String())

	assert.Equal(t, "Martin", lines[1].AuthorSurname)
	assert.Equal(t, "20", lines[1].Total.String())
}

func TestBookStoreService_BuyerOrders_UnknownBook(t *testing.T) {
	svc, repo := seededBookStore(t)
	repo.AddOrders(models.Order{BuyerID: 2, BookID: 42, Quantity: 7})

	lines, err := svc.BuyerOrders("Johnson")
	require.NoError(t, err)
	require.Len(t, lines, 2)

	assert.Equal(t, UnknownBook, lines[1].AuthorSurname)
	assert.Equal(t, UnknownBook, lines[1].BookTitle)
	assert.True(t, lines[1].Total.IsZero())
}

func TestBookStoreService_BuyerOrders_UnknownBuyer(t *testing.T) {
	svc, _ := seededBookStore(t)
	surname := randomdata.SillyName()

	lines, err := svc.BuyerOrders(surname)
	require.Error(t, err)
	assert.Nil(t, lines)
	assert.True(t, errors.Is(err, apperrors.ErrBuyerNotFound))

	var customErr *apperrors.CustomError
	require.True(t, errors.As(err, &customErr))
	assert.Equal(t, surname, customErr.Details["surname"])
	assert.Contains(t, err.Error(), surname)
}

func TestBookStoreService_BuyerOrders_NoOrders(t *testing.T) {
	svc, repo := seededBookStore(t)
	repo.AddBuyers(models.Buyer{ID: 4, Surname: "Idle", Country: "USA"})

	lines, err := svc.BuyerOrders("Idle")
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestBookStoreService_CountryStats(t *testing.T) {
	svc, _ := seededBookStore(t)

	stats := svc.CountryStats()
	require.Len(t, stats, 3)

	expected := []struct {
		country string
		total   int64
	}{
		{"USA", 60},
		{"UK", 15},
		{"Canada", 60},
	}
	for i, e := range expected {
		assert.Equal(t, e.country, stats[i].Country)
		assert.True(t, decimal.NewFromInt(e.total).Equal(stats[i].Total), "%s: got %s", e.country, stats[i].Total)
	}
}

func TestBookStoreService_CountryStats_SharedCountry(t *testing.T) {
	svc, repo := seededBookStore(t)
	repo.AddBuyers(models.Buyer{ID: 4, Surname: randomdata.LastName(), Country: "UK"})
	repo.AddOrders(models.Order{BuyerID: 4, BookID: 2, Quantity: 2})

	stats := svc.CountryStats()
	require.Len(t, stats, 3)
	assert.Equal(t, "UK", stats[1].Country)
	assert.Equal(t, "45", stats[1].Total.String())
}

func TestBookStoreService_AuthorStats(t *testing.T) {
	svc, repo := seededBookStore(t)

	stats := svc.AuthorStats("Tolkien")
	require.Len(t, stats, 1)
	assert.Equal(t, "The Lord of the Rings", stats[0].Title)
	assert.Equal(t, "40", stats[0].Total.String())

	repo.AddBooks(models.Book{ID: 4, AuthorSurname: "Tolkien", Title: "The Hobbit", Price: decimal.RequireFromString("12.5")})

	stats = svc.AuthorStats("Tolkien")
	require.Len(t, stats, 2)
	assert.Equal(t, "The Hobbit", stats[1].Title)
	assert.True(t, stats[1].Total.IsZero())

	assert.Empty(t, svc.AuthorStats(randomdata.SillyName()))
}
