package controllers

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/yigit/classworks/internal/app/services"
	"github.com/yigit/classworks/internal/pkg/helpers"
)

// Buyer and author the book store report looks up
const (
	DefaultBuyerSurname  = "Smith"
	DefaultAuthorSurname = "Tolkien"
)

// BookStoreController prints buyer, country and author statistics
type BookStoreController struct {
	bookStoreService services.BookStoreService
	buyer            string
	author           string
	currency         string
	logger           zerolog.Logger
}

// NewBookStoreController creates a new BookStoreController
func NewBookStoreController(bookStoreService services.BookStoreService, buyer, author, currency string, logger zerolog.Logger) *BookStoreController {
	return &BookStoreController{
		bookStoreService: bookStoreService,
		buyer:            buyer,
		author:           author,
		currency:         currency,
		logger:           logger,
	}
}

// Run prints the three book store reports. An unknown buyer fails the run.
func (c *BookStoreController) Run(ctx context.Context, out io.Writer) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	con := newConsole(out)

	lines, err := c.bookStoreService.BuyerOrders(c.buyer)
	if err != nil {
		c.logger.Error().Err(err).Str("surname", c.buyer).Msg("Failed to get buyer orders")
		return fmt.Errorf("buyer orders: %w", err)
	}
	c.logger.Info().Str("surname", c.buyer).Int("books", len(lines)).Msg("Buyer orders computed")

	con.printf("Buyer orders (%s):\n", c.buyer)
	for _, l := range lines {
		con.printf("- \"%s\" by %s, total price: %s\n", l.BookTitle, l.AuthorSurname, helpers.FormatAmount(l.Total, c.currency))
	}

	countries := c.bookStoreService.CountryStats()
	c.logger.Info().Int("countries", len(countries)).Msg("Country stats computed")

	con.println()
	con.println("Countries stats:")
	for _, s := range countries {
		con.printf("- %s: %s\n", s.Country, helpers.FormatAmount(s.Total, c.currency))
	}

	books := c.bookStoreService.AuthorStats(c.author)
	c.logger.Info().Str("author", c.author).Int("books", len(books)).Msg("Author stats computed")

	con.println()
	con.printf("Author stats (%s):\n", c.author)
	for _, b := range books {
		con.printf("- %s: %s\n", b.Title, helpers.FormatAmount(b.Total, c.currency))
	}

	return con.Err()
}
