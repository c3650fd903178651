package controllers

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/yigit/classworks/internal/app/services"
)

// ComputerController prints the computer inventory reports
type ComputerController struct {
	computerService services.ComputerService
	logger          zerolog.Logger
}

// NewComputerController creates a new ComputerController
func NewComputerController(computerService services.ComputerService, logger zerolog.Logger) *ComputerController {
	return &ComputerController{
		computerService: computerService,
		logger:          logger,
	}
}

// Run prints the inventory listings: all computers, brand totals, server disk space,
// the work stations with the largest monitor and the brand groups
func (c *ComputerController) Run(ctx context.Context, out io.Writer) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	con := newConsole(out)

	all := c.computerService.All()
	c.logger.Info().Int("computers", len(all)).Msg("Computer inventory listed")

	con.println("All computers:")
	for _, computer := range all {
		con.printf("    %s\n\n", computer)
	}

	con.println("Total price for each brand:")
	for _, b := range c.computerService.TotalPriceByBrand() {
		con.printf("    %s: $%d\n", b.Brand, b.Total)
	}
	con.println()

	con.println("Total disk space for servers:")
	for _, s := range c.computerService.ServerDiskSpace() {
		con.printf("    %s: %dGB\n", s.Server.Brand, s.DiskSpace)
	}
	con.println()

	largest, err := c.computerService.LargestMonitorWorkStations()
	if err != nil {
		c.logger.Error().Err(err).Msg("Failed to find largest monitor work stations")
		return fmt.Errorf("largest monitor: %w", err)
	}
	con.println("Computers with max monitor size:")
	for _, w := range largest {
		con.printf("    %s\n\n", w)
	}

	groups := c.computerService.GroupByBrand()
	c.logger.Info().Int("brands", len(groups)).Msg("Computers grouped by brand")
	for _, g := range groups {
		con.println(g.Brand)
		for _, computer := range g.Computers {
			con.println(computer)
		}
	}

	return con.Err()
}
