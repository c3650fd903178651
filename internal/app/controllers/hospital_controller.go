package controllers

import (
	"context"
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/yigit/classworks/internal/app/services"
	"github.com/yigit/classworks/internal/pkg/helpers"
)

// SpendingQuery selects whose spending the hospital report prints
type SpendingQuery struct {
	Surname string
	From    time.Time
	To      time.Time
}

// DefaultSpendingQuery is John's spending over 2021
var DefaultSpendingQuery = SpendingQuery{
	Surname: "John",
	From:    helpers.Date(2021, time.January, 1),
	To:      helpers.Date(2021, time.December, 31),
}

// HospitalController prints doctor revenue and patient spending
type HospitalController struct {
	hospitalService services.HospitalService
	query           SpendingQuery
	currency        string
	logger          zerolog.Logger
}

// NewHospitalController creates a new HospitalController
func NewHospitalController(hospitalService services.HospitalService, query SpendingQuery, currency string, logger zerolog.Logger) *HospitalController {
	return &HospitalController{
		hospitalService: hospitalService,
		query:           query,
		currency:        currency,
		logger:          logger,
	}
}

// Run prints both hospital reports
func (c *HospitalController) Run(ctx context.Context, out io.Writer) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	con := newConsole(out)

	revenue := c.hospitalService.DoctorRevenue()
	c.logger.Info().Int("doctors", len(revenue)).Msg("Doctor revenue computed")

	con.println("Task 1:")
	for _, r := range revenue {
		con.printf("- %s has made %s.\n", r.Doctor.Surname, helpers.FormatAmount(r.Revenue, c.currency))
	}

	spent := c.hospitalService.PatientSpending(c.query.Surname, c.query.From, c.query.To)
	c.logger.Info().
		Str("surname", c.query.Surname).
		Str("from", helpers.FormatDate(c.query.From)).
		Str("to", helpers.FormatDate(c.query.To)).
		Str("spent", spent.String()).
		Msg("Patient spending computed")

	con.println()
	con.println("Task 2:")
	con.printf("- %s has spent %s.\n", c.query.Surname, helpers.FormatAmount(spent, c.currency))

	return con.Err()
}
