package controllers

import (
	"context"
	"io"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/yigit/classworks/internal/app/models"
	"github.com/yigit/classworks/internal/app/services"
	"github.com/yigit/classworks/internal/pkg/apperrors"
)

// BankScenario is the sequence of operations the bank exercise replays
type BankScenario struct {
	DepositAccount  int
	DepositAmount   decimal.Decimal
	WithdrawAccount int
	WithdrawAmount  decimal.Decimal
	CreditAmount    decimal.Decimal
	ReturnAmount    decimal.Decimal
}

// DefaultBankScenario deposits to the first client, withdraws from the second,
// then every VIP client takes a 1000 credit and returns 100 of it
var DefaultBankScenario = BankScenario{
	DepositAccount:  1,
	DepositAmount:   decimal.NewFromInt(100),
	WithdrawAccount: 2,
	WithdrawAmount:  decimal.NewFromInt(100),
	CreditAmount:    decimal.NewFromInt(1000),
	ReturnAmount:    decimal.NewFromInt(100),
}

const clientSeparator = "\n---\n"

// BankController replays the bank scenario and prints the clients before and after
type BankController struct {
	bankService services.BankService
	scenario    BankScenario
	logger      zerolog.Logger
}

// NewBankController creates a new BankController
func NewBankController(bankService services.BankService, scenario BankScenario, logger zerolog.Logger) *BankController {
	return &BankController{
		bankService: bankService,
		scenario:    scenario,
		logger:      logger,
	}
}

// Run replays the scenario. Refused operations are logged and skipped.
func (c *BankController) Run(ctx context.Context, out io.Writer) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	con := newConsole(out)

	c.printClients(con, "All clients:", c.bankService.Clients())

	s := c.scenario
	switch err := c.bankService.Deposit(s.DepositAccount, s.DepositAmount); {
	case err == nil:
		con.printf("Added %s to account %d.\n", s.DepositAmount, s.DepositAccount)
	case refused(err):
		c.logger.Warn().Err(err).Int("account", s.DepositAccount).Str("amount", s.DepositAmount.String()).Msg("Deposit refused")
	default:
		return err
	}

	switch err := c.bankService.Withdraw(s.WithdrawAccount, s.WithdrawAmount); {
	case err == nil:
		con.printf("Withdrawn %s from account %d.\n", s.WithdrawAmount, s.WithdrawAccount)
	case refused(err):
		c.logger.Warn().Err(err).Int("account", s.WithdrawAccount).Str("amount", s.WithdrawAmount.String()).Msg("Withdrawal refused")
	default:
		return err
	}

	for _, customer := range c.bankService.Clients() {
		vip, ok := customer.(*models.VipClient)
		if !ok {
			continue
		}

		switch err := c.bankService.GrantCredit(vip, s.CreditAmount); {
		case err == nil:
			con.printf("Credit of %s given to %s.\n", s.CreditAmount, vip.Citizen.Surname)
		case refused(err):
			c.logger.Warn().Err(err).Str("surname", vip.Citizen.Surname).Str("amount", s.CreditAmount.String()).Msg("Credit refused")
		default:
			return err
		}

		switch err := c.bankService.ReturnCredit(vip, s.ReturnAmount); {
		case err == nil:
			con.printf("Credit of %s returned by %s.\n", s.ReturnAmount, vip.Citizen.Surname)
		case refused(err):
			c.logger.Warn().Err(err).Str("surname", vip.Citizen.Surname).Str("amount", s.ReturnAmount.String()).Msg("Credit return refused")
		default:
			return err
		}
	}
	con.println()

	c.printClients(con, "All clients:", c.bankService.Clients())

	credit := c.bankService.CreditClients()
	customers := make([]models.Customer, len(credit))
	for i, v := range credit {
		customers[i] = v
	}
	c.printClients(con, "Clients with credits:", customers)

	c.logger.Info().Int("transactions", len(c.bankService.Transactions())).Msg("Bank scenario finished")
	return con.Err()
}

func (c *BankController) printClients(con *console, title string, clients []models.Customer) {
	con.println(title)
	for _, customer := range clients {
		con.println(customer)
		if vip, ok := customer.(*models.VipClient); ok {
			con.printf("Max credit amount: %s\n", c.bankService.MaxCreditAmount(vip))
		}
		con.printf("%s\n", clientSeparator)
	}
}

// refused reports whether err is a business rule refusal rather than a failure
func refused(err error) bool {
	return apperrors.Is(err, apperrors.ErrInsufficientFunds,
		apperrors.ErrCreditLimitExceeded, apperrors.ErrInvalidAmount, apperrors.ErrAccountNotFound)
}
