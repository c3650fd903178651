package services

import (
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/yigit/classworks/internal/app/models"
	"github.com/yigit/classworks/internal/app/repositories"
	"github.com/yigit/classworks/internal/pkg/apperrors"
	"github.com/yigit/classworks/internal/pkg/helpers"
)

// BankService defines account operations and VIP credits
type BankService interface {
	// Clients returns every client ordered by surname
	Clients() []models.Customer
	// CreditClients returns VIP clients holding credit money, smallest credit first
	CreditClients() []*models.VipClient
	Deposit(accountNumber int, amount decimal.Decimal) error
	Withdraw(accountNumber int, amount decimal.Decimal) error
	MaxCreditAmount(vip *models.VipClient) decimal.Decimal
	GrantCredit(vip *models.VipClient, amount decimal.Decimal) error
	ReturnCredit(vip *models.VipClient, amount decimal.Decimal) error
	Transactions() []models.Transaction
}

// BankOptions sets the credit rule
type BankOptions struct {
	CreditMultiplier int
	Now              helpers.Clock
}

// Credit is granted in full between these ages, halved outside
const (
	primeCreditMinAge = 30
	primeCreditMaxAge = 50
)

type bankServiceImpl struct {
	repo     *repositories.BankRepository
	collator *helpers.Collator
	opts     BankOptions
	logger   zerolog.Logger
}

// NewBankService creates a new bank service instance
func NewBankService(
	repo *repositories.BankRepository,
	collator *helpers.Collator,
	opts BankOptions,
	logger zerolog.Logger,
) BankService {
	if opts.Now == nil {
		opts.Now = helpers.SystemClock
	}
	return &bankServiceImpl{
		repo:     repo,
		collator: collator,
		opts:     opts,
		logger:   logger,
	}
}

func (s *bankServiceImpl) Clients() []models.Customer {
	clients := s.repo.Clients()
	sortByName(clients, s.collator, func(c models.Customer) string { return c.Holder().Surname })
	return clients
}

func (s *bankServiceImpl) CreditClients() []*models.VipClient {
	var result []*models.VipClient
	for _, v := range s.repo.VipClients() {
		if v.CreditAccount.Money.IsPositive() {
			result = append(result, v)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreditAccount.Money.LessThan(result[j].CreditAccount.Money)
	})
	return result
}

func (s *bankServiceImpl) account(number int) (*models.BankAccount, error) {
	acc, err := s.repo.GetAccount(number)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NewCustomError(apperrors.ErrAccountNotFound,
				fmt.Sprintf("account %d not found", number)).
				WithDetails(map[string]interface{}{"account": number})
		}
		return nil, fmt.Errorf("error retrieving account: %w", err)
	}
	return acc, nil
}

func (s *bankServiceImpl) Deposit(accountNumber int, amount decimal.Decimal) error {
	acc, err := s.account(accountNumber)
	if err != nil {
		return err
	}
	if err := acc.Deposit(amount); err != nil {
		return err
	}
	s.record(acc, models.TransactionDeposit, amount)
	return nil
}

func (s *bankServiceImpl) Withdraw(accountNumber int, amount decimal.Decimal) error {
	acc, err := s.account(accountNumber)
	if err != nil {
		return err
	}
	if err := acc.Withdraw(amount); err != nil {
		return err
	}
	s.record(acc, models.TransactionWithdrawal, amount)
	return nil
}

// MaxCreditAmount is the main balance times the multiplier, halved outside the prime credit ages
func (s *bankServiceImpl) MaxCreditAmount(vip *models.VipClient) decimal.Decimal {
	limit := vip.Account.Money.Mul(decimal.NewFromInt(int64(s.opts.CreditMultiplier)))

	age := vip.Citizen.Age(s.opts.Now())
	if age < primeCreditMinAge || age > primeCreditMaxAge {
		limit = limit.Div(decimal.NewFromInt(2))
	}
	return limit
}

func (s *bankServiceImpl) GrantCredit(vip *models.VipClient, amount decimal.Decimal) error {
	limit := s.MaxCreditAmount(vip)
	if amount.GreaterThan(limit) {
		return apperrors.NewCustomError(apperrors.ErrCreditLimitExceeded,
			fmt.Sprintf("credit of %s exceeds limit of %s", amount, limit)).
			WithDetails(map[string]interface{}{
				"account": vip.CreditAccount.Number,
				"amount":  amount.String(),
				"limit":   limit.String(),
			})
	}

	if err := vip.CreditAccount.Deposit(amount); err != nil {
		return err
	}
	vip.LastCreditDate = s.opts.Now()
	s.record(vip.CreditAccount, models.TransactionCredit, amount)
	return nil
}

// ReturnCredit pays from the credit account first and takes the remainder from the main account.
// Nothing moves when both balances together fall short.
func (s *bankServiceImpl) ReturnCredit(vip *models.VipClient, amount decimal.Decimal) error {
	if amount.IsNegative() {
		return fmt.Errorf("%w: %s", apperrors.ErrInvalidAmount, amount)
	}
	if amount.GreaterThan(vip.TotalMoney()) {
		return apperrors.NewCustomError(apperrors.ErrInsufficientFunds,
			fmt.Sprintf("cannot return %s, client holds %s", amount, vip.TotalMoney())).
			WithDetails(map[string]interface{}{
				"account":        vip.Account.Number,
				"credit_account": vip.CreditAccount.Number,
			})
	}

	fromCredit := decimal.Min(amount, vip.CreditAccount.Money)
	fromMain := amount.Sub(fromCredit)

	if fromCredit.IsPositive() {
		if err := vip.CreditAccount.Withdraw(fromCredit); err != nil {
			return err
		}
		s.record(vip.CreditAccount, models.TransactionCreditReturn, fromCredit)
	}
	if fromMain.IsPositive() {
		if err := vip.Account.Withdraw(fromMain); err != nil {
			return err
		}
		s.record(vip.Account, models.TransactionCreditReturn, fromMain)
	}
	return nil
}

func (s *bankServiceImpl) Transactions() []models.Transaction {
	return s.repo.Transactions()
}

func (s *bankServiceImpl) record(acc *models.BankAccount, kind models.TransactionKind, amount decimal.Decimal) {
	tx := models.Transaction{
		ID:            uuid.New(),
		AccountNumber: acc.Number,
		Kind:          kind,
		Amount:        amount,
		Balance:       acc.Money,
		At:            s.opts.Now(),
	}
	s.repo.RecordTransaction(tx)

	s.logger.Debug().
		Str("transactionId", tx.ID.String()).
		Int("account", tx.AccountNumber).
		Str("kind", string(tx.Kind)).
		Str("amount", tx.Amount.String()).
		Str("balance", tx.Balance.String()).
		Msg("Transaction recorded")
}
