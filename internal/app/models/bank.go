package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/yigit/classworks/internal/pkg/apperrors"
)

// Citizen is the person behind a bank client
type Citizen struct {
	Name      string
	Surname   string
	BirthDate time.Time
}

// Age in full years at the given date
func (c Citizen) Age(at time.Time) int {
	age := at.Year() - c.BirthDate.Year()
	if at.Month() < c.BirthDate.Month() || (at.Month() == c.BirthDate.Month() && at.Day() < c.BirthDate.Day()) {
		age--
	}
	return age
}

// BankAccount holds money under an account number
type BankAccount struct {
	Number int
	Money  decimal.Decimal
}

// Deposit adds amount to the balance
func (a *BankAccount) Deposit(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return fmt.Errorf("%w: %s", apperrors.ErrInvalidAmount, amount)
	}
	a.Money = a.Money.Add(amount)
	return nil
}

// Withdraw takes amount from the balance. The balance never goes negative.
func (a *BankAccount) Withdraw(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return fmt.Errorf("%w: %s", apperrors.ErrInvalidAmount, amount)
	}
	if amount.GreaterThan(a.Money) {
		return fmt.Errorf("%w: account %d holds %s, requested %s", apperrors.ErrInsufficientFunds, a.Number, a.Money, amount)
	}
	a.Money = a.Money.Sub(amount)
	return nil
}

// Customer is implemented by *Client and *VipClient
type Customer interface {
	Holder() Citizen
	MainAccount() *BankAccount
	String() string
}

// Client is a regular bank client with one account
type Client struct {
	Citizen Citizen
	Account *BankAccount
}

func (c *Client) Holder() Citizen           { return c.Citizen }
func (c *Client) MainAccount() *BankAccount { return c.Account }

func (c *Client) String() string {
	return fmt.Sprintf("Name: %s, Surname: %s, Birth date: %s\n\nBank account: %d, Money: %s",
		c.Citizen.Name, c.Citizen.Surname, c.Citizen.BirthDate.Format("2006-01-02"), c.Account.Number, c.Account.Money)
}

// VipClient additionally owns a credit account
type VipClient struct {
	Client
	CreditAccount  *BankAccount
	LastCreditDate time.Time
}

// TotalMoney is the sum of both balances
func (v *VipClient) TotalMoney() decimal.Decimal {
	return v.Account.Money.Add(v.CreditAccount.Money)
}

func (v *VipClient) String() string {
	lastCredit := "-"
	if !v.LastCreditDate.IsZero() {
		lastCredit = v.LastCreditDate.Format("2006-01-02 15:04:05")
	}
	return fmt.Sprintf(`Name: %s, Surname: %s, Birth date: %s

Bank account: %d
Money: %s

Credit account: %d
Money: %s
Last credit date: %s

Total money: %s`,
		v.Citizen.Name, v.Citizen.Surname, v.Citizen.BirthDate.Format("2006-01-02"),
		v.Account.Number, v.Account.Money,
		v.CreditAccount.Number, v.CreditAccount.Money,
		lastCredit,
		v.TotalMoney())
}

// TransactionKind names a ledger movement
type TransactionKind string

const (
	TransactionDeposit      TransactionKind = "DEPOSIT"
	TransactionWithdrawal   TransactionKind = "WITHDRAWAL"
	TransactionCredit       TransactionKind = "CREDIT"
	TransactionCreditReturn TransactionKind = "CREDIT_RETURN"
)

// Transaction is one successful money movement on an account
type Transaction struct {
	ID            uuid.UUID
	AccountNumber int
	Kind          TransactionKind
	Amount        decimal.Decimal
	Balance       decimal.Decimal // balance after the movement
	At            time.Time
}
