package repositories

import (
	"fmt"

	"github.com/yigit/classworks/internal/app/models"
)

// BankRepository keeps clients and the transaction ledger in memory.
// Clients are stored by pointer; account balances change in place.
type BankRepository struct {
	clients table[models.Customer]
	ledger  table[models.Transaction]
}

// NewBankRepository creates an empty BankRepository
func NewBankRepository() *BankRepository {
	return &BankRepository{}
}

func (r *BankRepository) AddClients(clients ...models.Customer) { r.clients.insert(clients...) }
func (r *BankRepository) Clients() []models.Customer            { return r.clients.all() }

// VipClients returns VIP clients in registration order
func (r *BankRepository) VipClients() []*models.VipClient {
	var vips []*models.VipClient
	for _, c := range r.clients.rows {
		if v, ok := c.(*models.VipClient); ok {
			vips = append(vips, v)
		}
	}
	return vips
}

// GetAccount finds a main or credit account by number
func (r *BankRepository) GetAccount(number int) (*models.BankAccount, error) {
	for _, c := range r.clients.rows {
		if acc := c.MainAccount(); acc != nil && acc.Number == number {
			return acc, nil
		}
		if v, ok := c.(*models.VipClient); ok && v.CreditAccount != nil && v.CreditAccount.Number == number {
			return v.CreditAccount, nil
		}
	}
	return nil, fmt.Errorf("account %d: %w", number, ErrNotFound)
}

// RecordTransaction appends to the ledger
func (r *BankRepository) RecordTransaction(tx models.Transaction) { r.ledger.insert(tx) }

// Transactions returns the ledger in recording order
func (r *BankRepository) Transactions() []models.Transaction { return r.ledger.all() }
