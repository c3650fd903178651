package repositories

import (
	"slices"

	"github.com/yigit/classworks/internal/pkg/apperrors"
)

// ErrNotFound is returned by lookups that match no record
var ErrNotFound = apperrors.ErrResourceNotFound

// Repositories holds all the repository instances
type Repositories struct {
	HospitalRepository      *HospitalRepository
	BookStoreRepository     *BookStoreRepository
	ServiceCenterRepository *ServiceCenterRepository
	UniversityRepository    *UniversityRepository
	ComputerRepository      *ComputerRepository
	BankRepository          *BankRepository
}

// NewRepositories initializes all repositories empty
func NewRepositories() *Repositories {
	return &Repositories{
		HospitalRepository:      NewHospitalRepository(),
		BookStoreRepository:     NewBookStoreRepository(),
		ServiceCenterRepository: NewServiceCenterRepository(),
		UniversityRepository:    NewUniversityRepository(),
		ComputerRepository:      NewComputerRepository(),
		BankRepository:          NewBankRepository(),
	}
}

// table is an append-only record set kept in insertion order
type table[T any] struct {
	rows []T
}

func (t *table[T]) insert(rows ...T) {
	t.rows = append(t.rows, rows...)
}

func (t *table[T]) all() []T {
	return slices.Clone(t.rows)
}

func (t *table[T]) find(match func(T) bool) (T, bool) {
	for _, row := range t.rows {
		if match(row) {
			return row, true
		}
	}
	var zero T
	return zero, false
}

func (t *table[T]) reset() {
	t.rows = nil
}
