package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductCategory groups products sharing a warranty period
type ProductCategory struct {
	ID            int
	Name          string
	WarrantyYears int
}

// Operation is a repair operation with a fixed price
type Operation struct {
	ID    int
	Name  string
	Price decimal.Decimal
}

// ServiceReport records an operation done on a product of some category
type ServiceReport struct {
	ProductCategoryID  int
	OperationID        int
	ProductReleaseDate time.Time
}

// WarrantyActive compares calendar years only: a product released in 2022 with a
// two year warranty is covered for the whole of 2024.
func WarrantyActive(warrantyYears int, releaseDate, now time.Time) bool {
	return now.Year()-releaseDate.Year() <= warrantyYears
}
