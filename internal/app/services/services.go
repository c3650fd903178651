package services

import (
	"sort"

	"github.com/yigit/classworks/internal/pkg/helpers"
)

// Services defined in this package, one per classwork:
// - HospitalService: doctor revenue and patient spending
// - BookStoreService: buyer orders, country and author statistics
// - ServiceCenterService: operation counts, revenue and warranty repairs
// - UniversityService: grade report per group
// - ComputerService: computer inventory reports
// - BankService: accounts, VIP credits and the transaction ledger

// groupBy collects items by key, keeping keys in order of first appearance
func groupBy[T any, K comparable](items []T, key func(T) K) ([]K, map[K][]T) {
	var order []K
	groups := make(map[K][]T)
	for _, item := range items {
		k := key(item)
		if _, seen := groups[k]; !seen {
			order = append(order, k)
		}
		groups[k] = append(groups[k], item)
	}
	return order, groups
}

// indexBy maps each item by key; the first item wins on duplicate keys
func indexBy[T any, K comparable](items []T, key func(T) K) map[K]T {
	index := make(map[K]T, len(items))
	for _, item := range items {
		k := key(item)
		if _, exists := index[k]; !exists {
			index[k] = item
		}
	}
	return index
}

// sortByName orders items by a name using the collator, keeping ties in input order
func sortByName[T any](items []T, collator *helpers.Collator, name func(T) string) {
	sort.SliceStable(items, func(i, j int) bool {
		return collator.Less(name(items[i]), name(items[j]))
	})
}
