package services

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/yigit/classworks/internal/app/models"
	"github.com/yigit/classworks/internal/app/repositories"
	"github.com/yigit/classworks/internal/pkg/helpers"
)

// ServiceCenterService defines the repair statistics
type ServiceCenterService interface {
	// OperationCounts orders categories by name, operations by count desc then name
	OperationCounts() []CategoryOperationCounts
	// OperationRevenue orders categories by name, operations by sum desc then name
	OperationRevenue() []CategoryOperationRevenue
	// WarrantyOperations counts operations on products still under warranty.
	// An empty categoryName counts every category.
	WarrantyOperations(categoryName string) []OperationCount
}

// OperationCount is how many times an operation was done
type OperationCount struct {
	Operation string
	Count     int
}

// CategoryOperationCounts lists operation counts of one category
type CategoryOperationCounts struct {
	Category   string
	Operations []OperationCount
}

// OperationRevenue is the summed price of an operation
type OperationRevenue struct {
	Operation string
	Sum       decimal.Decimal
}

// CategoryOperationRevenue lists operation revenue of one category
type CategoryOperationRevenue struct {
	Category   string
	Operations []OperationRevenue
}

type serviceCenterServiceImpl struct {
	repo     *repositories.ServiceCenterRepository
	collator *helpers.Collator
	now      helpers.Clock
}

// NewServiceCenterService creates a new service center service instance
func NewServiceCenterService(repo *repositories.ServiceCenterRepository, collator *helpers.Collator, now helpers.Clock) ServiceCenterService {
	return &serviceCenterServiceImpl{repo: repo, collator: collator, now: now}
}

// repair is one service report joined with its category and operation
type repair struct {
	category  models.ProductCategory
	operation models.Operation
	report    models.ServiceReport
}

// repairKey groups repairs by names, two categories sharing a name form one group
type repairKey struct {
	category  string
	operation string
}

// repairs joins categories with their reports and the reports' operations
func (s *serviceCenterServiceImpl) repairs() []repair {
	operations := indexBy(s.repo.Operations(), func(o models.Operation) int { return o.ID })
	reports := s.repo.Reports()

	var rows []repair
	for _, category := range s.repo.Categories() {
		for _, report := range reports {
			if report.ProductCategoryID != category.ID {
				continue
			}
			operation, ok := operations[report.OperationID]
			if !ok {
				continue
			}
			rows = append(rows, repair{category: category, operation: operation, report: report})
		}
	}
	return rows
}

func (s *serviceCenterServiceImpl) OperationCounts() []CategoryOperationCounts {
	keys, groups := groupBy(s.repairs(), func(r repair) repairKey {
		return repairKey{category: r.category.Name, operation: r.operation.Name}
	})

	type row struct {
		key   repairKey
		count int
	}
	rows := make([]row, 0, len(keys))
	for _, k := range keys {
		rows = append(rows, row{key: k, count: len(groups[k])})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if c := s.collator.Compare(rows[i].key.category, rows[j].key.category); c != 0 {
			return c < 0
		}
		if rows[i].count != rows[j].count {
			return rows[i].count > rows[j].count
		}
		return s.collator.Less(rows[i].key.operation, rows[j].key.operation)
	})

	categories, byCategory := groupBy(rows, func(r row) string { return r.key.category })
	result := make([]CategoryOperationCounts, 0, len(categories))
	for _, category := range categories {
		entry := CategoryOperationCounts{Category: category}
		for _, r := range byCategory[category] {
			entry.Operations = append(entry.Operations, OperationCount{Operation: r.key.operation, Count: r.count})
		}
		result = append(result, entry)
	}
	return result
}

func (s *serviceCenterServiceImpl) OperationRevenue() []CategoryOperationRevenue {
	keys, groups := groupBy(s.repairs(), func(r repair) repairKey {
		return repairKey{category: r.category.Name, operation: r.operation.Name}
	})

	type row struct {
		key repairKey
		sum decimal.Decimal
	}
	rows := make([]row, 0, len(keys))
	for _, k := range keys {
		sum := decimal.Zero
		for _, r := range groups[k] {
			sum = sum.Add(r.operation.Price)
		}
		rows = append(rows, row{key: k, sum: sum})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if c := s.collator.Compare(rows[i].key.category, rows[j].key.category); c != 0 {
			return c < 0
		}
		if !rows[i].sum.Equal(rows[j].sum) {
			return rows[i].sum.GreaterThan(rows[j].sum)
		}
		return s.collator.Less(rows[i].key.operation, rows[j].key.operation)
	})

	categories, byCategory := groupBy(rows, func(r row) string { return r.key.category })
	result := make([]CategoryOperationRevenue, 0, len(categories))
	for _, category := range categories {
		entry := CategoryOperationRevenue{Category: category}
		for _, r := range byCategory[category] {
			entry.Operations = append(entry.Operations, OperationRevenue{Operation: r.key.operation, Sum: r.sum})
		}
		result = append(result, entry)
	}
	return result
}

func (s *serviceCenterServiceImpl) WarrantyOperations(categoryName string) []OperationCount {
	now := s.now()

	var covered []repair
	for _, r := range s.repairs() {
		if categoryName != "" && r.category.Name != categoryName {
			continue
		}
		if !models.WarrantyActive(r.category.WarrantyYears, r.report.ProductReleaseDate, now) {
			continue
		}
		covered = append(covered, r)
	}

	names, groups := groupBy(covered, func(r repair) string { return r.operation.Name })
	result := make([]OperationCount, 0, len(names))
	for _, name := range names {
		result = append(result, OperationCount{Operation: name, Count: len(groups[name])})
	}

	sort.SliceStable(result, func(i, j int) bool {
		if result[i].Count != result[j].Count {
			return result[i].Count > result[j].Count
		}
		return s.collator.Less(result[i].Operation, result[j].Operation)
	})
	return result
}
