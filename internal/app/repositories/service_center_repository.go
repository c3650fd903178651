package repositories

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/yigit/classworks/internal/app/models"
	"github.com/yigit/classworks/internal/app/models/dto"
	"github.com/yigit/classworks/internal/pkg/helpers"
)

// Service center input files
const (
	ProductCategoriesFile = "ProductCategories.xml"
	OperationsFile        = "Operations.xml"
	ServiceReportsFile    = "ServiceReports.xml"
)

// ServiceCenterRepository keeps product categories, operations and service reports in memory
type ServiceCenterRepository struct {
	categories table[models.ProductCategory]
	operations table[models.Operation]
	reports    table[models.ServiceReport]

	// today fills in reports without a release date
	today helpers.Clock
}

// NewServiceCenterRepository creates an empty ServiceCenterRepository
func NewServiceCenterRepository() *ServiceCenterRepository {
	return &ServiceCenterRepository{today: helpers.SystemClock}
}

// WithClock replaces the clock used for reports without a release date
func (r *ServiceCenterRepository) WithClock(clock helpers.Clock) *ServiceCenterRepository {
	r.today = clock
	return r
}

func (r *ServiceCenterRepository) AddCategories(categories ...models.ProductCategory) {
	r.categories.insert(categories...)
}
func (r *ServiceCenterRepository) AddOperations(operations ...models.Operation) {
	r.operations.insert(operations...)
}
func (r *ServiceCenterRepository) AddReports(reports ...models.ServiceReport) {
	r.reports.insert(reports...)
}

func (r *ServiceCenterRepository) Categories() []models.ProductCategory { return r.categories.all() }
func (r *ServiceCenterRepository) Operations() []models.Operation       { return r.operations.all() }
func (r *ServiceCenterRepository) Reports() []models.ServiceReport      { return r.reports.all() }

// LoadFromDir replaces the repository content with the three XML files found in dir.
// Elements missing a required child are skipped; malformed values fail the load.
func (r *ServiceCenterRepository) LoadFromDir(dir string) error {
	categories, err := r.loadCategories(filepath.Join(dir, ProductCategoriesFile))
	if err != nil {
		return err
	}
	operations, err := r.loadOperations(filepath.Join(dir, OperationsFile))
	if err != nil {
		return err
	}
	reports, err := r.loadReports(filepath.Join(dir, ServiceReportsFile))
	if err != nil {
		return err
	}

	r.categories.reset()
	r.operations.reset()
	r.reports.reset()
	r.AddCategories(categories...)
	r.AddOperations(operations...)
	r.AddReports(reports...)
	return nil
}

func (r *ServiceCenterRepository) loadCategories(path string) ([]models.ProductCategory, error) {
	var doc dto.ProductCategoriesDocument
	if err := decodeXMLFile(path, &doc); err != nil {
		return nil, err
	}

	categories := make([]models.ProductCategory, 0, len(doc.Items))
	for _, item := range doc.Items {
		if item.Name == nil || item.WarrantyYears == nil {
			continue
		}
		id, err := optionalInt("product category id", item.ID)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		years, err := parseInt("warranty years", *item.WarrantyYears)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		categories = append(categories, models.ProductCategory{ID: id, Name: *item.Name, WarrantyYears: years})
	}
	return categories, nil
}

func (r *ServiceCenterRepository) loadOperations(path string) ([]models.Operation, error) {
	var doc dto.OperationsDocument
	if err := decodeXMLFile(path, &doc); err != nil {
		return nil, err
	}

	operations := make([]models.Operation, 0, len(doc.Items))
	for _, item := range doc.Items {
		if item.Price == nil {
			continue
		}
		id, err := optionalInt("operation id", item.ID)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		price, err := parseDecimal("operation price", *item.Price)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		var name string
		if item.Name != nil {
			name = *item.Name
		}
		operations = append(operations, models.Operation{ID: id, Name: name, Price: price})
	}
	return operations, nil
}

func (r *ServiceCenterRepository) loadReports(path string) ([]models.ServiceReport, error) {
	var doc dto.ServiceReportsDocument
	if err := decodeXMLFile(path, &doc); err != nil {
		return nil, err
	}

	reports := make([]models.ServiceReport, 0, len(doc.Items))
	for _, item := range doc.Items {
		if item.ProductCategoryID == nil || item.OperationID == nil || item.ProductReleaseDate == nil {
			continue
		}
		categoryID, err := parseInt("product category id", *item.ProductCategoryID)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		operationID, err := parseInt("operation id", *item.OperationID)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		released, err := r.releaseDate(*item.ProductReleaseDate)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		reports = append(reports, models.ServiceReport{
			ProductCategoryID:  categoryID,
			OperationID:        operationID,
			ProductReleaseDate: released,
		})
	}
	return reports, nil
}

// releaseDate maps an empty value to today
func (r *ServiceCenterRepository) releaseDate(value string) (time.Time, error) {
	if isBlank(value) {
		return helpers.DateOnly(r.today()), nil
	}
	return parseDate("product release date", value)
}
