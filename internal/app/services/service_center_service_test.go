package services

import (
	"testing"
	"time"

	"github.com/Pallinder/go-randomdata"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/classworks/internal/app/models"
	"github.com/yigit/classworks/internal/app/repositories"
	"github.com/yigit/classworks/internal/pkg/helpers"
)

var serviceCenterNow = helpers.Date(2024, time.May, 15)

func newCollator(t *testing.T, tag string) *helpers.Collator {
	t.Helper()
	collator, err := helpers.NewCollator(tag)
	require.NoError(t, err)
	return collator
}

func serviceCenterFixture(t *testing.T) ServiceCenterService {
	t.Helper()
	repo := repositories.NewServiceCenterRepository()
	repo.AddCategories(
		models.ProductCategory{ID: 1, Name: "Phones", WarrantyYears: 1},
		models.ProductCategory{ID: 2, Name: "Home Appliances", WarrantyYears: 2},
		models.ProductCategory{ID: 3, Name: "Home Appliances", WarrantyYears: 5},
	)
	repo.AddOperations(
		models.Operation{ID: 1, Name: "Diagnostics", Price: decimal.NewFromInt(150)},
		models.Operation{ID: 2, Name: "Screen replacement", Price: decimal.RequireFromString("1200.50")},
		models.Operation{ID: 3, Name: "Cleaning", Price: decimal.NewFromInt(150)},
	)
	repo.AddReports(
		models.ServiceReport{ProductCategoryID: 1, OperationID: 1, ProductReleaseDate: helpers.Date(2024, time.January, 1)},
		models.ServiceReport{ProductCategoryID: 1, OperationID: 2, ProductReleaseDate: helpers.Date(2020, time.January, 1)},
		models.ServiceReport{ProductCategoryID: 2, OperationID: 1, ProductReleaseDate: helpers.Date(2022, time.December, 31)},
		models.ServiceReport{ProductCategoryID: 2, OperationID: 1, ProductReleaseDate: helpers.Date(2021, time.December, 31)},
		models.ServiceReport{ProductCategoryID: 2, OperationID: 3, ProductReleaseDate: helpers.Date(2023, time.March, 1)},
		models.ServiceReport{ProductCategoryID: 3, OperationID: 3, ProductReleaseDate: helpers.Date(2020, time.March, 1)},
		models.ServiceReport{ProductCategoryID: 2, OperationID: 2, ProductReleaseDate: helpers.Date(2024, time.April, 1)},
		models.ServiceReport{ProductCategoryID: 9, OperationID: 1, ProductReleaseDate: helpers.Date(2024, time.April, 1)},
		models.ServiceReport{ProductCategoryID: 1, OperationID: 9, ProductReleaseDate: helpers.Date(2024, time.April, 1)},
	)
	return NewServiceCenterService(repo, newCollator(t, "en"), helpers.FixedClock(serviceCenterNow))
}

func TestServiceCenterService_OperationCounts(t *testing.T) {
	svc := serviceCenterFixture(t)

	counts := svc.OperationCounts()
	assert.Equal(t, []CategoryOperationCounts{
		{
			Category: "Home Appliances",
			Operations: []OperationCount{
				{Operation: "Cleaning", Count: 2},
				{Operation: "Diagnostics", Count: 2},
				{Operation: "Screen replacement", Count: 1},
			},
		},
		{
			Category: "Phones",
			Operations: []OperationCount{
				{Operation: "Diagnostics", Count: 1},
				{Operation: "Screen replacement", Count: 1},
			},
		},
	}, counts)
}

func TestServiceCenterService_OperationRevenue(t *testing.T) {
	svc := serviceCenterFixture(t)

	revenue := svc.OperationRevenue()
	require.Len(t, revenue, 2)

	type line struct {
		name string
		sum  string
	}
	flatten := func(ops []OperationRevenue) []line {
		var lines []line
		for _, o := range ops {
			lines = append(lines, line{o.Operation, o.Sum.String()})
		}
		return lines
	}

	assert.Equal(t, "Home Appliances", revenue[0].Category)
	assert.Equal(t, []line{
		{"Screen replacement", "1200.5"},
		{"Cleaning", "300"},
		{"Diagnostics", "300"},
	}, flatten(revenue[0].Operations))

	assert.Equal(t, "Phones", revenue[1].Category)
	assert.Equal(t, []line{
		{"Screen replacement", "1200.5"},
		{"Diagnostics", "150"},
	}, flatten(revenue[1].Operations))
}

func TestServiceCenterService_WarrantyOperations(t *testing.T) {
	svc := serviceCenterFixture(t)

	assert.Equal(t, []OperationCount{
		{Operation: "Cleaning", Count: 2},
		{Operation: "Diagnostics", Count: 2},
		{Operation: "Screen replacement", Count: 1},
	}, svc.WarrantyOperations(""), "no category counts across every category")
}

func TestServiceCenterService_WarrantyOperationsByCategory(t *testing.T) {
	svc := serviceCenterFixture(t)

	assert.Equal(t, []OperationCount{
		{Operation: "Cleaning", Count: 2},
		{Operation: "Diagnostics", Count: 1},
		{Operation: "Screen replacement", Count: 1},
	}, svc.WarrantyOperations("Home Appliances"))

	assert.Equal(t, []OperationCount{
		{Operation: "Diagnostics", Count: 1},
	}, svc.WarrantyOperations("Phones"))

	assert.Empty(t, svc.WarrantyOperations(randomdata.SillyName()))
}

func TestServiceCenterService_WarrantyFollowsClock(t *testing.T) {
	repo := repositories.NewServiceCenterRepository()
	repo.AddCategories(models.ProductCategory{ID: 1, Name: "Phones", WarrantyYears: 1})
	repo.AddOperations(models.Operation{ID: 1, Name: "Diagnostics", Price: decimal.NewFromInt(150)})
	repo.AddReports(models.ServiceReport{ProductCategoryID: 1, OperationID: 1, ProductReleaseDate: helpers.Date(2023, time.June, 1)})

	collator := newCollator(t, "en")

	inWarranty := NewServiceCenterService(repo, collator, helpers.FixedClock(helpers.Date(2024, time.December, 31)))
	assert.Len(t, inWarranty.WarrantyOperations("Phones"), 1)

	expired := NewServiceCenterService(repo, collator, helpers.FixedClock(helpers.Date(2025, time.January, 1)))
	assert.Empty(t, expired.WarrantyOperations("Phones"))
}

func TestServiceCenterService_LoadedFromXML(t *testing.T) {
	repo := repositories.NewServiceCenterRepository().WithClock(helpers.FixedClock(serviceCenterNow))
	require.NoError(t, repo.LoadFromDir("../repositories/testdata/servicecenter"))

	svc := NewServiceCenterService(repo, newCollator(t, "uk"), helpers.FixedClock(serviceCenterNow))

	counts := svc.OperationCounts()
	require.Len(t, counts, 2)
	assert.Equal(t, "Home Appliances", counts[0].Category)
	assert.Equal(t, "Phones", counts[1].Category)

	// the report without a release date was made today and is still covered
	assert.Equal(t, []OperationCount{{Operation: "Screen replacement", Count: 1}}, svc.WarrantyOperations("Phones"))
}
