package repositories

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Pallinder/go-randomdata"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/classworks/internal/app/models"
	"github.com/yigit/classworks/internal/pkg/apperrors"
	"github.com/yigit/classworks/internal/pkg/helpers"
)

func TestServiceCenterRepository_LoadFromDir(t *testing.T) {
	today := helpers.Date(2024, time.May, 15)
	repo := NewServiceCenterRepository().WithClock(helpers.FixedClock(today.Add(15 * time.Hour)))

	require.NoError(t, repo.LoadFromDir("testdata/servicecenter"))

	assert.Equal(t, []models.ProductCategory{
		{ID: 1, Name: "Home Appliances", WarrantyYears: 2},
		{ID: 2, Name: "Phones", WarrantyYears: 1},
	}, repo.Categories(), "category without WarrantyYears is skipped")

	operations := repo.Operations()
	require.Len(t, operations, 2, "operation without Price is skipped")
	assert.Equal(t, "Screen replacement", operations[1].Name)
	assert.True(t, operations[1].Price.Equal(decimal.RequireFromString("1200.5")))

	reports := repo.Reports()
	require.Len(t, reports, 2, "report without ProductReleaseDate is skipped")
	assert.Equal(t, helpers.Date(2022, time.March, 1), reports[0].ProductReleaseDate)
	assert.Equal(t, today, reports[1].ProductReleaseDate, "empty release date means today")
}

func TestServiceCenterRepository_LoadReplacesContent(t *testing.T) {
	repo := NewServiceCenterRepository()
	repo.AddCategories(models.ProductCategory{ID: 99, Name: "Stale"})

	require.NoError(t, repo.LoadFromDir("testdata/servicecenter"))
	require.NoError(t, repo.LoadFromDir("testdata/servicecenter"))

	assert.Len(t, repo.Categories(), 2)
}

func TestServiceCenterRepository_MalformedValue(t *testing.T) {
	repo := NewServiceCenterRepository()

	err := repo.LoadFromDir("testdata/servicecenter_bad")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrInvalidRecord))

	var custom *apperrors.CustomError
	require.True(t, errors.As(err, &custom))
	assert.Equal(t, "cheap", custom.Details["value"])
	assert.Empty(t, repo.Operations(), "a failed load keeps the previous content")
}

func TestServiceCenterRepository_EmptyPrice(t *testing.T) {
	repo := NewServiceCenterRepository()

	err := repo.LoadFromDir("testdata/servicecenter_empty_price")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrInvalidRecord))

	var custom *apperrors.CustomError
	require.True(t, errors.As(err, &custom))
	assert.Equal(t, "operation price", custom.Details["field"])
	assert.Empty(t, repo.Operations())
}

// copyDir copies the files of src into a fresh directory and overwrites one of them
func copyDir(t *testing.T, src, name, content string) string {
	t.Helper()
	dst := t.TempDir()
	entries, err := os.ReadDir(src)
	require.NoError(t, err)
	for _, e := range entries {
		data, err := os.ReadFile(filepath.Join(src, e.Name()))
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(filepath.Join(dst, e.Name()), data, 0o644))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dst, name), []byte(content), 0o644))
	return dst
}

func TestServiceCenterRepository_EmptyNumericFields(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		field   string
	}{
		{
			name:    "warranty years",
			file:    ProductCategoriesFile,
			content: `<ProductCategories><ProductCategory Id="1"><Name>Phones</Name><WarrantyYears></WarrantyYears></ProductCategory></ProductCategories>`,
			field:   "warranty years",
		},
		{
			name:    "category id attribute",
			file:    ProductCategoriesFile,
			content: `<ProductCategories><ProductCategory Id=""><Name>Phones</Name><WarrantyYears>1</WarrantyYears></ProductCategory></ProductCategories>`,
			field:   "product category id",
		},
		{
			name:    "operation id attribute",
			file:    OperationsFile,
			content: `<Operations><Operation Id=" "><Name>Diagnostics</Name><Price>150</Price></Operation></Operations>`,
			field:   "operation id",
		},
		{
			name:    "report category id",
			file:    ServiceReportsFile,
			content: `<ServiceReports><ServiceReport><ProductCategoryId></ProductCategoryId><OperationId>1</OperationId><ProductReleaseDate>2022-03-01</ProductReleaseDate></ServiceReport></ServiceReports>`,
			field:   "product category id",
		},
		{
			name:    "report operation id",
			file:    ServiceReportsFile,
			content: `<ServiceReports><ServiceReport><ProductCategoryId>1</ProductCategoryId><OperationId/><ProductReleaseDate>2022-03-01</ProductReleaseDate></ServiceReport></ServiceReports>`,
			field:   "operation id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := copyDir(t, "testdata/servicecenter", tt.file, tt.content)

			err := NewServiceCenterRepository().LoadFromDir(dir)
			require.Error(t, err)

			var custom *apperrors.CustomError
			require.True(t, errors.As(err, &custom))
			assert.Equal(t, tt.field, custom.Details["field"])
		})
	}
}

func TestServiceCenterRepository_AbsentIDIsZero(t *testing.T) {
	dir := copyDir(t, "testdata/servicecenter", OperationsFile,
		`<Operations><Operation><Name>Diagnostics</Name><Price>150</Price></Operation></Operations>`)

	repo := NewServiceCenterRepository()
	require.NoError(t, repo.LoadFromDir(dir))

	require.Len(t, repo.Operations(), 1)
	assert.Equal(t, 0, repo.Operations()[0].ID)
}

func TestServiceCenterRepository_MissingDirectory(t *testing.T) {
	err := NewServiceCenterRepository().LoadFromDir(t.TempDir())
	assert.Error(t, err)
}

func TestUniversityRepository_LoadFromDir(t *testing.T) {
	repo := NewUniversityRepository()
	require.NoError(t, repo.LoadFromDir("testdata/university"))

	assert.Equal(t, []models.Task{
		{ID: 1, Subject: "Classes and objects", DueDate: helpers.Date(2024, time.May, 15)},
		{ID: 2, Subject: "LINQ queries", DueDate: helpers.Date(2024, time.May, 29)},
	}, repo.Tasks())

	students := repo.Students()
	require.Len(t, students, 2)
	assert.Equal(t, "PMI-21", students[0].Group)
	assert.Equal(t, "", students[1].Group, "missing children default to empty")

	results := repo.Results()
	require.Len(t, results, 2)
	assert.Equal(t, 9.5, results[0].Mark)
	assert.Equal(t, helpers.Date(2024, time.June, 1), results[1].Date)
}

func TestUniversityRepository_EmptyNumericFields(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		field   string
	}{
		{
			name:    "task id attribute",
			file:    TasksFile,
			content: `<Tasks><Task Id=""><Subject>LINQ</Subject><DueDate>2024-05-15</DueDate></Task></Tasks>`,
			field:   "task id",
		},
		{
			name:    "student id attribute",
			file:    StudentsFile,
			content: `<Students><Student Id=""><Name>Taras</Name><Surname>Shevchenko</Surname></Student></Students>`,
			field:   "student id",
		},
		{
			name:    "result task id",
			file:    TaskResultsFile,
			content: `<TaskResults><TaskResult><TaskId></TaskId><StudentId>1</StudentId><Mark>9</Mark><Date>2024-05-14</Date></TaskResult></TaskResults>`,
			field:   "task id",
		},
		{
			name:    "result student id",
			file:    TaskResultsFile,
			content: `<TaskResults><TaskResult><TaskId>1</TaskId><StudentId></StudentId><Mark>9</Mark><Date>2024-05-14</Date></TaskResult></TaskResults>`,
			field:   "student id",
		},
		{
			name:    "mark",
			file:    TaskResultsFile,
			content: `<TaskResults><TaskResult><TaskId>1</TaskId><StudentId>1</StudentId><Mark></Mark><Date>2024-05-14</Date></TaskResult></TaskResults>`,
			field:   "mark",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := copyDir(t, "testdata/university", tt.file, tt.content)

			repo := NewUniversityRepository()
			err := repo.LoadFromDir(dir)
			require.Error(t, err)
			assert.True(t, errors.Is(err, apperrors.ErrInvalidRecord))

			var custom *apperrors.CustomError
			require.True(t, errors.As(err, &custom))
			assert.Equal(t, tt.field, custom.Details["field"])
			assert.Empty(t, repo.Tasks())
		})
	}
}

func TestUniversityRepository_AbsentMarkIsZero(t *testing.T) {
	dir := copyDir(t, "testdata/university", TaskResultsFile,
		`<TaskResults><TaskResult><TaskId>1</TaskId><StudentId>1</StudentId><Date>2024-05-14</Date></TaskResult></TaskResults>`)

	repo := NewUniversityRepository()
	require.NoError(t, repo.LoadFromDir(dir))

	require.Len(t, repo.Results(), 1)
	assert.Zero(t, repo.Results()[0].Mark)
}

func TestBookStoreRepository_Lookups(t *testing.T) {
	repo := NewBookStoreRepository()
	repo.AddBuyers(
		models.Buyer{ID: 1, Surname: "Smith", Country: "USA"},
		models.Buyer{ID: 2, Surname: "Smith", Country: "UK"},
	)
	repo.AddBooks(models.Book{ID: 1, AuthorSurname: "Tolkien", Title: "The Hobbit", Price: decimal.NewFromInt(10)})

	buyer, err := repo.GetBuyerBySurname("Smith")
	require.NoError(t, err)
	assert.Equal(t, 1, buyer.ID, "first match wins")

	_, err = repo.GetBuyerBySurname(randomdata.SillyName())
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = repo.GetBookByID(42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRepositories_ReturnCopies(t *testing.T) {
	repo := NewHospitalRepository()
	repo.AddDoctors(models.Doctor{ID: 1, Surname: "House"})

	doctors := repo.Doctors()
	doctors[0].Surname = "Changed"

	assert.Equal(t, "House", repo.Doctors()[0].Surname)
}

func TestComputerRepository_Variants(t *testing.T) {
	repo := NewComputerRepository()
	repo.Add(
		&models.Server{Hardware: models.Hardware{Brand: "Dell"}},
		&models.WorkStation{Hardware: models.Hardware{Brand: "HP"}, MonitorSize: 24},
		&models.Server{Hardware: models.Hardware{Brand: "Lenovo"}},
	)

	assert.Len(t, repo.All(), 3)
	assert.Len(t, repo.Servers(), 2)
	require.Len(t, repo.WorkStations(), 1)
	assert.Equal(t, 24, repo.WorkStations()[0].MonitorSize)
}

func TestBankRepository_GetAccount(t *testing.T) {
	repo := NewBankRepository()
	vip := &models.VipClient{
		Client:        models.Client{Account: &models.BankAccount{Number: 3}},
		CreditAccount: &models.BankAccount{Number: 4},
	}
	repo.AddClients(&models.Client{Account: &models.BankAccount{Number: 1}}, vip)

	acc, err := repo.GetAccount(4)
	require.NoError(t, err)
	assert.Same(t, vip.CreditAccount, acc)

	assert.Len(t, repo.VipClients(), 1)

	_, err = repo.GetAccount(7)
	assert.ErrorIs(t, err, ErrNotFound)
}
