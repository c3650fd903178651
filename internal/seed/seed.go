package seed

import (
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	appModels "github.com/yigit/classworks/internal/app/models"
	appRepos "github.com/yigit/classworks/internal/app/repositories"
	"github.com/yigit/classworks/internal/pkg/helpers"
)

// CreateDefaultData fills the in-memory repositories of the exercises that ship
// with hard-coded datasets. Service center and university data come from XML files.
func CreateDefaultData(repos *appRepos.Repositories, lgr zerolog.Logger) {
	lgr.Debug().Msg("Seeding classroom datasets...")

	Hospital(repos.HospitalRepository)
	BookStore(repos.BookStoreRepository)
	Computers(repos.ComputerRepository)
	Bank(repos.BankRepository)

	lgr.Debug().
		Int("patients", len(repos.HospitalRepository.Patients())).
		Int("books", len(repos.BookStoreRepository.Books())).
		Int("computers", len(repos.ComputerRepository.All())).
		Int("clients", len(repos.BankRepository.Clients())).
		Msg("Classroom datasets seeded")
}

// Hospital seeds five patients, services and doctors with one report each
func Hospital(repo *appRepos.HospitalRepository) {
	repo.AddPatients(
		appModels.Patient{ID: 1, Surname: "John", RegistrationDate: helpers.Date(2021, time.January, 1)},
		appModels.Patient{ID: 2, Surname: "Jane", RegistrationDate: helpers.Date(2020, time.January, 1)},
		appModels.Patient{ID: 3, Surname: "Jack", RegistrationDate: helpers.Date(2019, time.January, 1)},
		appModels.Patient{ID: 4, Surname: "Jill", RegistrationDate: helpers.Date(2018, time.January, 1)},
		appModels.Patient{ID: 5, Surname: "Jim", RegistrationDate: helpers.Date(2017, time.January, 1)},
	)
	repo.AddServices(
		appModels.MedicalService{ID: 1, Title: "Service1", Price: decimal.NewFromInt(100)},
		appModels.MedicalService{ID: 2, Title: "Service2", Price: decimal.NewFromInt(200)},
		appModels.MedicalService{ID: 3, Title: "Service3", Price: decimal.NewFromInt(300)},
		appModels.MedicalService{ID: 4, Title: "Service4", Price: decimal.NewFromInt(400)},
		appModels.MedicalService{ID: 5, Title: "Service5", Price: decimal.NewFromInt(500)},
	)
	repo.AddDoctors(
		appModels.Doctor{ID: 1, Surname: "Doctor1"},
		appModels.Doctor{ID: 2, Surname: "Doctor2"},
		appModels.Doctor{ID: 3, Surname: "Doctor3"},
		appModels.Doctor{ID: 4, Surname: "Doctor4"},
		appModels.Doctor{ID: 5, Surname: "Doctor5"},
	)
	repo.AddReports(
		appModels.TreatmentReport{Date: helpers.Date(2021, time.January, 1), PatientID: 1, DoctorID: 1, ServiceID: 1, Quantity: 1},
		appModels.TreatmentReport{Date: helpers.Date(2020, time.January, 1), PatientID: 2, DoctorID: 2, ServiceID: 2, Quantity: 2},
		appModels.TreatmentReport{Date: helpers.Date(2019, time.January, 1), PatientID: 3, DoctorID: 3, ServiceID: 3, Quantity: 3},
		appModels.TreatmentReport{Date: helpers.Date(2018, time.January, 1), PatientID: 4, DoctorID: 4, ServiceID: 4, Quantity: 4},
		appModels.TreatmentReport{Date: helpers.Date(2017, time.January, 1), PatientID: 5, DoctorID: 5, ServiceID: 5, Quantity: 5},
	)
}

// BookStore seeds three books, three buyers and five orders
func BookStore(repo *appRepos.BookStoreRepository) {
	repo.AddBooks(
		appModels.Book{ID: 1, AuthorSurname: "Tolkien", Title: "The Lord of the Rings", Price: decimal.NewFromInt(10)},
		appModels.Book{ID: 2, AuthorSurname: "Rowling", Title: "Harry Potter", Price: decimal.NewFromInt(15)},
		appModels.Book{ID: 3, AuthorSurname: "Martin", Title: "A Game of Thrones", Price: decimal.NewFromInt(20)},
	)
	repo.AddBuyers(
		appModels.Buyer{ID: 1, Surname: "Smith", Country: "USA"},
		appModels.Buyer{ID: 2, Surname: "Johnson", Country: "UK"},
		appModels.Buyer{ID: 3, Surname: "Brown", Country: "Canada"},
	)
	repo.AddOrders(
		appModels.Order{BuyerID: 1, BookID: 1, Quantity: 2},
		appModels.Order{BuyerID: 1, BookID: 1, Quantity: 2},
		appModels.Order{BuyerID: 1, BookID: 3, Quantity: 1},
		appModels.Order{BuyerID: 2, BookID: 2, Quantity: 1},
		appModels.Order{BuyerID: 3, BookID: 3, Quantity: 3},
	)
}

// Computers seeds three servers and three work stations
func Computers(repo *appRepos.ComputerRepository) {
	repo.Add(
		&appModels.Server{Hardware: appModels.Hardware{Brand: "Dell", ProcessorSpeed: 2000, RAM: 8, Disk: 1000, Price: 1000}, AdditionalDisks: []int{2000}},
		&appModels.Server{Hardware: appModels.Hardware{Brand: "HP", ProcessorSpeed: 3000, RAM: 16, Disk: 2000, Price: 2000}, AdditionalDisks: []int{4000, 4000, 4000}},
		&appModels.Server{Hardware: appModels.Hardware{Brand: "Lenovo", ProcessorSpeed: 2500, RAM: 12, Disk: 1500, Price: 1500}, AdditionalDisks: []int{3000}},
		&appModels.WorkStation{Hardware: appModels.Hardware{Brand: "Dell", ProcessorSpeed: 2000, RAM: 8, Disk: 1000, Price: 1000}, MonitorSize: 20},
		&appModels.WorkStation{Hardware: appModels.Hardware{Brand: "HP", ProcessorSpeed: 3000, RAM: 16, Disk: 2000, Price: 2000}, MonitorSize: 40},
		&appModels.WorkStation{Hardware: appModels.Hardware{Brand: "Lenovo", ProcessorSpeed: 2500, RAM: 12, Disk: 1500, Price: 1500}, MonitorSize: 30},
	)
}

// Bank seeds two regular and two VIP clients
func Bank(repo *appRepos.BankRepository) {
	account := func(number int, money int64) *appModels.BankAccount {
		return &appModels.BankAccount{Number: number, Money: decimal.NewFromInt(money)}
	}

	repo.AddClients(
		&appModels.Client{
			Citizen: appModels.Citizen{Name: "Rostyk", Surname: "M", BirthDate: helpers.Date(1990, time.January, 1)},
			Account: account(1, 1000),
		},
		&appModels.Client{
			Citizen: appModels.Citizen{Name: "Petro", Surname: "D", BirthDate: helpers.Date(1980, time.January, 1)},
			Account: account(2, 2000),
		},
		&appModels.VipClient{
			Client: appModels.Client{
				Citizen: appModels.Citizen{Name: "Vasyl", Surname: "U", BirthDate: helpers.Date(1970, time.January, 1)},
				Account: account(3, 3000),
			},
			CreditAccount: account(4, 4000),
		},
		&appModels.VipClient{
			Client: appModels.Client{
				Citizen: appModels.Citizen{Name: "Danylo", Surname: "O", BirthDate: helpers.Date(1960, time.January, 1)},
				Account: account(5, 5000),
			},
			CreditAccount: account(6, 6000),
		},
	)
}
