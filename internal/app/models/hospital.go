package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Patient is a person registered at the hospital
type Patient struct {
	ID               int
	Surname          string
	RegistrationDate time.Time
}

// IsLoyal reports whether the patient had been registered for more than
// loyaltyYears calendar years at the given date.
func (p Patient) IsLoyal(at time.Time, loyaltyYears int) bool {
	return at.Year()-p.RegistrationDate.Year() > loyaltyYears
}

// MedicalService is a billable hospital service
type MedicalService struct {
	ID    int
	Title string
	Price decimal.Decimal
}

// Doctor provides medical services
type Doctor struct {
	ID      int
	Surname string
}

// TreatmentReport records services a doctor gave a patient on a date
type TreatmentReport struct {
	Date      time.Time
	PatientID int
	DoctorID  int
	ServiceID int
	Quantity  int
}
