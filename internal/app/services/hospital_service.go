package services

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/yigit/classworks/internal/app/models"
	"github.com/yigit/classworks/internal/app/repositories"
	"github.com/yigit/classworks/internal/pkg/helpers"
)

// HospitalService defines the hospital revenue queries
type HospitalService interface {
	// DoctorRevenue returns every doctor with reports, highest revenue first
	DoctorRevenue() []DoctorRevenue
	// PatientSpending sums what patients with the surname paid between from and to, both inclusive
	PatientSpending(surname string, from, to time.Time) decimal.Decimal
}

// DoctorRevenue is a doctor with the money their services brought in
type DoctorRevenue struct {
	Doctor  models.Doctor
	Revenue decimal.Decimal
}

// HospitalOptions sets the loyalty discount rule
type HospitalOptions struct {
	LoyaltyYears    int
	LoyaltyDiscount decimal.Decimal // fraction, 0.1 means 10% off
}

type hospitalServiceImpl struct {
	repo *repositories.HospitalRepository
	opts HospitalOptions
}

// NewHospitalService creates a new hospital service instance
func NewHospitalService(repo *repositories.HospitalRepository, opts HospitalOptions) HospitalService {
	return &hospitalServiceImpl{repo: repo, opts: opts}
}

// treatment is one report joined with its patient, service and doctor
type treatment struct {
	report  models.TreatmentReport
	patient models.Patient
	service models.MedicalService
	doctor  models.Doctor
}

// treatments inner-joins reports with patients, services and doctors in report order
func (s *hospitalServiceImpl) treatments() []treatment {
	patients := indexBy(s.repo.Patients(), func(p models.Patient) int { return p.ID })
	medServices := indexBy(s.repo.Services(), func(m models.MedicalService) int { return m.ID })
	doctors := indexBy(s.repo.Doctors(), func(d models.Doctor) int { return d.ID })

	var rows []treatment
	for _, report := range s.repo.Reports() {
		patient, ok := patients[report.PatientID]
		if !ok {
			continue
		}
		service, ok := medServices[report.ServiceID]
		if !ok {
			continue
		}
		doctor, ok := doctors[report.DoctorID]
		if !ok {
			continue
		}
		rows = append(rows, treatment{report: report, patient: patient, service: service, doctor: doctor})
	}
	return rows
}

// cost applies the loyalty discount when the patient qualifies at the report date
func (s *hospitalServiceImpl) cost(t treatment) decimal.Decimal {
	amount := t.service.Price.Mul(decimal.NewFromInt(int64(t.report.Quantity)))
	if t.patient.IsLoyal(t.report.Date, s.opts.LoyaltyYears) {
		amount = amount.Mul(decimal.NewFromInt(1).Sub(s.opts.LoyaltyDiscount))
	}
	return amount
}

func (s *hospitalServiceImpl) DoctorRevenue() []DoctorRevenue {
	rows := s.treatments()
	order, groups := groupBy(rows, func(t treatment) int { return t.doctor.ID })

	result := make([]DoctorRevenue, 0, len(order))
	for _, doctorID := range order {
		group := groups[doctorID]
		costs := make([]decimal.Decimal, len(group))
		for i, t := range group {
			costs[i] = s.cost(t)
		}
		result = append(result, DoctorRevenue{Doctor: group[0].doctor, Revenue: helpers.SumDecimals(costs...)})
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Revenue.GreaterThan(result[j].Revenue)
	})
	return result
}

func (s *hospitalServiceImpl) PatientSpending(surname string, from, to time.Time) decimal.Decimal {
	var costs []decimal.Decimal
	for _, t := range s.treatments() {
		if t.patient.Surname != surname {
			continue
		}
		if t.report.Date.Before(from) || t.report.Date.After(to) {
			continue
		}
		costs = append(costs, s.cost(t))
	}
	return helpers.SumDecimals(costs...)
}
