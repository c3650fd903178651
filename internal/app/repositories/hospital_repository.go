package repositories

import "github.com/yigit/classworks/internal/app/models"

// HospitalRepository keeps patients, services, doctors and treatment reports in memory
type HospitalRepository struct {
	patients table[models.Patient]
	services table[models.MedicalService]
	doctors  table[models.Doctor]
	reports  table[models.TreatmentReport]
}

// NewHospitalRepository creates an empty HospitalRepository
func NewHospitalRepository() *HospitalRepository {
	return &HospitalRepository{}
}

func (r *HospitalRepository) AddPatients(patients ...models.Patient)        { r.patients.insert(patients...) }
func (r *HospitalRepository) AddServices(services ...models.MedicalService) { r.services.insert(services...) }
func (r *HospitalRepository) AddDoctors(doctors ...models.Doctor)           { r.doctors.insert(doctors...) }
func (r *HospitalRepository) AddReports(reports ...models.TreatmentReport)  { r.reports.insert(reports...) }

func (r *HospitalRepository) Patients() []models.Patient        { return r.patients.all() }
func (r *HospitalRepository) Services() []models.MedicalService { return r.services.all() }
func (r *HospitalRepository) Doctors() []models.Doctor          { return r.doctors.all() }
func (r *HospitalRepository) Reports() []models.TreatmentReport { return r.reports.all() }
