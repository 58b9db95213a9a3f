package repository

import (
	"errors"

	"nurse-call-backend/internal/apperrors"
	"nurse-call-backend/internal/models"

	"gorm.io/gorm"
)

type PatientRepository struct {
	db *gorm.DB
}

func NewPatientRepo(db *gorm.DB) *PatientRepository {
	return &PatientRepository{db: db}
}

// GetAllPatients retrieves all patients with their users and beds
func (r *PatientRepository) GetAllPatients() ([]models.Patient, error) {
	var patients []models.Patient
	err := r.db.Preload("User").Preload("Bed.Island").Order("id ASC").Find(&patients).Error
	return patients, err
}

// GetPatientByID retrieves a patient with user and bed loaded
func (r *PatientRepository) GetPatientByID(id uint) (*models.Patient, error) {
	var patient models.Patient
	err := r.db.Preload("User").Preload("Bed.Island").First(&patient, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPatientNotFound
		}
		return nil, err
	}
	return &patient, nil
}

// CreatePatient creates a new patient
func (r *PatientRepository) CreatePatient(patient *models.Patient) error {
	return r.db.Create(patient).Error
}

// UpdatePatient persists changes to an existing patient
func (r *PatientRepository) UpdatePatient(patient *models.Patient) error {
	return r.db.Save(patient).Error
}

// SetPatientBed updates the single owning side of the Bed<->Patient edge.
// Passing nil releases the patient from any bed. The unique index on
// patients.bed_id rejects double occupancy.
func (r *PatientRepository) SetPatientBed(patientID uint, bedID *uint) error {
	return r.db.Model(&models.Patient{}).
		Where("id = ?", patientID).
		Update("bed_id", bedID).Error
}
