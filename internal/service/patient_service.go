package service

import (
	"fmt"
	"time"

	"nurse-call-backend/internal/apperrors"
	"nurse-call-backend/internal/models"
	"nurse-call-backend/internal/repository"
)

type PatientService struct {
	patientRepo *repository.PatientRepository
	bedRepo     *repository.BedRepository
	userRepo    *repository.UserRepository
	auditRepo   *repository.AuditRepository
}

func NewPatientService(
	patientRepo *repository.PatientRepository,
	bedRepo *repository.BedRepository,
	userRepo *repository.UserRepository,
	auditRepo *repository.AuditRepository,
) *PatientService {
	return &PatientService{
		patientRepo: patientRepo,
		bedRepo:     bedRepo,
		userRepo:    userRepo,
		auditRepo:   auditRepo,
	}
}

// GetAllPatients retrieves all patients
func (s *PatientService) GetAllPatients() ([]models.Patient, error) {
	return s.patientRepo.GetAllPatients()
}

// GetPatientByID retrieves a single patient
func (s *PatientService) GetPatientByID(id uint) (*models.Patient, error) {
	return s.patientRepo.GetPatientByID(id)
}

// CreatePatient creates a patient record for an existing user account.
// The user's role is switched to patient if it isn't already.
func (s *PatientService) CreatePatient(userID uint, diagnosis, treatment, mrn string, adminID uint) (*models.Patient, error) {
	user, err := s.userRepo.FindUserByID(userID)
	if err != nil {
		return nil, err
	}

	if user.Role != models.RolePatient {
		user.Role = models.RolePatient
		if err := s.userRepo.UpdateUser(user); err != nil {
			return nil, fmt.Errorf("failed to update user role: %w", err)
		}
	}

	now := time.Now().UTC()
	patient := &models.Patient{
		UserID:              user.ID,
		Diagnosis:           diagnosis,
		Treatment:           treatment,
		MedicalRecordNumber: mrn,
		AdmissionDate:       &now,
	}
	if err := s.patientRepo.CreatePatient(patient); err != nil {
		return nil, fmt.Errorf("failed to create patient: %w", err)
	}
	patient.User = *user

	adminIDPtr := &adminID
	_ = s.auditRepo.CreateAuditLog(adminIDPtr, "patient_create",
		fmt.Sprintf("Created patient for user %s (ID: %d)", user.Username, patient.ID))

	return patient, nil
}

// UpdatePatient updates the clinical fields of a patient
func (s *PatientService) UpdatePatient(id uint, diagnosis, treatment, mrn string, adminID uint) (*models.Patient, error) {
	patient, err := s.patientRepo.GetPatientByID(id)
	if err != nil {
		return nil, err
	}

	patient.Diagnosis = diagnosis
	patient.Treatment = treatment
	patient.MedicalRecordNumber = mrn
	if err := s.patientRepo.UpdatePatient(patient); err != nil {
		return nil, fmt.Errorf("failed to update patient: %w", err)
	}

	adminIDPtr := &adminID
	_ = s.auditRepo.CreateAuditLog(adminIDPtr, "patient_update",
		fmt.Sprintf("Updated patient (ID: %d)", patient.ID))

	return patient, nil
}

// AssignBed places a patient in a bed. This is the only operation that
// writes the Bed<->Patient edge, so the two sides can never disagree.
func (s *PatientService) AssignBed(patientID, bedID uint, adminID uint) (*models.Patient, error) {
	patient, err := s.patientRepo.GetPatientByID(patientID)
	if err != nil {
		return nil, err
	}

	bed, err := s.bedRepo.GetBedByID(bedID)
	if err != nil {
		return nil, err
	}

	occupant, err := s.bedRepo.GetCurrentPatient(bedID)
	if err != nil {
		return nil, err
	}
	if occupant != nil && occupant.ID != patient.ID {
		return nil, apperrors.ErrBedOccupied
	}

	if err := s.patientRepo.SetPatientBed(patient.ID, &bed.ID); err != nil {
		return nil, fmt.Errorf("failed to assign bed: %w", err)
	}

	adminIDPtr := &adminID
	_ = s.auditRepo.CreateAuditLog(adminIDPtr, "patient_assign_bed",
		fmt.Sprintf("Assigned patient %d to bed %s", patient.ID, bed.BedNumber))

	return s.patientRepo.GetPatientByID(patientID)
}

// ReleaseBed removes a patient from their bed, e.g. on discharge
func (s *PatientService) ReleaseBed(patientID uint, adminID uint) (*models.Patient, error) {
	patient, err := s.patientRepo.GetPatientByID(patientID)
	if err != nil {
		return nil, err
	}

	if err := s.patientRepo.SetPatientBed(patient.ID, nil); err != nil {
		return nil, fmt.Errorf("failed to release bed: %w", err)
	}

	adminIDPtr := &adminID
	_ = s.auditRepo.CreateAuditLog(adminIDPtr, "patient_release_bed",
		fmt.Sprintf("Released patient %d from bed", patient.ID))

	return s.patientRepo.GetPatientByID(patientID)
}
