package service

import (
	"fmt"

	"nurse-call-backend/internal/models"
	"nurse-call-backend/internal/repository"
)

type NurseService struct {
	nurseRepo *repository.NurseRepository
	userRepo  *repository.UserRepository
	auditRepo *repository.AuditRepository
}

func NewNurseService(
	nurseRepo *repository.NurseRepository,
	userRepo *repository.UserRepository,
	auditRepo *repository.AuditRepository,
) *NurseService {
	return &NurseService{
		nurseRepo: nurseRepo,
		userRepo:  userRepo,
		auditRepo: auditRepo,
	}
}

// GetAllNurses retrieves all nurses with their assignments
func (s *NurseService) GetAllNurses() ([]models.Nurse, error) {
	return s.nurseRepo.GetAllNurses()
}

// GetNurseByID retrieves a single nurse
func (s *NurseService) GetNurseByID(id uint) (*models.Nurse, error) {
	return s.nurseRepo.GetNurseByID(id)
}

// CreateNurse creates a nurse record for an existing user account.
// The user's role is switched to nurse if it isn't already, matching the
// admin flow of creating the account first and the nurse second.
func (s *NurseService) CreateNurse(userID uint, licenseNumber, specialization string, adminID uint) (*models.Nurse, error) {
	user, err := s.userRepo.FindUserByID(userID)
	if err != nil {
		return nil, err
	}

	if user.Role != models.RoleNurse {
		user.Role = models.RoleNurse
		if err := s.userRepo.UpdateUser(user); err != nil {
			return nil, fmt.Errorf("failed to update user role: %w", err)
		}
	}

	nurse := &models.Nurse{
		UserID:         user.ID,
		LicenseNumber:  licenseNumber,
		Specialization: specialization,
	}
	if err := s.nurseRepo.CreateNurse(nurse); err != nil {
		return nil, fmt.Errorf("failed to create nurse: %w", err)
	}
	nurse.User = *user

	adminIDPtr := &adminID
	_ = s.auditRepo.CreateAuditLog(adminIDPtr, "nurse_create",
		fmt.Sprintf("Created nurse for user %s (ID: %d)", user.Username, nurse.ID))

	return nurse, nil
}

// UpdateNurse updates license and specialization
func (s *NurseService) UpdateNurse(id uint, licenseNumber, specialization string, adminID uint) (*models.Nurse, error) {
	nurse, err := s.nurseRepo.GetNurseByID(id)
	if err != nil {
		return nil, err
	}

	nurse.LicenseNumber = licenseNumber
	nurse.Specialization = specialization
	if err := s.nurseRepo.UpdateNurse(nurse); err != nil {
		return nil, fmt.Errorf("failed to update nurse: %w", err)
	}

	adminIDPtr := &adminID
	_ = s.auditRepo.CreateAuditLog(adminIDPtr, "nurse_update",
		fmt.Sprintf("Updated nurse (ID: %d)", nurse.ID))

	return nurse, nil
}

// AssignIslands replaces a nurse's island assignment set
func (s *NurseService) AssignIslands(nurseID uint, islandIDs []uint, adminID uint) (*models.Nurse, error) {
	nurse, err := s.nurseRepo.GetNurseByID(nurseID)
	if err != nil {
		return nil, err
	}

	islands, err := s.nurseRepo.GetIslandsByIDs(islandIDs)
	if err != nil {
		return nil, err
	}

	if err := s.nurseRepo.ReplaceAssignedIslands(nurse, islands); err != nil {
		return nil, fmt.Errorf("failed to assign islands: %w", err)
	}

	adminIDPtr := &adminID
	_ = s.auditRepo.CreateAuditLog(adminIDPtr, "nurse_assign_islands",
		fmt.Sprintf("Assigned %d islands to nurse %d", len(islands), nurse.ID))

	return s.nurseRepo.GetNurseByID(nurseID)
}

// AssignBeds replaces a nurse's direct bed assignment set. Direct bed
// assignments take priority over island assignments during resolution.
func (s *NurseService) AssignBeds(nurseID uint, bedIDs []uint, adminID uint) (*models.Nurse, error) {
	nurse, err := s.nurseRepo.GetNurseByID(nurseID)
	if err != nil {
		return nil, err
	}

	beds, err := s.nurseRepo.GetBedsByIDs(bedIDs)
	if err != nil {
		return nil, err
	}

	if err := s.nurseRepo.ReplaceAssignedBeds(nurse, beds); err != nil {
		return nil, fmt.Errorf("failed to assign beds: %w", err)
	}

	adminIDPtr := &adminID
	_ = s.auditRepo.CreateAuditLog(adminIDPtr, "nurse_assign_beds",
		fmt.Sprintf("Assigned %d beds to nurse %d", len(beds), nurse.ID))

	return s.nurseRepo.GetNurseByID(nurseID)
}
