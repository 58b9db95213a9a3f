package service

import (
	"fmt"

	"nurse-call-backend/internal/models"
	"nurse-call-backend/internal/repository"

	"github.com/google/uuid"
)

type BedService struct {
	bedRepo    *repository.BedRepository
	islandRepo *repository.IslandRepository
	auditRepo  *repository.AuditRepository
}

func NewBedService(
	bedRepo *repository.BedRepository,
	islandRepo *repository.IslandRepository,
	auditRepo *repository.AuditRepository,
) *BedService {
	return &BedService{
		bedRepo:    bedRepo,
		islandRepo: islandRepo,
		auditRepo:  auditRepo,
	}
}

// BedWithOccupant pairs a bed with its current patient for listings
type BedWithOccupant struct {
	models.Bed
	Patient *models.Patient `json:"patient,omitempty"`
}

// GetAllBeds retrieves all beds with their occupants
func (s *BedService) GetAllBeds() ([]BedWithOccupant, error) {
	beds, err := s.bedRepo.GetAllBeds()
	if err != nil {
		return nil, err
	}

	result := make([]BedWithOccupant, 0, len(beds))
	for _, bed := range beds {
		patient, err := s.bedRepo.GetCurrentPatient(bed.ID)
		if err != nil {
			return nil, err
		}
		result = append(result, BedWithOccupant{Bed: bed, Patient: patient})
	}
	return result, nil
}

// GetBedByID retrieves a bed with its occupant
func (s *BedService) GetBedByID(id uint) (*BedWithOccupant, error) {
	bed, err := s.bedRepo.GetBedByID(id)
	if err != nil {
		return nil, err
	}
	patient, err := s.bedRepo.GetCurrentPatient(id)
	if err != nil {
		return nil, err
	}
	return &BedWithOccupant{Bed: *bed, Patient: patient}, nil
}

// CreateBed creates a new bed in an island (admin only). Each bed gets a
// QR token for the public call page.
func (s *BedService) CreateBed(islandID uint, bedNumber string, userID uint) (*models.Bed, error) {
	island, err := s.islandRepo.GetIslandByID(islandID)
	if err != nil {
		return nil, err
	}

	bed := &models.Bed{
		BedNumber: bedNumber,
		IslandID:  island.ID,
		QRToken:   uuid.New().String(),
	}
	if err := s.bedRepo.CreateBed(bed); err != nil {
		return nil, fmt.Errorf("failed to create bed: %w", err)
	}
	bed.Island = *island

	userIDPtr := &userID
	_ = s.auditRepo.CreateAuditLog(userIDPtr, "bed_create",
		fmt.Sprintf("Created bed %s in island %s (ID: %d)", bed.BedNumber, island.Name, bed.ID))

	return bed, nil
}

// UpdateBed changes a bed's number or island (admin only)
func (s *BedService) UpdateBed(id uint, islandID uint, bedNumber string, userID uint) (*models.Bed, error) {
	bed, err := s.bedRepo.GetBedByID(id)
	if err != nil {
		return nil, err
	}

	if islandID != bed.IslandID {
		if _, err := s.islandRepo.GetIslandByID(islandID); err != nil {
			return nil, err
		}
		bed.IslandID = islandID
	}
	bed.BedNumber = bedNumber

	if err := s.bedRepo.UpdateBed(bed); err != nil {
		return nil, fmt.Errorf("failed to update bed: %w", err)
	}

	userIDPtr := &userID
	_ = s.auditRepo.CreateAuditLog(userIDPtr, "bed_update",
		fmt.Sprintf("Updated bed %s (ID: %d)", bed.BedNumber, bed.ID))

	return bed, nil
}

// DeleteBed removes a bed (admin only)
func (s *BedService) DeleteBed(id uint, userID uint) error {
	bed, err := s.bedRepo.GetBedByID(id)
	if err != nil {
		return err
	}

	if err := s.bedRepo.DeleteBed(id); err != nil {
		return fmt.Errorf("failed to delete bed: %w", err)
	}

	userIDPtr := &userID
	_ = s.auditRepo.CreateAuditLog(userIDPtr, "bed_delete",
		fmt.Sprintf("Deleted bed %s (ID: %d)", bed.BedNumber, id))

	return nil
}
