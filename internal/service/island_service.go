package service

import (
	"fmt"

	"nurse-call-backend/internal/apperrors"
	"nurse-call-backend/internal/models"
	"nurse-call-backend/internal/repository"
)

type IslandService struct {
	islandRepo *repository.IslandRepository
	auditRepo  *repository.AuditRepository
}

func NewIslandService(islandRepo *repository.IslandRepository, auditRepo *repository.AuditRepository) *IslandService {
	return &IslandService{
		islandRepo: islandRepo,
		auditRepo:  auditRepo,
	}
}

// GetAllIslands retrieves all islands
func (s *IslandService) GetAllIslands() ([]models.Island, error) {
	return s.islandRepo.GetAllIslands()
}

// GetIslandByID retrieves a single island
func (s *IslandService) GetIslandByID(id uint) (*models.Island, error) {
	return s.islandRepo.GetIslandByID(id)
}

// CreateIsland creates a new island (admin only)
func (s *IslandService) CreateIsland(island *models.Island, userID uint) error {
	if err := s.islandRepo.CreateIsland(island); err != nil {
		return fmt.Errorf("failed to create island: %w", err)
	}

	userIDPtr := &userID
	_ = s.auditRepo.CreateAuditLog(userIDPtr, "island_create",
		fmt.Sprintf("Created island: %s (ID: %d)", island.Name, island.ID))

	return nil
}

// UpdateIsland updates an existing island (admin only)
func (s *IslandService) UpdateIsland(id uint, name, description string, userID uint) (*models.Island, error) {
	island, err := s.islandRepo.GetIslandByID(id)
	if err != nil {
		return nil, err
	}

	island.Name = name
	island.Description = description
	if err := s.islandRepo.UpdateIsland(island); err != nil {
		return nil, fmt.Errorf("failed to update island: %w", err)
	}

	userIDPtr := &userID
	_ = s.auditRepo.CreateAuditLog(userIDPtr, "island_update",
		fmt.Sprintf("Updated island: %s (ID: %d)", island.Name, island.ID))

	return island, nil
}

// DeleteIsland removes an island; islands that still hold beds are kept
func (s *IslandService) DeleteIsland(id uint, userID uint) error {
	island, err := s.islandRepo.GetIslandByID(id)
	if err != nil {
		return err
	}

	beds, err := s.islandRepo.CountBeds(id)
	if err != nil {
		return err
	}
	if beds > 0 {
		return apperrors.ErrIslandNotEmpty
	}

	if err := s.islandRepo.DeleteIsland(id); err != nil {
		return fmt.Errorf("failed to delete island: %w", err)
	}

	userIDPtr := &userID
	_ = s.auditRepo.CreateAuditLog(userIDPtr, "island_delete",
		fmt.Sprintf("Deleted island: %s (ID: %d)", island.Name, id))

	return nil
}
