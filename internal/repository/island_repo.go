package repository

import (
	"errors"

	"nurse-call-backend/internal/apperrors"
	"nurse-call-backend/internal/models"

	"gorm.io/gorm"
)

type IslandRepository struct {
	db *gorm.DB
}

func NewIslandRepo(db *gorm.DB) *IslandRepository {
	return &IslandRepository{db: db}
}

// GetAllIslands retrieves all islands ordered by name
func (r *IslandRepository) GetAllIslands() ([]models.Island, error) {
	var islands []models.Island
	err := r.db.Order("name ASC").Find(&islands).Error
	return islands, err
}

// GetIslandByID retrieves a single island
func (r *IslandRepository) GetIslandByID(id uint) (*models.Island, error) {
	var island models.Island
	err := r.db.First(&island, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrIslandNotFound
		}
		return nil, err
	}
	return &island, nil
}

// CreateIsland creates a new island
func (r *IslandRepository) CreateIsland(island *models.Island) error {
	return r.db.Create(island).Error
}

// UpdateIsland persists changes to an existing island
func (r *IslandRepository) UpdateIsland(island *models.Island) error {
	return r.db.Save(island).Error
}

// DeleteIsland removes an island
func (r *IslandRepository) DeleteIsland(id uint) error {
	return r.db.Delete(&models.Island{}, id).Error
}

// CountBeds returns the number of beds belonging to an island
func (r *IslandRepository) CountBeds(islandID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Bed{}).Where("island_id = ?", islandID).Count(&count).Error
	return count, err
}
