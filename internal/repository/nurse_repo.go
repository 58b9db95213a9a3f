package repository

import (
	"errors"

	"nurse-call-backend/internal/apperrors"
	"nurse-call-backend/internal/models"

	"gorm.io/gorm"
)

type NurseRepository struct {
	db *gorm.DB
}

func NewNurseRepo(db *gorm.DB) *NurseRepository {
	return &NurseRepository{db: db}
}

// GetAllNurses retrieves all nurses with their users and assignments
func (r *NurseRepository) GetAllNurses() ([]models.Nurse, error) {
	var nurses []models.Nurse
	err := r.db.Preload("User").Preload("AssignedIslands").Preload("AssignedBeds").
		Order("id ASC").Find(&nurses).Error
	return nurses, err
}

// GetNurseByID retrieves a nurse by primary key
func (r *NurseRepository) GetNurseByID(id uint) (*models.Nurse, error) {
	var nurse models.Nurse
	err := r.db.Preload("User").Preload("AssignedIslands").Preload("AssignedBeds").
		First(&nurse, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNurseNotFound
		}
		return nil, err
	}
	return &nurse, nil
}

// GetNurseByUserID retrieves a nurse by the id of its underlying user account
func (r *NurseRepository) GetNurseByUserID(userID uint) (*models.Nurse, error) {
	var nurse models.Nurse
	err := r.db.Preload("User").Where("user_id = ?", userID).First(&nurse).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNurseNotFound
		}
		return nil, err
	}
	return &nurse, nil
}

// FindNurseByAssignedBed returns the nurse directly assigned to a bed.
// Ties are broken by lowest nurse id so resolution stays deterministic.
// Returns nil when no nurse has a direct assignment for the bed.
func (r *NurseRepository) FindNurseByAssignedBed(bedID uint) (*models.Nurse, error) {
	var nurse models.Nurse
	err := r.db.Preload("User").
		Joins("JOIN nurse_beds ON nurse_beds.nurse_id = nurses.id").
		Where("nurse_beds.bed_id = ?", bedID).
		Order("nurses.id ASC").
		First(&nurse).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &nurse, nil
}

// FindNurseByAssignedIsland returns the nurse assigned to an island, lowest
// nurse id first. Returns nil when the island has no linked nurse.
func (r *NurseRepository) FindNurseByAssignedIsland(islandID uint) (*models.Nurse, error) {
	var nurse models.Nurse
	err := r.db.Preload("User").
		Joins("JOIN nurse_islands ON nurse_islands.nurse_id = nurses.id").
		Where("nurse_islands.island_id = ?", islandID).
		Order("nurses.id ASC").
		First(&nurse).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &nurse, nil
}

// CreateNurse creates a new nurse
func (r *NurseRepository) CreateNurse(nurse *models.Nurse) error {
	return r.db.Create(nurse).Error
}

// UpdateNurse persists changes to an existing nurse
func (r *NurseRepository) UpdateNurse(nurse *models.Nurse) error {
	return r.db.Save(nurse).Error
}

// ReplaceAssignedIslands replaces the island assignment set of a nurse
func (r *NurseRepository) ReplaceAssignedIslands(nurse *models.Nurse, islands []models.Island) error {
	return r.db.Model(nurse).Association("AssignedIslands").Replace(islands)
}

// ReplaceAssignedBeds replaces the direct bed assignment set of a nurse
func (r *NurseRepository) ReplaceAssignedBeds(nurse *models.Nurse, beds []models.Bed) error {
	return r.db.Model(nurse).Association("AssignedBeds").Replace(beds)
}

// GetIslandsByIDs loads islands for an assignment request
func (r *NurseRepository) GetIslandsByIDs(ids []uint) ([]models.Island, error) {
	var islands []models.Island
	err := r.db.Find(&islands, ids).Error
	return islands, err
}

// GetBedsByIDs loads beds for an assignment request
func (r *NurseRepository) GetBedsByIDs(ids []uint) ([]models.Bed, error) {
	var beds []models.Bed
	err := r.db.Find(&beds, ids).Error
	return beds, err
}
