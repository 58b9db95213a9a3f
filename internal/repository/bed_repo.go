package repository

import (
	"errors"

	"nurse-call-backend/internal/apperrors"
	"nurse-call-backend/internal/models"

	"gorm.io/gorm"
)

type BedRepository struct {
	db *gorm.DB
}

func NewBedRepo(db *gorm.DB) *BedRepository {
	return &BedRepository{db: db}
}

// GetAllBeds retrieves all beds with their islands
func (r *BedRepository) GetAllBeds() ([]models.Bed, error) {
	var beds []models.Bed
	err := r.db.Preload("Island").Order("island_id ASC, bed_number ASC").Find(&beds).Error
	return beds, err
}

// GetBedsByIslandID retrieves the beds of a single island
func (r *BedRepository) GetBedsByIslandID(islandID uint) ([]models.Bed, error) {
	var beds []models.Bed
	err := r.db.Where("island_id = ?", islandID).Order("bed_number ASC").Find(&beds).Error
	return beds, err
}

// GetBedByID retrieves a bed with its island
func (r *BedRepository) GetBedByID(id uint) (*models.Bed, error) {
	var bed models.Bed
	err := r.db.Preload("Island").First(&bed, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBedNotFound
		}
		return nil, err
	}
	return &bed, nil
}

// GetBedByQRToken retrieves a bed by its QR token
func (r *BedRepository) GetBedByQRToken(token string) (*models.Bed, error) {
	var bed models.Bed
	err := r.db.Preload("Island").Where("qr_token = ?", token).First(&bed).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBedNotFound
		}
		return nil, err
	}
	return &bed, nil
}

// GetCurrentPatient returns the patient occupying a bed, or nil when the bed
// is empty. The occupancy edge is stored on the patient side only.
func (r *BedRepository) GetCurrentPatient(bedID uint) (*models.Patient, error) {
	var patient models.Patient
	err := r.db.Preload("User").Where("bed_id = ?", bedID).First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &patient, nil
}

// CreateBed creates a new bed
func (r *BedRepository) CreateBed(bed *models.Bed) error {
	return r.db.Create(bed).Error
}

// UpdateBed persists changes to an existing bed
func (r *BedRepository) UpdateBed(bed *models.Bed) error {
	return r.db.Save(bed).Error
}

// DeleteBed removes a bed
func (r *BedRepository) DeleteBed(id uint) error {
	return r.db.Delete(&models.Bed{}, id).Error
}
