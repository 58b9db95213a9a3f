package repository

import (
	"errors"
	"time"

	"nurse-call-backend/internal/apperrors"
	"nurse-call-backend/internal/models"

	"gorm.io/gorm"
)

// CallRepository persists call records and answers the cooldown and
// active-list queries of the call lifecycle.
type CallRepository struct {
	db *gorm.DB
}

func NewCallRepo(db *gorm.DB) *CallRepository {
	return &CallRepository{db: db}
}

// CreateCall persists a new call record
func (r *CallRepository) CreateCall(call *models.Call) error {
	return r.db.Create(call).Error
}

// GetCallByID retrieves a call with bed, patient and nurse loaded
func (r *CallRepository) GetCallByID(id uint) (*models.Call, error) {
	var call models.Call
	err := r.db.Preload("Bed.Island").Preload("Patient.User").Preload("Nurse.User").
		First(&call, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCallNotFound
		}
		return nil, err
	}
	return &call, nil
}

// GetLatestActiveCallForBed returns the most recent ACTIVE call for a bed,
// or nil when the bed has none. Used for the cooldown check.
func (r *CallRepository) GetLatestActiveCallForBed(bedID uint) (*models.Call, error) {
	var call models.Call
	err := r.db.Where("bed_id = ? AND status = ?", bedID, models.CallStatusActive).
		Order("created_at DESC").
		First(&call).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &call, nil
}

// GetActiveCallsForNurse returns the ACTIVE, unexpired calls routed to a
// nurse, newest first. Calls past their expiry are filtered out even if the
// sweep has not reached them yet.
func (r *CallRepository) GetActiveCallsForNurse(nurseID uint, now time.Time) ([]models.Call, error) {
	var calls []models.Call
	err := r.db.Preload("Bed.Island").Preload("Patient.User").
		Where("nurse_id = ? AND status = ? AND expires_at > ?", nurseID, models.CallStatusActive, now).
		Order("created_at DESC").
		Find(&calls).Error
	return calls, err
}

// AcknowledgeActiveCall flips an ACTIVE call to ACKNOWLEDGED. The condition
// on status makes the transition atomic; the returned flag reports whether
// the call was actually in ACTIVE state.
func (r *CallRepository) AcknowledgeActiveCall(callID uint) (bool, error) {
	result := r.db.Model(&models.Call{}).
		Where("id = ? AND status = ?", callID, models.CallStatusActive).
		Update("status", models.CallStatusAcknowledged)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// ExpireOverdueCalls transitions every ACTIVE call past its expiry to
// EXPIRED and returns how many rows changed.
func (r *CallRepository) ExpireOverdueCalls(now time.Time) (int64, error) {
	result := r.db.Model(&models.Call{}).
		Where("status = ? AND expires_at <= ?", models.CallStatusActive, now).
		Update("status", models.CallStatusExpired)
	return result.RowsAffected, result.Error
}
