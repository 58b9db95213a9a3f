package repository

import (
	"nurse-call-backend/internal/models"

	"gorm.io/gorm"
)

type PushSubscriptionRepository struct {
	db *gorm.DB
}

func NewPushSubscriptionRepo(db *gorm.DB) *PushSubscriptionRepository {
	return &PushSubscriptionRepository{db: db}
}

// CreateSubscription stores a new push endpoint for a nurse
func (r *PushSubscriptionRepository) CreateSubscription(sub *models.PushSubscription) error {
	return r.db.Create(sub).Error
}

// GetSubscriptionsForNurse returns every push endpoint registered to a nurse
func (r *PushSubscriptionRepository) GetSubscriptionsForNurse(nurseID uint) ([]models.PushSubscription, error) {
	var subs []models.PushSubscription
	err := r.db.Where("nurse_id = ?", nurseID).Find(&subs).Error
	return subs, err
}

// DeleteSubscription removes a push endpoint, typically after the push
// service reports it gone
func (r *PushSubscriptionRepository) DeleteSubscription(id uint) error {
	return r.db.Delete(&models.PushSubscription{}, id).Error
}
