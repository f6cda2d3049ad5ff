package repository

import (
	"gorm.io/gorm"

	"github.com/maojude27/FInal-project-itmajor/entity"
)

type NotificationRepository struct{ DB *gorm.DB }

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{DB: db}
}

func (r *NotificationRepository) Create(tx *gorm.DB, n *entity.Notification) error {
	return tx.Create(n).Error
}

func (r *NotificationRepository) ListForUser(userID uint) ([]entity.Notification, error) {
	var notes []entity.Notification
	err := r.DB.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&notes).Error
	return notes, err
}
