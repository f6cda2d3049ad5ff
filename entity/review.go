package entity

import (
	"time"
)

// Review is unique per (user, item); leaving a second review updates the
// first through the same ON CONFLICT path the cart uses, so no soft delete.
type Review struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	UserID uint `gorm:"not null;uniqueIndex:idx_review_user_item" json:"userId"`
	User   User `json:"-"`

	MenuItemID uint     `gorm:"not null;uniqueIndex:idx_review_user_item" json:"menuItemId"`
	MenuItem   MenuItem `json:"-"`

	Comment    string    `json:"comment"`
	ReviewDate time.Time `json:"reviewDate"`
}
