package entity

import (
	"time"
)

// CartItem is one pending line per (user, item). No soft delete: a removed
// line must free the unique index so the item can be re-added, and the
// ON CONFLICT upsert keys on that index.
type CartItem struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	UserID uint `gorm:"not null;uniqueIndex:idx_cart_user_item" json:"userId"`
	User   User `json:"-"`

	MenuItemID uint     `gorm:"not null;uniqueIndex:idx_cart_user_item" json:"menuItemId"`
	MenuItem   MenuItem `json:"-"`

	Quantity int `gorm:"not null" json:"quantity"`
}
