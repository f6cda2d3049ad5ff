package entity

import (
	"gorm.io/gorm"
)

type MenuItem struct {
	gorm.Model
	Name        string `gorm:"not null" json:"name"`
	Description string `gorm:"not null" json:"description"`
	Price       int64  `gorm:"not null" json:"price"`
	Image       string `json:"image"`

	CategoryID uint     `gorm:"not null" json:"categoryId"`
	Category   Category `json:"-"`

	RestaurantID uint       `gorm:"not null" json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	Reviews      []Review      `json:"-"`
	OrderDetails []OrderDetail `json:"-"`
}
