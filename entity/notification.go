package entity

import (
	"gorm.io/gorm"
)

type Notification struct {
	gorm.Model
	UserID uint `json:"userId"`
	User   User `json:"-"`

	Message string `json:"message"`
}
