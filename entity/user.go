package entity

import (
	"gorm.io/gorm"
)

const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

type User struct {
	gorm.Model
	Name     string `json:"name"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `json:"-"`
	Contact  string `json:"contact"`
	Address  string `json:"address"`
	Role     string `gorm:"not null;default:customer" json:"role"`

	ProfileImage string `gorm:"default:1.png" json:"profileImage"`

	// Relations, preloaded only when needed
	Orders        []Order        `json:"-"`
	Reviews       []Review       `json:"-"`
	Notifications []Notification `json:"-"`
}
