package entity

import (
	"gorm.io/gorm"
)

type Restaurant struct {
	gorm.Model
	Name     string `json:"name"`
	Location string `json:"location"`
	Contact  string `json:"contact"`

	MenuItems []MenuItem `json:"-"`
}
