package entity

import (
	"gorm.io/gorm"
)

const (
	DeliveryStatusPending = "Pending"
	DeliveryUnassigned    = "Unassigned"
)

type Delivery struct {
	gorm.Model
	OrderID uint  `json:"orderId"`
	Order   Order `json:"-"`

	DriverName    string `json:"driverName"`
	Status        string `json:"status"`
	EstimatedTime string `json:"estimatedTime"`
}
