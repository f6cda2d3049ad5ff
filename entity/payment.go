package entity

import (
	"time"

	"gorm.io/gorm"
)

const (
	PaymentMethodCOD     = "COD"
	PaymentStatusPending = "Pending"
)

type Payment struct {
	gorm.Model
	OrderID uint  `json:"orderId"`
	Order   Order `json:"-"`

	Amount int64     `json:"amount"`
	Method string    `json:"method"`
	Status string    `json:"status"`
	Date   time.Time `json:"date"`
}
