package entity

import (
	"time"

	"gorm.io/gorm"
)

const (
	OrderStatusPending   = "Pending"
	OrderStatusConfirmed = "Confirmed"
	OrderStatusCancelled = "Cancelled"
	OrderStatusDelivered = "Delivered"
)

type Order struct {
	gorm.Model
	TotalAmount int64     `json:"totalAmount"`
	OrderStatus string    `gorm:"not null;default:Pending" json:"orderStatus"`
	OrderDate   time.Time `json:"orderDate"`

	UserID uint `json:"userId"`
	User   User `json:"-"`

	// Filled in after the child rows exist (same transaction); plain
	// columns, as in the original schema, to avoid a circular FK with
	// payments/deliveries which already point back at the order.
	PaymentID  *uint `json:"paymentId"`
	DeliveryID *uint `json:"deliveryId"`

	Details []OrderDetail `json:"-"`
}

// OrderDetail snapshots one purchased line; later catalog price changes
// must not touch it.
type OrderDetail struct {
	gorm.Model
	OrderID uint  `json:"orderId"`
	Order   Order `json:"-"`

	MenuItemID uint     `json:"menuItemId"`
	MenuItem   MenuItem `json:"-"`

	Quantity int   `json:"quantity"`
	Subtotal int64 `json:"subtotal"`
}
