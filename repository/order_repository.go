package repository

import (
	"gorm.io/gorm"

	"github.com/maojude27/FInal-project-itmajor/entity"
)

type OrderRepository struct{ DB *gorm.DB }

func NewOrderRepository(db *gorm.DB) *OrderRepository { return &OrderRepository{DB: db} }

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) CreateDetail(tx *gorm.DB, d *entity.OrderDetail) error {
	return tx.Create(d).Error
}

func (r *OrderRepository) CreatePayment(tx *gorm.DB, p *entity.Payment) error {
	return tx.Create(p).Error
}

func (r *OrderRepository) CreateDelivery(tx *gorm.DB, d *entity.Delivery) error {
	return tx.Create(d).Error
}

// SetPaymentAndDelivery back-fills the order with the generated child
// ids. Two-phase because the children cannot exist before the order.
func (r *OrderRepository) SetPaymentAndDelivery(tx *gorm.DB, orderID, paymentID, deliveryID uint) error {
	return tx.Model(&entity.Order{}).Where("id = ?", orderID).
		Updates(map[string]any{"payment_id": paymentID, "delivery_id": deliveryID}).Error
}

func (r *OrderRepository) GetByID(id uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetForUser(userID, orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Where("id = ? AND user_id = ?", orderID, userID).First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) DetailsForOrder(orderID uint) ([]entity.OrderDetail, error) {
	var details []entity.OrderDetail
	err := r.DB.Where("order_id = ?", orderID).Find(&details).Error
	return details, err
}

func (r *OrderRepository) ListForUser(userID uint, limit int) ([]entity.Order, error) {
	var orders []entity.Order
	q := r.DB.Where("user_id = ?", userID).Order("order_date DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) ListAll() ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.Order("order_date DESC").Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) UpdateStatus(tx *gorm.DB, orderID uint, status string) error {
	return tx.Model(&entity.Order{}).Where("id = ?", orderID).
		Update("order_status", status).Error
}

// StatusCount aggregates orders by status for the admin overview.
type StatusCount struct {
	OrderStatus string `json:"orderStatus"`
	Count       int64  `json:"count"`
}

func (r *OrderRepository) CountByStatus() ([]StatusCount, error) {
	var rows []StatusCount
	err := r.DB.Model(&entity.Order{}).
		Select("order_status, COUNT(*) AS count").
		Group("order_status").
		Scan(&rows).Error
	return rows, err
}

func (r *OrderRepository) RevenueForStatus(status string) (int64, error) {
	var revenue int64
	err := r.DB.Model(&entity.Order{}).
		Where("order_status = ?", status).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&revenue).Error
	return revenue, err
}
