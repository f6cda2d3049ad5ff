package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/maojude27/FInal-project-itmajor/entity"
	"github.com/maojude27/FInal-project-itmajor/repository"
)

var (
	ErrEmptyCart     = errors.New("cart is empty")
	ErrStatusMissing = errors.New("order status is required")
)

// OrderService owns checkout: turning the cart into an order with its
// payment and delivery rows, and the admin status transitions.
type OrderService struct {
	DB          *gorm.DB
	Repo        *repository.OrderRepository
	CartRepo    *repository.CartRepository
	NotifRepo   *repository.NotificationRepository
	ShippingFee int64
	log         zerolog.Logger
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	cartRepo *repository.CartRepository,
	notifRepo *repository.NotificationRepository,
	shippingFee int64,
	log zerolog.Logger,
) *OrderService {
	return &OrderService{
		DB:          db,
		Repo:        repo,
		CartRepo:    cartRepo,
		NotifRepo:   notifRepo,
		ShippingFee: shippingFee,
		log:         log.With().Str("service", "order").Logger(),
	}
}

type CheckoutSummary struct {
	Lines        []repository.CartLine `json:"lines"`
	ProductTotal int64                 `json:"productTotal"`
	ShippingFee  int64                 `json:"shippingFee"`
	Total        int64                 `json:"total"`
}

func (s *OrderService) Summary(userID uint) (*CheckoutSummary, error) {
	lines, err := s.CartRepo.LinesWithItems(userID)
	if err != nil {
		return nil, err
	}
	var productTotal int64
	for _, l := range lines {
		productTotal += l.LineTotal
	}
	return &CheckoutSummary{
		Lines:        lines,
		ProductTotal: productTotal,
		ShippingFee:  s.ShippingFee,
		Total:        productTotal + s.ShippingFee,
	}, nil
}

type PlaceOrderRes struct {
	OrderID uint  `json:"orderId"`
	Total   int64 `json:"total"`
}

// PlaceOrder converts the user's cart into an order with its detail,
// delivery and payment rows and empties the cart, all or nothing.
// Subtotals are snapshots of the catalog price at this moment.
func (s *OrderService) PlaceOrder(userID uint) (*PlaceOrderRes, error) {
	lines, err := s.CartRepo.LinesWithItems(userID)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}

	var productTotal int64
	for _, l := range lines {
		productTotal += l.LineTotal
	}
	total := productTotal + s.ShippingFee
	now := time.Now()

	var out PlaceOrderRes
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		order := entity.Order{
			UserID:      userID,
			TotalAmount: total,
			OrderStatus: entity.OrderStatusPending,
			OrderDate:   now,
		}
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}

		for _, l := range lines {
			detail := entity.OrderDetail{
				OrderID:    order.ID,
				MenuItemID: l.MenuItemID,
				Quantity:   l.Quantity,
				Subtotal:   l.LineTotal,
			}
			if err := s.Repo.CreateDetail(tx, &detail); err != nil {
				return err
			}
		}

		delivery := entity.Delivery{
			OrderID:       order.ID,
			DriverName:    entity.DeliveryUnassigned,
			Status:        entity.DeliveryStatusPending,
			EstimatedTime: "45 mins",
		}
		if err := s.Repo.CreateDelivery(tx, &delivery); err != nil {
			return err
		}

		payment := entity.Payment{
			OrderID: order.ID,
			Amount:  total,
			Method:  entity.PaymentMethodCOD,
			Status:  entity.PaymentStatusPending,
			Date:    now,
		}
		if err := s.Repo.CreatePayment(tx, &payment); err != nil {
			return err
		}

		if err := s.Repo.SetPaymentAndDelivery(tx, order.ID, payment.ID, delivery.ID); err != nil {
			return err
		}

		if err := s.CartRepo.Clear(tx, userID); err != nil {
			return err
		}

		out = PlaceOrderRes{OrderID: order.ID, Total: order.TotalAmount}
		return nil
	})
	if err != nil {
		s.log.Error().Err(err).Uint("user_id", userID).Msg("place order failed")
		return nil, err
	}

	s.log.Info().Uint("user_id", userID).Uint("order_id", out.OrderID).
		Int64("total", out.Total).Int("items", len(lines)).Msg("order placed")
	return &out, nil
}

func (s *OrderService) ListForUser(userID uint, limit int) ([]entity.Order, error) {
	return s.Repo.ListForUser(userID, limit)
}

type OrderDetailOut struct {
	Order   *entity.Order        `json:"order"`
	Details []entity.OrderDetail `json:"details"`
}

func (s *OrderService) DetailForUser(userID, orderID uint) (*OrderDetailOut, error) {
	o, err := s.Repo.GetForUser(userID, orderID)
	if err != nil {
		return nil, err
	}
	details, err := s.Repo.DetailsForOrder(o.ID)
	if err != nil {
		return nil, err
	}
	return &OrderDetailOut{Order: o, Details: details}, nil
}

func (s *OrderService) ListAll() ([]entity.Order, error) {
	return s.Repo.ListAll()
}

// UpdateStatus sets an order's status. Any non-empty string is accepted,
// matching the admin form's free-text behavior; the owner gets a
// notification in the same transaction.
func (s *OrderService) UpdateStatus(orderID uint, status string) (*entity.Order, error) {
	status = strings.TrimSpace(status)
	if status == "" {
		return nil, ErrStatusMissing
	}

	order, err := s.Repo.GetByID(orderID)
	if err != nil {
		return nil, err
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.UpdateStatus(tx, order.ID, status); err != nil {
			return err
		}
		note := entity.Notification{
			UserID:  order.UserID,
			Message: fmt.Sprintf("Your order #%d is now %s", order.ID, status),
		}
		return s.NotifRepo.Create(tx, &note)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Uint("order_id", order.ID).Str("status", status).Msg("order status updated")
	return s.Repo.GetByID(orderID)
}
