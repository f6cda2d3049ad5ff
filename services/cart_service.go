package services

import (
	"gorm.io/gorm"

	"github.com/maojude27/FInal-project-itmajor/entity"
	"github.com/maojude27/FInal-project-itmajor/repository"
)

type CartService struct {
	DB          *gorm.DB
	CartRepo    *repository.CartRepository
	CatalogRepo *repository.CatalogRepository
}

func NewCartService(db *gorm.DB, cr *repository.CartRepository, catRepo *repository.CatalogRepository) *CartService {
	return &CartService{DB: db, CartRepo: cr, CatalogRepo: catRepo}
}

// Add puts an item in the cart or bumps the existing line's quantity.
func (s *CartService) Add(userID, itemID uint, qty int) error {
	if qty <= 0 {
		qty = 1
	}

	// make sure the item exists before touching the cart
	if _, err := s.CatalogRepo.MenuItemByID(itemID); err != nil {
		return err
	}

	line := &entity.CartItem{UserID: userID, MenuItemID: itemID, Quantity: qty}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.Upsert(tx, line)
	})
}

func (s *CartService) Get(userID uint) ([]repository.CartLine, int64, error) {
	lines, err := s.CartRepo.LinesWithItems(userID)
	if err != nil {
		return nil, 0, err
	}
	var productTotal int64
	for _, l := range lines {
		productTotal += l.LineTotal
	}
	return lines, productTotal, nil
}

func (s *CartService) Increment(userID, lineID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.Increment(tx, userID, lineID)
	})
}

func (s *CartService) Reduce(userID, lineID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.Reduce(tx, userID, lineID)
	})
}

func (s *CartService) Remove(userID, lineID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.Remove(tx, userID, lineID)
	})
}
