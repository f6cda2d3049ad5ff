package repository

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/maojude27/FInal-project-itmajor/entity"
)

type CartRepository struct{ DB *gorm.DB }

func NewCartRepository(db *gorm.DB) *CartRepository { return &CartRepository{DB: db} }

// Upsert adds a line or bumps the existing one in a single statement.
// The ON CONFLICT on (user_id, menu_item_id) makes concurrent adds for
// the same pair merge instead of duplicating the row.
func (r *CartRepository) Upsert(tx *gorm.DB, line *entity.CartItem) error {
	return tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "menu_item_id"}},
		DoUpdates: clause.Assignments(map[string]any{
			"quantity": gorm.Expr("quantity + excluded.quantity"),
		}),
	}).Create(line).Error
}

// CartLine is a cart row joined with current catalog data.
type CartLine struct {
	CartItemID uint   `json:"cartItemId"`
	MenuItemID uint   `json:"menuItemId"`
	Name       string `json:"name"`
	Image      string `json:"image"`
	Quantity   int    `json:"quantity"`
	UnitPrice  int64  `json:"unitPrice"`
	LineTotal  int64  `json:"lineTotal"`
}

func (r *CartRepository) LinesWithItems(userID uint) ([]CartLine, error) {
	var lines []CartLine
	err := r.DB.Table("cart_items").
		Select(`cart_items.id AS cart_item_id, menu_items.id AS menu_item_id,
			menu_items.name, menu_items.image, cart_items.quantity,
			menu_items.price AS unit_price,
			cart_items.quantity * menu_items.price AS line_total`).
		Joins("JOIN menu_items ON menu_items.id = cart_items.menu_item_id").
		Where("cart_items.user_id = ? AND menu_items.deleted_at IS NULL", userID).
		Order("cart_items.id").
		Scan(&lines).Error
	return lines, err
}

func (r *CartRepository) Increment(tx *gorm.DB, userID, lineID uint) error {
	return tx.Model(&entity.CartItem{}).
		Where("id = ? AND user_id = ?", lineID, userID).
		UpdateColumn("quantity", gorm.Expr("quantity + 1")).Error
}

// Reduce floors at 1: a line at quantity 1 is left untouched; removal
// only ever happens through the explicit remove action.
func (r *CartRepository) Reduce(tx *gorm.DB, userID, lineID uint) error {
	return tx.Model(&entity.CartItem{}).
		Where("id = ? AND user_id = ? AND quantity > 1", lineID, userID).
		UpdateColumn("quantity", gorm.Expr("quantity - 1")).Error
}

func (r *CartRepository) Remove(tx *gorm.DB, userID, lineID uint) error {
	return tx.Where("id = ? AND user_id = ?", lineID, userID).
		Delete(&entity.CartItem{}).Error
}

func (r *CartRepository) Clear(tx *gorm.DB, userID uint) error {
	return tx.Where("user_id = ?", userID).Delete(&entity.CartItem{}).Error
}
