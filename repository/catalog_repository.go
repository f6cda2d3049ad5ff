package repository

import (
	"gorm.io/gorm"

	"github.com/maojude27/FInal-project-itmajor/entity"
)

type CatalogRepository struct{ DB *gorm.DB }

func NewCatalogRepository(db *gorm.DB) *CatalogRepository { return &CatalogRepository{DB: db} }

func (r *CatalogRepository) Categories() ([]entity.Category, error) {
	var cats []entity.Category
	err := r.DB.Find(&cats).Error
	return cats, err
}

func (r *CatalogRepository) CountCategoryByName(name string) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.Category{}).Where("name = ?", name).Count(&count).Error
	return count, err
}

func (r *CatalogRepository) CreateCategory(cat *entity.Category) error {
	return r.DB.Create(cat).Error
}

func (r *CatalogRepository) Restaurants() ([]entity.Restaurant, error) {
	var rests []entity.Restaurant
	err := r.DB.Find(&rests).Error
	return rests, err
}

func (r *CatalogRepository) CreateRestaurant(rest *entity.Restaurant) error {
	return r.DB.Create(rest).Error
}

// MenuListing is a menu item joined with its category and restaurant
// names, as the browsing pages show it.
type MenuListing struct {
	ID             uint   `json:"id"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	Price          int64  `json:"price"`
	Image          string `json:"image"`
	CategoryID     uint   `json:"categoryId"`
	CategoryName   string `json:"categoryName"`
	RestaurantID   uint   `json:"restaurantId"`
	RestaurantName string `json:"restaurantName"`
}

func (r *CatalogRepository) MenuListings() ([]MenuListing, error) {
	var rows []MenuListing
	err := r.DB.Table("menu_items").
		Select(`menu_items.id, menu_items.name, menu_items.description, menu_items.price,
			menu_items.image, menu_items.category_id, categories.name AS category_name,
			menu_items.restaurant_id, restaurants.name AS restaurant_name`).
		Joins("JOIN categories ON categories.id = menu_items.category_id").
		Joins("JOIN restaurants ON restaurants.id = menu_items.restaurant_id").
		Where("menu_items.deleted_at IS NULL").
		Scan(&rows).Error
	return rows, err
}

func (r *CatalogRepository) MenuItemByID(id uint) (*entity.MenuItem, error) {
	var item entity.MenuItem
	if err := r.DB.First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *CatalogRepository) MenuItems() ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	err := r.DB.Find(&items).Error
	return items, err
}

func (r *CatalogRepository) CreateMenuItem(item *entity.MenuItem) error {
	return r.DB.Create(item).Error
}

func (r *CatalogRepository) UpdateMenuItem(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.MenuItem{}).Where("id = ?", id).Updates(updates).Error
}

func (r *CatalogRepository) DeleteMenuItem(id uint) error {
	return r.DB.Delete(&entity.MenuItem{}, id).Error
}
