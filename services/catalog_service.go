package services

import (
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"github.com/maojude27/FInal-project-itmajor/entity"
	"github.com/maojude27/FInal-project-itmajor/repository"
)

var ErrCategoryExists = errors.New("category already exists")

// CatalogService backs both the public browsing pages and the admin
// product/category/restaurant management.
type CatalogService struct {
	Repo       *repository.CatalogRepository
	ReviewRepo *repository.ReviewRepository
	log        zerolog.Logger
}

func NewCatalogService(repo *repository.CatalogRepository, reviewRepo *repository.ReviewRepository, log zerolog.Logger) *CatalogService {
	return &CatalogService{
		Repo:       repo,
		ReviewRepo: reviewRepo,
		log:        log.With().Str("service", "catalog").Logger(),
	}
}

type HomePage struct {
	Categories []entity.Category        `json:"categories"`
	Items      []repository.MenuListing `json:"items"`
}

func (s *CatalogService) Home() (*HomePage, error) {
	cats, err := s.Repo.Categories()
	if err != nil {
		return nil, err
	}
	items, err := s.Repo.MenuListings()
	if err != nil {
		return nil, err
	}
	return &HomePage{Categories: cats, Items: items}, nil
}

type ProductPage struct {
	Item    *entity.MenuItem        `json:"item"`
	Reviews []repository.ItemReview `json:"reviews"`
}

func (s *CatalogService) ProductDetail(id uint) (*ProductPage, error) {
	item, err := s.Repo.MenuItemByID(id)
	if err != nil {
		return nil, err
	}
	reviews, err := s.ReviewRepo.ListForItem(id)
	if err != nil {
		return nil, err
	}
	return &ProductPage{Item: item, Reviews: reviews}, nil
}

// ----- admin side -----

type CreateProductIn struct {
	Name         string
	Description  string
	Price        int64
	CategoryID   uint
	RestaurantID uint
	Image        string
}

func (s *CatalogService) AddProduct(in *CreateProductIn) (*entity.MenuItem, error) {
	item := &entity.MenuItem{
		Name:         in.Name,
		Description:  in.Description,
		Price:        in.Price,
		CategoryID:   in.CategoryID,
		RestaurantID: in.RestaurantID,
		Image:        in.Image,
	}
	if err := s.Repo.CreateMenuItem(item); err != nil {
		return nil, err
	}
	s.log.Info().Uint("item_id", item.ID).Str("name", item.Name).Msg("product added")
	return item, nil
}

// ProductPatch mirrors ProfilePatch: one explicit optional field per
// updatable column.
type ProductPatch struct {
	Name         *string
	Description  *string
	Price        *int64
	CategoryID   *uint
	RestaurantID *uint
	Image        *string
}

func (s *CatalogService) EditProduct(id uint, patch *ProductPatch) (*entity.MenuItem, error) {
	if _, err := s.Repo.MenuItemByID(id); err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if patch.Name != nil {
		updates["name"] = *patch.Name
	}
	if patch.Description != nil {
		updates["description"] = *patch.Description
	}
	if patch.Price != nil {
		updates["price"] = *patch.Price
	}
	if patch.CategoryID != nil {
		updates["category_id"] = *patch.CategoryID
	}
	if patch.RestaurantID != nil {
		updates["restaurant_id"] = *patch.RestaurantID
	}
	if patch.Image != nil && *patch.Image != "" {
		updates["image"] = *patch.Image
	}

	if len(updates) > 0 {
		if err := s.Repo.UpdateMenuItem(id, updates); err != nil {
			return nil, err
		}
	}
	return s.Repo.MenuItemByID(id)
}

func (s *CatalogService) DeleteProduct(id uint) error {
	if _, err := s.Repo.MenuItemByID(id); err != nil {
		return err
	}
	return s.Repo.DeleteMenuItem(id)
}

func (s *CatalogService) AddCategory(name string) (*entity.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("category name is required")
	}
	count, err := s.Repo.CountCategoryByName(name)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrCategoryExists
	}
	cat := &entity.Category{Name: name}
	if err := s.Repo.CreateCategory(cat); err != nil {
		return nil, err
	}
	return cat, nil
}

func (s *CatalogService) AddRestaurant(name, location, contact string) (*entity.Restaurant, error) {
	rest := &entity.Restaurant{Name: name, Location: location, Contact: contact}
	if err := s.Repo.CreateRestaurant(rest); err != nil {
		return nil, err
	}
	return rest, nil
}
