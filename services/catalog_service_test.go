package services

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/maojude27/FInal-project-itmajor/repository"
)

func newCatalogService(db *gorm.DB) *CatalogService {
	return NewCatalogService(repository.NewCatalogRepository(db), repository.NewReviewRepository(db), zerolog.Nop())
}

func TestAddCategoryRejectsDuplicate(t *testing.T) {
	db := newTestDB(t)
	svc := newCatalogService(db)

	_, err := svc.AddCategory("Desserts")
	require.NoError(t, err)

	_, err = svc.AddCategory("Desserts")
	require.ErrorIs(t, err, ErrCategoryExists)

	_, err = svc.AddCategory("   ")
	require.Error(t, err)
}

func TestHomeListsItemsWithNames(t *testing.T) {
	db := newTestDB(t)
	svc := newCatalogService(db)
	seedItem(t, db, "Pancakes", 65)

	page, err := svc.Home()
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Pancakes", page.Items[0].Name)
	assert.Equal(t, "Mains", page.Items[0].CategoryName)
	assert.Equal(t, "Testaurant", page.Items[0].RestaurantName)
}

func TestEditProductPartialUpdate(t *testing.T) {
	db := newTestDB(t)
	svc := newCatalogService(db)
	item := seedItem(t, db, "Old Name", 100)

	price := int64(150)
	updated, err := svc.EditProduct(item.ID, &ProductPatch{Price: &price})
	require.NoError(t, err)
	assert.Equal(t, int64(150), updated.Price)
	assert.Equal(t, "Old Name", updated.Name)

	name := "New Name"
	updated, err = svc.EditProduct(item.ID, &ProductPatch{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "New Name", updated.Name)
	assert.Equal(t, int64(150), updated.Price)

	_, err = svc.EditProduct(999999, &ProductPatch{Name: &name})
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestDeleteProductHidesListing(t *testing.T) {
	db := newTestDB(t)
	svc := newCatalogService(db)
	item := seedItem(t, db, "Ephemeral", 10)

	require.NoError(t, svc.DeleteProduct(item.ID))

	page, err := svc.Home()
	require.NoError(t, err)
	assert.Empty(t, page.Items)

	_, err = svc.ProductDetail(item.ID)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)

	require.ErrorIs(t, svc.DeleteProduct(item.ID), gorm.ErrRecordNotFound)
}

func TestProductDetailIncludesReviews(t *testing.T) {
	db := newTestDB(t)
	svc := newCatalogService(db)
	user := seedUser(t, db, "detail@example.com")
	item := seedItem(t, db, "Dumplings", 85)

	reviewSvc := newReviewService(db)
	_, err := reviewSvc.Leave(user.ID, item.ID, "Juicy.")
	require.NoError(t, err)

	page, err := svc.ProductDetail(item.ID)
	require.NoError(t, err)
	assert.Equal(t, "Dumplings", page.Item.Name)
	require.Len(t, page.Reviews, 1)
	assert.Equal(t, "Juicy.", page.Reviews[0].Comment)
	assert.Equal(t, "Test User", page.Reviews[0].UserName)
}
