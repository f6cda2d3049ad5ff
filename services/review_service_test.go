package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/maojude27/FInal-project-itmajor/entity"
	"github.com/maojude27/FInal-project-itmajor/repository"
)

func newReviewService(db *gorm.DB) *ReviewService {
	return NewReviewService(repository.NewReviewRepository(db), repository.NewCatalogRepository(db))
}

func TestLeaveReviewTwiceUpdatesInPlace(t *testing.T) {
	db := newTestDB(t)
	svc := newReviewService(db)
	user := seedUser(t, db, "reviewer@example.com")
	item := seedItem(t, db, "Pad Thai", 120)

	first, err := svc.Leave(user.ID, item.ID, "Decent.")
	require.NoError(t, err)

	second, err := svc.Leave(user.ID, item.ID, "Actually great!")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Actually great!", second.Comment)

	var count int64
	require.NoError(t, db.Model(&entity.Review{}).
		Where("user_id = ? AND menu_item_id = ?", user.ID, item.ID).
		Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestReviewsIndependentAcrossUsers(t *testing.T) {
	db := newTestDB(t)
	svc := newReviewService(db)
	alice := seedUser(t, db, "alice@example.com")
	bob := seedUser(t, db, "bob@example.com")
	item := seedItem(t, db, "Ramen", 140)

	_, err := svc.Leave(alice.ID, item.ID, "Slurp.")
	require.NoError(t, err)
	_, err = svc.Leave(bob.ID, item.ID, "Too salty.")
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&entity.Review{}).Where("menu_item_id = ?", item.ID).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}

func TestLeaveReviewValidation(t *testing.T) {
	db := newTestDB(t)
	svc := newReviewService(db)
	user := seedUser(t, db, "strict@example.com")
	item := seedItem(t, db, "Sushi", 200)

	_, err := svc.Leave(user.ID, item.ID, "   ")
	require.ErrorIs(t, err, ErrCommentRequired)

	_, err = svc.Leave(user.ID, 987654, "No such dish")
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
