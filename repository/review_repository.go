package repository

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/maojude27/FInal-project-itmajor/entity"
)

type ReviewRepository struct{ DB *gorm.DB }

func NewReviewRepository(db *gorm.DB) *ReviewRepository { return &ReviewRepository{DB: db} }

// Upsert keeps one review per (user, item): a second submission updates
// the comment and date on the existing row.
func (r *ReviewRepository) Upsert(rev *entity.Review) error {
	return r.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "menu_item_id"}},
		DoUpdates: clause.Assignments(map[string]any{
			"comment":     rev.Comment,
			"review_date": rev.ReviewDate,
		}),
	}).Create(rev).Error
}

// ItemReview is a review joined with the reviewer's display name.
type ItemReview struct {
	ID         uint   `json:"id"`
	UserID     uint   `json:"userId"`
	UserName   string `json:"userName"`
	Comment    string `json:"comment"`
	ReviewDate string `json:"reviewDate"`
}

func (r *ReviewRepository) ListForItem(itemID uint) ([]ItemReview, error) {
	var rows []ItemReview
	err := r.DB.Table("reviews").
		Select("reviews.id, reviews.user_id, users.name AS user_name, reviews.comment, reviews.review_date").
		Joins("JOIN users ON users.id = reviews.user_id").
		Where("reviews.menu_item_id = ?", itemID).
		Order("reviews.review_date DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *ReviewRepository) FindForUserAndItem(userID, itemID uint) (*entity.Review, error) {
	var rev entity.Review
	if err := r.DB.Where("user_id = ? AND menu_item_id = ?", userID, itemID).First(&rev).Error; err != nil {
		return nil, err
	}
	return &rev, nil
}
