package services

import (
	"errors"
	"strings"
	"time"

	"github.com/maojude27/FInal-project-itmajor/entity"
	"github.com/maojude27/FInal-project-itmajor/repository"
)

var ErrCommentRequired = errors.New("comment is required")

type ReviewService struct {
	Repo        *repository.ReviewRepository
	CatalogRepo *repository.CatalogRepository
}

func NewReviewService(repo *repository.ReviewRepository, catRepo *repository.CatalogRepository) *ReviewService {
	return &ReviewService{Repo: repo, CatalogRepo: catRepo}
}

// Leave records the caller's review of an item; a repeat submission
// replaces the earlier comment rather than adding a second row.
func (s *ReviewService) Leave(userID, itemID uint, comment string) (*entity.Review, error) {
	comment = strings.TrimSpace(comment)
	if comment == "" {
		return nil, ErrCommentRequired
	}

	if _, err := s.CatalogRepo.MenuItemByID(itemID); err != nil {
		return nil, err
	}

	rev := &entity.Review{
		UserID:     userID,
		MenuItemID: itemID,
		Comment:    comment,
		ReviewDate: time.Now(),
	}
	if err := s.Repo.Upsert(rev); err != nil {
		return nil, err
	}
	return s.Repo.FindForUserAndItem(userID, itemID)
}
