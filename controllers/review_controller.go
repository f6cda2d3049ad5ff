package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/maojude27/FInal-project-itmajor/pkg/resp"
	"github.com/maojude27/FInal-project-itmajor/services"
	"github.com/maojude27/FInal-project-itmajor/utils"
)

type ReviewController struct{ Svc *services.ReviewService }

func NewReviewController(svc *services.ReviewService) *ReviewController {
	return &ReviewController{Svc: svc}
}

type LeaveReviewRequest struct {
	ItemID  uint   `json:"itemId" binding:"required"`
	Comment string `json:"comment" binding:"required"`
}

// POST /leave_review
func (h *ReviewController) Leave(c *gin.Context) {
	var req LeaveReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	h.leave(c, req.ItemID, req.Comment)
}

// POST /product/:id: the review form on the product page posts here.
func (h *ReviewController) LeaveForProduct(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid product id")
		return
	}
	var req struct {
		Comment string `json:"comment" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	h.leave(c, uint(id), req.Comment)
}

func (h *ReviewController) leave(c *gin.Context, itemID uint, comment string) {
	rev, err := h.Svc.Leave(utils.CurrentUserID(c), itemID, comment)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			resp.NotFound(c, "product not found")
		case errors.Is(err, services.ErrCommentRequired):
			resp.BadRequest(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true, "message": "Review saved.", "review": rev})
}
