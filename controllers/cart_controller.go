package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/maojude27/FInal-project-itmajor/pkg/resp"
	"github.com/maojude27/FInal-project-itmajor/services"
	"github.com/maojude27/FInal-project-itmajor/utils"
)

type CartController struct{ Svc *services.CartService }

func NewCartController(svc *services.CartService) *CartController {
	return &CartController{Svc: svc}
}

type AddToCartRequest struct {
	ItemID   uint `json:"itemId" binding:"required"`
	Quantity int  `json:"quantity"`
}

// POST /add_to_cart
func (h *CartController) Add(c *gin.Context) {
	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := h.Svc.Add(utils.CurrentUserID(c), req.ItemID, req.Quantity); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "product not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.Message(c, "Item added to cart.")
}

// GET /cart (also aliased as GET /orders)
func (h *CartController) Get(c *gin.Context) {
	lines, productTotal, err := h.Svc.Get(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"lines": lines, "productTotal": productTotal})
}

// GET /cart/update_quantity/:id/:op  where op is add or reduce
func (h *CartController) UpdateQuantity(c *gin.Context) {
	lineID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid cart item id")
		return
	}

	uid := utils.CurrentUserID(c)
	switch c.Param("op") {
	case "add":
		err = h.Svc.Increment(uid, uint(lineID))
	case "reduce":
		err = h.Svc.Reduce(uid, uint(lineID))
	default:
		resp.BadRequest(c, "op must be add or reduce")
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Message(c, "Cart updated.")
}

// GET /cart/remove/:id
func (h *CartController) Remove(c *gin.Context) {
	lineID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid cart item id")
		return
	}

	if err := h.Svc.Remove(utils.CurrentUserID(c), uint(lineID)); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Message(c, "Item removed from cart.")
}
