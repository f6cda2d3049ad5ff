package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/maojude27/FInal-project-itmajor/pkg/resp"
	"github.com/maojude27/FInal-project-itmajor/services"
	"github.com/maojude27/FInal-project-itmajor/utils"
)

type OrderController struct{ Svc *services.OrderService }

func NewOrderController(svc *services.OrderService) *OrderController {
	return &OrderController{Svc: svc}
}

// GET /checkout: the pre-checkout summary the checkout page shows.
func (h *OrderController) Checkout(c *gin.Context) {
	summary, err := h.Svc.Summary(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, summary)
}

// GET /order/:id: a single order with its line items, owner only.
func (h *OrderController) Detail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}
	detail, err := h.Svc.DetailForUser(utils.CurrentUserID(c), uint(id))
	if err != nil {
		resp.NotFound(c, "order not found")
		return
	}
	resp.OK(c, detail)
}

// POST /place_order (aliases: POST /checkout, GET /process_checkout)
func (h *OrderController) PlaceOrder(c *gin.Context) {
	res, err := h.Svc.PlaceOrder(utils.CurrentUserID(c))
	if err != nil {
		if errors.Is(err, services.ErrEmptyCart) {
			resp.BadRequest(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"ok":      true,
		"message": "Order placed successfully!",
		"order":   res,
	})
}
