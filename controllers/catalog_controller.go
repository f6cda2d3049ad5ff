package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/maojude27/FInal-project-itmajor/pkg/resp"
	"github.com/maojude27/FInal-project-itmajor/services"
)

type CatalogController struct{ Svc *services.CatalogService }

func NewCatalogController(svc *services.CatalogService) *CatalogController {
	return &CatalogController{Svc: svc}
}

// GET /
func (h *CatalogController) Home(c *gin.Context) {
	page, err := h.Svc.Home()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, page)
}

// GET /about
func (h *CatalogController) About(c *gin.Context) {
	resp.OK(c, gin.H{
		"name":        "Food Ordering",
		"description": "Browse the menu, fill your cart and order from local restaurants.",
	})
}

// GET /product/:id: item detail with its reviews.
func (h *CatalogController) ProductDetail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid product id")
		return
	}

	page, err := h.Svc.ProductDetail(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "product not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, page)
}
