package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/maojude27/FInal-project-itmajor/configs"
	"github.com/maojude27/FInal-project-itmajor/entity"
	"github.com/maojude27/FInal-project-itmajor/pkg/resp"
	"github.com/maojude27/FInal-project-itmajor/services"
	"github.com/maojude27/FInal-project-itmajor/utils"
)

type AdminController struct {
	DB         *gorm.DB
	CatalogSvc *services.CatalogService
	OrderSvc   *services.OrderService
	UploadDir  string
}

func NewAdminController(db *gorm.DB, catalogSvc *services.CatalogService,
	orderSvc *services.OrderService, uploadDir string) *AdminController {
	return &AdminController{DB: db, CatalogSvc: catalogSvc, OrderSvc: orderSvc, UploadDir: uploadDir}
}

// GET /admin/dashboard: entity counts.
func (h *AdminController) Dashboard(c *gin.Context) {
	counts := gin.H{}
	for name, model := range map[string]any{
		"users":       &entity.User{},
		"restaurants": &entity.Restaurant{},
		"categories":  &entity.Category{},
		"products":    &entity.MenuItem{},
		"orders":      &entity.Order{},
		"reviews":     &entity.Review{},
	} {
		var n int64
		if err := h.DB.Model(model).Count(&n).Error; err != nil {
			resp.ServerError(c, err)
			return
		}
		counts[name] = n
	}
	resp.OK(c, counts)
}

// GET /admin/overview: order-status summary and delivered revenue.
func (h *AdminController) Overview(c *gin.Context) {
	statusCounts, err := h.OrderSvc.Repo.CountByStatus()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	revenue, err := h.OrderSvc.Repo.RevenueForStatus(entity.OrderStatusDelivered)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"orderSummary": statusCounts, "totalRevenue": revenue})
}

// GET /admin/manage: products and orders side by side, as the manage
// page showed them.
func (h *AdminController) Manage(c *gin.Context) {
	products, err := h.CatalogSvc.Repo.MenuItems()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	orders, err := h.OrderSvc.ListAll()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"products": products, "orders": orders})
}

// GET /admin/products
func (h *AdminController) Products(c *gin.Context) {
	products, err := h.CatalogSvc.Repo.MenuListings()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, products)
}

// GET /admin/add_product: the reference data the form needs.
func (h *AdminController) AddProductForm(c *gin.Context) {
	h.productFormData(c, nil)
}

func (h *AdminController) productFormData(c *gin.Context, product *entity.MenuItem) {
	categories, err := h.CatalogSvc.Repo.Categories()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	restaurants, err := h.CatalogSvc.Repo.Restaurants()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	data := gin.H{"categories": categories, "restaurants": restaurants}
	if product != nil {
		data["product"] = product
	}
	resp.OK(c, data)
}

// POST /admin/add_product: multipart form with an optional image.
func (h *AdminController) AddProduct(c *gin.Context) {
	price, err := strconv.ParseInt(c.PostForm("price"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid price")
		return
	}
	categoryID, err := strconv.ParseUint(c.PostForm("category_id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid category id")
		return
	}
	restaurantID, err := strconv.ParseUint(c.PostForm("restaurant_id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid restaurant id")
		return
	}
	name := c.PostForm("name")
	if name == "" {
		resp.BadRequest(c, "name is required")
		return
	}

	image, err := utils.SaveUpload(c, "image", h.UploadDir)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	item, err := h.CatalogSvc.AddProduct(&services.CreateProductIn{
		Name:         name,
		Description:  c.PostForm("description"),
		Price:        price,
		CategoryID:   uint(categoryID),
		RestaurantID: uint(restaurantID),
		Image:        image,
	})
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true, "message": "Product added successfully!", "product": item})
}

// GET /admin/edit_product/:id
func (h *AdminController) EditProductForm(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid product id")
		return
	}
	product, err := h.CatalogSvc.Repo.MenuItemByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "product not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	h.productFormData(c, product)
}

// POST /admin/edit_product/:id: any subset of the product fields.
func (h *AdminController) EditProduct(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid product id")
		return
	}

	patch := &services.ProductPatch{}
	if v, ok := c.GetPostForm("name"); ok {
		patch.Name = &v
	}
	if v, ok := c.GetPostForm("description"); ok {
		patch.Description = &v
	}
	if v, ok := c.GetPostForm("price"); ok {
		price, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			resp.BadRequest(c, "invalid price")
			return
		}
		patch.Price = &price
	}
	if v, ok := c.GetPostForm("category_id"); ok {
		n, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			resp.BadRequest(c, "invalid category id")
			return
		}
		cid := uint(n)
		patch.CategoryID = &cid
	}
	if v, ok := c.GetPostForm("restaurant_id"); ok {
		n, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			resp.BadRequest(c, "invalid restaurant id")
			return
		}
		rid := uint(n)
		patch.RestaurantID = &rid
	}

	image, err := utils.SaveUpload(c, "image", h.UploadDir)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if image != "" {
		patch.Image = &image
	}

	item, err := h.CatalogSvc.EditProduct(uint(id), patch)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "product not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "message": "Product updated.", "product": item})
}

// GET /admin/delete_product/:id
func (h *AdminController) DeleteProduct(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid product id")
		return
	}
	if err := h.CatalogSvc.DeleteProduct(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "product not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.Message(c, "Product deleted successfully.")
}

type AddCategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

// POST /admin/add_category
func (h *AdminController) AddCategory(c *gin.Context) {
	var req AddCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	cat, err := h.CatalogSvc.AddCategory(req.Name)
	if err != nil {
		if errors.Is(err, services.ErrCategoryExists) {
			resp.BadRequest(c, err.Error())
			return
		}
		resp.BadRequest(c, err.Error())
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true, "message": "Category added successfully!", "category": cat})
}

type AddRestaurantRequest struct {
	Name     string `json:"name" binding:"required"`
	Location string `json:"location"`
	Contact  string `json:"contact"`
}

// POST /admin/add_restaurant
func (h *AdminController) AddRestaurant(c *gin.Context) {
	var req AddRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	rest, err := h.CatalogSvc.AddRestaurant(req.Name, req.Location, req.Contact)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true, "message": "Restaurant added successfully!", "restaurant": rest})
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// POST /admin/update_order_status/:id: any non-empty status string is
// accepted, as the free-text admin form allowed.
func (h *AdminController) UpdateOrderStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}

	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := h.OrderSvc.UpdateStatus(uint(id), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			resp.NotFound(c, "order not found")
		case errors.Is(err, services.ErrStatusMissing):
			resp.BadRequest(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "message": "Order status updated.", "order": order})
}

// GET /initdb: idempotent migrate + seed; admin only.
func (h *AdminController) InitDB(c *gin.Context) {
	if err := configs.SetupDatabase(); err != nil {
		resp.ServerError(c, err)
		return
	}
	if err := configs.SeedAdmin(); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Message(c, "All tables created successfully!")
}
