package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/maojude27/FInal-project-itmajor/pkg/resp"
	"github.com/maojude27/FInal-project-itmajor/repository"
	"github.com/maojude27/FInal-project-itmajor/services"
	"github.com/maojude27/FInal-project-itmajor/utils"
)

type ProfileController struct {
	AuthSvc   *services.AuthService
	OrderSvc  *services.OrderService
	NotifRepo *repository.NotificationRepository
	UploadDir string
}

func NewProfileController(authSvc *services.AuthService, orderSvc *services.OrderService,
	notifRepo *repository.NotificationRepository, uploadDir string) *ProfileController {
	return &ProfileController{AuthSvc: authSvc, OrderSvc: orderSvc, NotifRepo: notifRepo, UploadDir: uploadDir}
}

// GET /dashboard: profile summary plus the user's order history.
func (p *ProfileController) Dashboard(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	user, err := p.AuthSvc.Profile(uid)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	orders, err := p.OrderSvc.ListForUser(uid, 20)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	resp.OK(c, gin.H{"user": user, "orders": orders})
}

// GET /profile
func (p *ProfileController) Get(c *gin.Context) {
	user, err := p.AuthSvc.Profile(utils.CurrentUserID(c))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "user not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, user)
}

// POST /profile: multipart form: any subset of name/email/contact/
// address/password plus an optional profile_image file.
func (p *ProfileController) Update(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	patch := &services.ProfilePatch{}
	if v, ok := c.GetPostForm("name"); ok {
		patch.Name = &v
	}
	if v, ok := c.GetPostForm("email"); ok {
		patch.Email = &v
	}
	if v, ok := c.GetPostForm("contact"); ok {
		patch.Contact = &v
	}
	if v, ok := c.GetPostForm("address"); ok {
		patch.Address = &v
	}
	if v, ok := c.GetPostForm("password"); ok && v != "" {
		patch.Password = &v
	}

	filename, err := utils.SaveUpload(c, "profile_image", p.UploadDir)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if filename != "" {
		patch.ProfileImage = &filename
	}

	user, err := p.AuthSvc.UpdateProfile(uid, patch)
	if err != nil {
		if errors.Is(err, utils.ErrWeakPassword) {
			resp.BadRequest(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}

	c.JSON(200, gin.H{"ok": true, "message": "Profile updated successfully!", "user": user})
}

// GET /notifications
func (p *ProfileController) Notifications(c *gin.Context) {
	notes, err := p.NotifRepo.ListForUser(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, notes)
}
