package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/maojude27/FInal-project-itmajor/entity"
	"github.com/maojude27/FInal-project-itmajor/pkg/resp"
	"github.com/maojude27/FInal-project-itmajor/services"
	"github.com/maojude27/FInal-project-itmajor/utils"
)

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name"`
	Contact  string `json:"contact"`
	Address  string `json:"address"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthController struct{ Svc *services.AuthService }

func NewAuthController(svc *services.AuthService) *AuthController {
	return &AuthController{Svc: svc}
}

// POST /register
func (a *AuthController) Register(c *gin.Context) {
	a.register(c, entity.RoleCustomer, "Registration successful! Please log in.")
}

// POST /admin-register
func (a *AuthController) AdminRegister(c *gin.Context) {
	a.register(c, entity.RoleAdmin, "Admin registered! You may now log in.")
}

func (a *AuthController) register(c *gin.Context, role, successMsg string) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, err := a.Svc.Register(req.Email, req.Password, req.Name, req.Contact, req.Address, role)
	if err != nil {
		switch {
		case errors.Is(err, utils.ErrWeakPassword),
			errors.Is(err, services.ErrEmailTaken),
			errors.Is(err, services.ErrPasswordInUse):
			resp.BadRequest(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"ok":      true,
		"message": successMsg,
		"user":    gin.H{"id": user.ID, "email": user.Email, "role": user.Role},
	})
}

// POST /login
func (a *AuthController) Login(c *gin.Context) {
	a.login(c, entity.RoleCustomer, "Login successful!")
}

// POST /admin-login
func (a *AuthController) AdminLogin(c *gin.Context) {
	a.login(c, entity.RoleAdmin, "Admin login successful.")
}

func (a *AuthController) login(c *gin.Context, role, successMsg string) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	token, user, err := a.Svc.Login(req.Email, req.Password, role)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			resp.Unauthorized(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":      true,
		"message": successMsg,
		"token":   token,
		"user": gin.H{
			"id": user.ID, "email": user.Email, "name": user.Name, "role": user.Role,
		},
	})
}

// GET /logout: the token lives client-side; nothing to clear here.
func (a *AuthController) Logout(c *gin.Context) {
	resp.Message(c, "You have been logged out.")
}
