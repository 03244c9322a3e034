package controllers

import (
	"net/http"

	"github.com/GermanChai/germanchai/pkg/resp"
	"github.com/GermanChai/germanchai/services"
	"github.com/GermanChai/germanchai/utils"

	"github.com/gin-gonic/gin"
)

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthController struct{ Svc *services.AuthService }

func NewAuthController(s *services.AuthService) *AuthController { return &AuthController{Svc: s} }

// POST /auth/register
func (a *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, token, err := a.Svc.Register(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	resp.Created(c, gin.H{
		"token": token,
		"user":  gin.H{"id": user.ID, "email": user.Email, "role": user.Role},
	})
}

// POST /auth/login
func (a *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	token, user, err := a.Svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		resp.Unauthorized(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":    true,
		"token": token,
		"user":  gin.H{"id": user.ID, "email": user.Email, "role": user.Role},
	})
}

// POST /auth/logout (requires login)
func (a *AuthController) Logout(c *gin.Context) {
	a.Svc.Logout(c.Request.Context(), utils.CurrentUserID(c))
	resp.OK(c, gin.H{"loggedOut": true})
}

// GET /auth/me (requires login)
func (a *AuthController) Me(c *gin.Context) {
	user, err := a.Svc.GetUser(utils.CurrentUserID(c))
	if err != nil {
		resp.NotFound(c, "user not found")
		return
	}
	resp.OK(c, gin.H{"id": user.ID, "email": user.Email, "role": user.Role})
}
