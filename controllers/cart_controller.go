package controllers

import (
	"errors"

	"github.com/GermanChai/germanchai/pkg/resp"
	"github.com/GermanChai/germanchai/services"
	"github.com/GermanChai/germanchai/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CartController struct{ Svc *services.CartService }

func NewCartController(s *services.CartService) *CartController { return &CartController{Svc: s} }

// GET /cart
func (h *CartController) Get(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}

	cart, err := h.Svc.Get(c.Request.Context(), uid)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, cart)
}

// POST /cart/items
func (h *CartController) Add(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}

	var req struct {
		MenuItemID uint `json:"menuItemId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	cart, err := h.Svc.AddItem(c.Request.Context(), uid, req.MenuItemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "menu item not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, cart)
}

// PATCH /cart/items/qty
func (h *CartController) UpdateQty(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}

	var body struct {
		MenuItemID uint `json:"menuItemId" binding:"required"`
		Qty        int  `json:"qty"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	cart, err := h.Svc.UpdateQuantity(c.Request.Context(), uid, body.MenuItemID, body.Qty)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, cart)
}

// DELETE /cart/items/:id
func (h *CartController) RemoveItem(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}

	id := parseUintParam(c, "id")
	cart, err := h.Svc.RemoveItem(c.Request.Context(), uid, id)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, cart)
}

// DELETE /cart
func (h *CartController) Clear(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}

	if err := h.Svc.Clear(c.Request.Context(), uid); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"cleared": true})
}
