package controllers

import (
	"errors"

	"github.com/GermanChai/germanchai/entity"
	"github.com/GermanChai/germanchai/pkg/resp"
	"github.com/GermanChai/germanchai/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AdminController owns the menu-management and order-management surface.
// Routes are mounted behind the admin role check.
type AdminController struct {
	Menu   *services.MenuService
	Orders *services.OrderService
}

func NewAdminController(menu *services.MenuService, orders *services.OrderService) *AdminController {
	return &AdminController{Menu: menu, Orders: orders}
}

type MenuItemRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Category    string `json:"category" binding:"required"`
	Price       int64  `json:"price" binding:"min=0"`
	Available   *bool  `json:"available"`
}

// POST /admin/menu
func (h *AdminController) CreateMenuItem(c *gin.Context) {
	var req MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	item := entity.MenuItem{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Price:       req.Price,
		Available:   true,
	}
	if req.Available != nil {
		item.Available = *req.Available
	}
	if err := h.Menu.Create(&item); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, item)
}

// PATCH /admin/menu/:id
func (h *AdminController) UpdateMenuItem(c *gin.Context) {
	item, err := h.Menu.Get(parseUintParam(c, "id"))
	if err != nil {
		resp.NotFound(c, "menu item not found")
		return
	}

	var req MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	item.Name = req.Name
	item.Description = req.Description
	item.Category = req.Category
	item.Price = req.Price
	if req.Available != nil {
		item.Available = *req.Available
	}
	if err := h.Menu.Update(item); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, item)
}

// DELETE /admin/menu/:id
func (h *AdminController) DeleteMenuItem(c *gin.Context) {
	if err := h.Menu.Delete(parseUintParam(c, "id")); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}

// PATCH /admin/menu/:id/availability
func (h *AdminController) SetAvailability(c *gin.Context) {
	var body struct {
		Available bool `json:"available"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Menu.SetAvailability(parseUintParam(c, "id"), body.Available); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"available": body.Available})
}

// POST /admin/menu/:id/image
func (h *AdminController) UploadImage(c *gin.Context) {
	var body struct {
		Image string `json:"image" binding:"required"` // data:image/... base64
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	url, err := h.Menu.UploadImage(parseUintParam(c, "id"), body.Image)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "menu item not found")
			return
		}
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, gin.H{"imageUrl": url})
}

// GET /admin/orders
func (h *AdminController) ListOrders(c *gin.Context) {
	orders, err := h.Orders.ListAll(0)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, orders)
}

// PATCH /admin/orders/:id/status
func (h *AdminController) SetOrderStatus(c *gin.Context) {
	var body struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	err := h.Orders.SetStatus(c.Request.Context(), parseUintParam(c, "id"), body.Status)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			resp.NotFound(c, "order not found")
		case errors.Is(err, services.ErrInvalidStatus):
			resp.BadRequest(c, err.Error())
		case errors.Is(err, services.ErrTerminalStatus), errors.Is(err, services.ErrStatusConflict):
			resp.Conflict(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.OK(c, gin.H{"status": body.Status})
}
