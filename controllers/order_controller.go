package controllers

import (
	"errors"

	"github.com/GermanChai/germanchai/pkg/resp"
	"github.com/GermanChai/germanchai/services"
	"github.com/GermanChai/germanchai/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type OrderController struct{ Svc *services.OrderService }

func NewOrderController(s *services.OrderService) *OrderController {
	return &OrderController{Svc: s}
}

// GET /orders
func (h *OrderController) List(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	orders, err := h.Svc.ListForUser(uid, 0)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, orders)
}

// GET /orders/:id
func (h *OrderController) Detail(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	order, err := h.Svc.DetailForUser(uid, parseUintParam(c, "id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "order not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, order)
}

// PATCH /orders/:id/cancel
func (h *OrderController) Cancel(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	err := h.Svc.Cancel(c.Request.Context(), uid, parseUintParam(c, "id"))
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			resp.NotFound(c, "order not found")
		case errors.Is(err, services.ErrNotCancellable), errors.Is(err, services.ErrCancelExpired):
			resp.Conflict(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.OK(c, gin.H{"cancelled": true})
}
