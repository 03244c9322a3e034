package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/GermanChai/germanchai/pkg/resp"
	"github.com/GermanChai/germanchai/services"
	"github.com/GermanChai/germanchai/utils"

	"github.com/gin-gonic/gin"
)

type CheckoutController struct{ Svc *services.CheckoutService }

func NewCheckoutController(s *services.CheckoutService) *CheckoutController {
	return &CheckoutController{Svc: s}
}

// POST /checkout
func (h *CheckoutController) Checkout(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	var req services.CheckoutReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	res, err := h.Svc.Checkout(c.Request.Context(), uid, &req)
	if err != nil {
		// precondition failures tell the client where to send the user
		switch {
		case errors.Is(err, services.ErrNotAuthenticated):
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": err.Error(), "redirect": "/login"})
		case errors.Is(err, services.ErrProfileIncomplete):
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error(), "redirect": "/profile"})
		case errors.Is(err, services.ErrAddressRequired), errors.Is(err, services.ErrCartEmpty):
			resp.BadRequest(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.Created(c, res)
}

// GET /checkout/slots
func (h *CheckoutController) Slots(c *gin.Context) {
	resp.OK(c, services.Slots(time.Now()))
}
