package controllers

import (
	"errors"
	"net/http"

	"github.com/GermanChai/germanchai/pkg/resp"
	"github.com/GermanChai/germanchai/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type MenuController struct {
	Svc *services.MenuService
	QR  services.QRGenerator
}

func NewMenuController(s *services.MenuService, qr services.QRGenerator) *MenuController {
	return &MenuController{Svc: s, QR: qr}
}

// GET /menu?q=
func (h *MenuController) List(c *gin.Context) {
	groups, err := h.Svc.List(c.Query("q"))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if groups == nil {
		groups = []services.CategoryGroup{}
	}
	resp.OK(c, groups)
}

// GET /menu/:id
func (h *MenuController) Detail(c *gin.Context) {
	item, err := h.Svc.Get(parseUintParam(c, "id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "menu item not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, item)
}

// GET /menu/:id/image
func (h *MenuController) Image(c *gin.Context) {
	data, contentType, err := h.Svc.Image(parseUintParam(c, "id"))
	if err != nil || len(data) == 0 {
		resp.NotFound(c, "image not found")
		return
	}
	c.Data(http.StatusOK, contentType, data)
}

// GET /menu/:id/qr
func (h *MenuController) QRCode(c *gin.Context) {
	id := parseUintParam(c, "id")
	if _, err := h.Svc.Get(id); err != nil {
		resp.NotFound(c, "menu item not found")
		return
	}
	png, err := h.QR.Generate(id)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}
