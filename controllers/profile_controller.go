package controllers

import (
	"errors"

	"github.com/GermanChai/germanchai/pkg/resp"
	"github.com/GermanChai/germanchai/services"
	"github.com/GermanChai/germanchai/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ProfileController struct{ Svc *services.ProfileService }

func NewProfileController(s *services.ProfileService) *ProfileController {
	return &ProfileController{Svc: s}
}

// GET /profile
func (h *ProfileController) Get(c *gin.Context) {
	p, err := h.Svc.Get(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, p)
}

// PUT /profile
func (h *ProfileController) Update(c *gin.Context) {
	var body struct {
		FullName string `json:"fullName" binding:"required"`
		Phone    string `json:"phone" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	p, err := h.Svc.Update(utils.CurrentUserID(c), body.FullName, body.Phone)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, p)
}

type AddressRequest struct {
	Label       string `json:"label"`
	AddressLine string `json:"addressLine" binding:"required"`
	City        string `json:"city"`
	Pincode     string `json:"pincode"`
}

// GET /profile/addresses
func (h *ProfileController) ListAddresses(c *gin.Context) {
	addrs, err := h.Svc.ListAddresses(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, addrs)
}

// POST /profile/addresses
func (h *ProfileController) AddAddress(c *gin.Context) {
	var body AddressRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	a, err := h.Svc.AddAddress(utils.CurrentUserID(c), body.Label, body.AddressLine, body.City, body.Pincode)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, a)
}

// PUT /profile/addresses/:id
func (h *ProfileController) UpdateAddress(c *gin.Context) {
	var body AddressRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	a, err := h.Svc.UpdateAddress(utils.CurrentUserID(c), parseUintParam(c, "id"),
		body.Label, body.AddressLine, body.City, body.Pincode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "address not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, a)
}

// DELETE /profile/addresses/:id
func (h *ProfileController) DeleteAddress(c *gin.Context) {
	if err := h.Svc.DeleteAddress(utils.CurrentUserID(c), parseUintParam(c, "id")); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}
