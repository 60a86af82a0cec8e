package controllers

import (
	"strconv"

	"backend/pkg/apperr"
	"backend/pkg/resp"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type AdminController struct {
	Svc *services.AdminService
}

func NewAdminController(svc *services.AdminService) *AdminController {
	return &AdminController{Svc: svc}
}

// GET /admin/dashboard
func (h *AdminController) Dashboard(c *gin.Context) {
	stats, err := h.Svc.Dashboard(utils.CurrentUserID(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, stats)
}

// GET /admin/orders
func (h *AdminController) Orders(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
	items, err := h.Svc.ListOrders(utils.CurrentUserID(c), limit)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"orders": items})
}

// GET /admin/restaurants
func (h *AdminController) Restaurants(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "200"))
	items, err := h.Svc.ListRestaurants(utils.CurrentUserID(c), limit)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"restaurants": items})
}

// GET /admin/drivers
func (h *AdminController) Drivers(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
	items, err := h.Svc.ListDrivers(utils.CurrentUserID(c), limit)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"drivers": items})
}

// POST /admin/drivers
func (h *AdminController) CreateDriver(c *gin.Context) {
	var req services.CreateDriverReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, apperr.ErrInvalidBody.Error())
		return
	}
	d, err := h.Svc.CreateDriver(utils.CurrentUserID(c), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, d)
}

// PATCH /admin/drivers/:id
func (h *AdminController) UpdateDriver(c *gin.Context) {
	id64, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	if id64 == 0 {
		resp.BadRequest(c, apperr.ErrInvalidBody.Error())
		return
	}
	var req services.UpdateDriverReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, apperr.ErrInvalidBody.Error())
		return
	}
	if err := h.Svc.UpdateDriver(utils.CurrentUserID(c), uint(id64), &req); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"id": id64})
}

type AssignDriverReq struct {
	DriverID uint `json:"driverId" binding:"required"`
}

// POST /admin/orders/:id/assign-driver
func (h *AdminController) AssignDriver(c *gin.Context) {
	id64, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	if id64 == 0 {
		resp.BadRequest(c, apperr.ErrInvalidBody.Error())
		return
	}
	var req AssignDriverReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, apperr.ErrInvalidBody.Error())
		return
	}
	if err := h.Svc.AssignDriver(utils.CurrentUserID(c), uint(id64), req.DriverID); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"orderId": id64, "driverId": req.DriverID})
}
