package controllers

import (
	"strconv"

	"backend/pkg/apperr"
	"backend/pkg/resp"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type DriverController struct {
	Svc *services.AssignmentService
}

func NewDriverController(svc *services.AssignmentService) *DriverController {
	return &DriverController{Svc: svc}
}

type UpdateAssignmentStatusReq struct {
	Status string `json:"status" binding:"required"`
}

// POST /driver/assignments/:id/status
func (h *DriverController) UpdateStatus(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, apperr.ErrUnauthenticated.Error())
		return
	}

	id64, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	if id64 == 0 {
		resp.BadRequest(c, apperr.ErrInvalidBody.Error())
		return
	}

	var req UpdateAssignmentStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, apperr.ErrInvalidBody.Error())
		return
	}

	if err := h.Svc.SetStatus(uid, uint(id64), req.Status); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"status": req.Status})
}

// GET /driver/assignments
func (h *DriverController) List(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, apperr.ErrUnauthenticated.Error())
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	items, err := h.Svc.ListForCaller(uid, limit)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"assignments": items})
}

// GET /driver/assignments/:id
func (h *DriverController) Detail(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, apperr.ErrUnauthenticated.Error())
		return
	}
	id64, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	if id64 == 0 {
		resp.BadRequest(c, apperr.ErrInvalidBody.Error())
		return
	}

	a, err := h.Svc.DetailForCaller(uid, uint(id64))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, a)
}

type AvailabilityReq struct {
	Available *bool `json:"available" binding:"required"`
}

// POST /driver/availability
func (h *DriverController) SetAvailability(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, apperr.ErrUnauthenticated.Error())
		return
	}

	var req AvailabilityReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, apperr.ErrInvalidBody.Error())
		return
	}

	if err := h.Svc.SetAvailability(uid, *req.Available); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"available": *req.Available})
}
