package controllers

import (
	"strconv"

	"backend/pkg/apperr"
	"backend/pkg/resp"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

// OrderController is the restaurant-facing order surface.
type OrderController struct {
	Svc *services.OrderService
}

func NewOrderController(svc *services.OrderService) *OrderController {
	return &OrderController{Svc: svc}
}

type UpdateOrderStatusReq struct {
	Status string `json:"status" binding:"required"`
}

// POST /restaurant/orders/:id/status
func (h *OrderController) UpdateStatus(c *gin.Context) {
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

	var req UpdateOrderStatusReq
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

// GET /restaurant/orders
func (h *OrderController) List(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, apperr.ErrUnauthenticated.Error())
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	items, err := h.Svc.ListForOperator(uid, limit)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"orders": items})
}

// GET /restaurant/orders/:id
func (h *OrderController) Detail(c *gin.Context) {
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

	out, err := h.Svc.DetailForOperator(uid, uint(id64))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, out)
}
