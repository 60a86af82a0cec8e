package controllers

import (
	"strconv"

	"backend/pkg/apperr"
	"backend/pkg/resp"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type GymController struct {
	Svc *services.GymService
}

func NewGymController(svc *services.GymService) *GymController {
	return &GymController{Svc: svc}
}

// GET /gyms/:gymId/classes (public)
func (h *GymController) Classes(c *gin.Context) {
	id64, _ := strconv.ParseUint(c.Param("gymId"), 10, 64)
	if id64 == 0 {
		resp.BadRequest(c, apperr.ErrInvalidBody.Error())
		return
	}
	classes, err := h.Svc.ListClasses(uint(id64))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"classes": classes})
}

// POST /gyms/:gymId/classes
func (h *GymController) CreateClass(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, apperr.ErrUnauthenticated.Error())
		return
	}
	id64, _ := strconv.ParseUint(c.Param("gymId"), 10, 64)
	if id64 == 0 {
		resp.BadRequest(c, apperr.ErrInvalidBody.Error())
		return
	}
	var req services.CreateClassReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, apperr.ErrInvalidBody.Error())
		return
	}

	class, err := h.Svc.CreateClass(uid, uint(id64), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, class)
}

// GET /gym/classes/:id/bookings
func (h *GymController) Bookings(c *gin.Context) {
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

	bookings, err := h.Svc.ListBookings(uid, uint(id64))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"bookings": bookings})
}

// POST /classes/:id/book
func (h *GymController) Book(c *gin.Context) {
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

	b, err := h.Svc.Book(uid, uint(id64))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, b)
}
