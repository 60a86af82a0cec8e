package controllers

import (
	"strconv"

	"backend/pkg/apperr"
	"backend/pkg/resp"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

// RestaurantController is the restaurant-facing menu surface.
type RestaurantController struct {
	Svc *services.RestaurantService
}

func NewRestaurantController(svc *services.RestaurantService) *RestaurantController {
	return &RestaurantController{Svc: svc}
}

// GET /restaurant/meals
func (h *RestaurantController) Meals(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, apperr.ErrUnauthenticated.Error())
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "200"))

	meals, err := h.Svc.ListMeals(uid, limit)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"meals": meals})
}

// POST /restaurant/meals
func (h *RestaurantController) CreateMeal(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, apperr.ErrUnauthenticated.Error())
		return
	}
	var req services.CreateMealReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, apperr.ErrInvalidBody.Error())
		return
	}

	m, err := h.Svc.CreateMeal(uid, &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, m)
}

// PATCH /restaurant/meals/:id
func (h *RestaurantController) UpdateMeal(c *gin.Context) {
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
	var req services.UpdateMealReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, apperr.ErrInvalidBody.Error())
		return
	}

	if err := h.Svc.UpdateMeal(uid, uint(id64), &req); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"id": id64})
}
