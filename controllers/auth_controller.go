package controllers

import (
	"backend/pkg/apperr"
	"backend/pkg/resp"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	Svc *services.AuthService
}

func NewAuthController(svc *services.AuthService) *AuthController {
	return &AuthController{Svc: svc}
}

// POST /auth/register
func (h *AuthController) Register(c *gin.Context) {
	var req services.RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, apperr.ErrInvalidBody.Error())
		return
	}
	out, err := h.Svc.Register(&req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, out)
}

// POST /auth/login
func (h *AuthController) Login(c *gin.Context) {
	var req services.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, apperr.ErrInvalidBody.Error())
		return
	}
	out, err := h.Svc.Login(&req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /auth/me
func (h *AuthController) Me(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, apperr.ErrUnauthenticated.Error())
		return
	}
	u, roles, err := h.Svc.Me(uid)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"user": u, "roles": roles})
}
