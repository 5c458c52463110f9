package handler

import (
	"net/http"

	"github.com/redromiee/bag-tracker/internal/dto"
	"github.com/redromiee/bag-tracker/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct{ svc service.AuthService }

func NewAuthHandler(svc service.AuthService) *AuthHandler { return &AuthHandler{svc: svc} }

func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.Register(c.Request.Context(), req); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "registration received, awaiting admin approval",
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Login(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) VerifyToken(c *gin.Context) {
	var req dto.TokenRequest
	if !bindAndValidate(c, &req) {
		return
	}
	user, err := h.svc.VerifyToken(req.Token)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "user": user})
}

func (h *AuthHandler) CheckApproval(c *gin.Context) {
	var req dto.TokenRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CheckApproval(c.Request.Context(), req.Token)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
