package handler

import (
	"net/http"

	"github.com/ZulfikarHD/labelgen/internal/labelgen/service"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	svc *service.AuthService
}

func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

type loginRequest struct {
	NP       string `json:"np" binding:"required,max=5,alphanum"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	token, user, err := h.svc.Login(req.NP, req.Password)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, gin.H{"token": token, "user": user})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	jti := c.GetString("token_jti")
	if err := h.svc.Logout(c.Request.Context(), jti); err != nil {
		respondServiceError(c, err)
		return
	}
	respondMessage(c, "logged out")
}

func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.svc.CurrentUser(c.GetUint("user_id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, user)
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=6"`
}

func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req changePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.svc.ChangePassword(c.GetUint("user_id"), req.CurrentPassword, req.NewPassword); err != nil {
		respondServiceError(c, err)
		return
	}
	respondMessage(c, "password updated")
}
