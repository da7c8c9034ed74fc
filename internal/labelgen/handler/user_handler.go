package handler

import (
	"net/http"
	"strconv"

	"github.com/ZulfikarHD/labelgen/internal/labelgen/repository"
	"github.com/ZulfikarHD/labelgen/internal/labelgen/service"
	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	svc  *service.UserService
	auth *service.AuthService
}

func NewUserHandler(svc *service.UserService, auth *service.AuthService) *UserHandler {
	return &UserHandler{svc: svc, auth: auth}
}

func (h *UserHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "15"))
	params := repository.UserListParams{
		Search: c.Query("search"),
		Role:   c.Query("role"),
		Status: c.Query("status"),
		Page:   page,
		Size:   size,
	}
	users, total, err := h.svc.List(params)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, gin.H{"items": users, "total": total, "page": page, "size": size})
}

func (h *UserHandler) Get(c *gin.Context) {
	id, err := paramID(c)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid id")
		return
	}
	user, err := h.svc.Get(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, user)
}

func (h *UserHandler) Create(c *gin.Context) {
	var req service.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	user, err := h.svc.Create(req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondCreated(c, user)
}

func (h *UserHandler) Update(c *gin.Context) {
	id, err := paramID(c)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid id")
		return
	}
	var req service.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	user, err := h.svc.Update(id, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, user)
}

func (h *UserHandler) Delete(c *gin.Context) {
	id, err := paramID(c)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid id")
		return
	}
	if err := h.svc.Delete(id, c.GetUint("user_id")); err != nil {
		respondServiceError(c, err)
		return
	}
	respondMessage(c, "user deleted")
}

type resetPasswordRequest struct {
	NewPassword string `json:"new_password" binding:"omitempty,min=6"`
	UseDefault  bool   `json:"use_default"`
}

// ResetPassword sets a user's password without the current-password
// check. With use_default the issued password becomes Peruri+NP again.
func (h *UserHandler) ResetPassword(c *gin.Context) {
	id, err := paramID(c)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid id")
		return
	}
	var req resetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	password := req.NewPassword
	if req.UseDefault {
		user, err := h.svc.Get(id)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		password = service.DefaultPassword(user.NP)
	}
	if password == "" {
		respondError(c, http.StatusBadRequest, "new_password or use_default required")
		return
	}
	if err := h.auth.SetPassword(id, password); err != nil {
		respondServiceError(c, err)
		return
	}
	respondMessage(c, "password reset")
}

// InspectedLabels lists every label the user has worked as inspector.
func (h *UserHandler) InspectedLabels(c *gin.Context) {
	id, err := paramID(c)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid id")
		return
	}
	user, err := h.svc.Get(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	labels, err := h.svc.InspectedLabels(user.NP)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, gin.H{"user": user, "labels": labels})
}

func paramID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	return uint(id), err
}
