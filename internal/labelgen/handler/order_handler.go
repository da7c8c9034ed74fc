package handler

import (
	"net/http"
	"strconv"

	"github.com/ZulfikarHD/labelgen/internal/labelgen/repository"
	"github.com/ZulfikarHD/labelgen/internal/labelgen/service"
	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	svc    *service.OrderService
	export *service.ExportService
}

func NewOrderHandler(svc *service.OrderService, export *service.ExportService) *OrderHandler {
	return &OrderHandler{svc: svc, export: export}
}

func (h *OrderHandler) Register(c *gin.Context) {
	var req service.RegisterOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	order, err := h.svc.Register(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondCreated(c, order)
}

func (h *OrderHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "20"))
	params := repository.OrderListParams{
		Type:   c.Query("type"),
		Status: c.Query("status"),
		Page:   page,
		Size:   size,
	}
	if team := c.Query("team_id"); team != "" {
		if teamID, err := strconv.ParseUint(team, 10, 32); err == nil {
			params.TeamID = uint(teamID)
		}
	}
	orders, total, err := h.svc.List(params)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, gin.H{"items": orders, "total": total, "page": page, "size": size})
}

func (h *OrderHandler) Get(c *gin.Context) {
	id, err := paramID(c)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid id")
		return
	}
	order, err := h.svc.Get(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, order)
}

func (h *OrderHandler) AdvanceStatus(c *gin.Context) {
	id, err := paramID(c)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid id")
		return
	}
	order, err := h.svc.AdvanceStatus(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, order)
}

type assignTeamRequest struct {
	TeamID *uint `json:"team_id"`
}

func (h *OrderHandler) AssignTeam(c *gin.Context) {
	id, err := paramID(c)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid id")
		return
	}
	var req assignTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	order, err := h.svc.AssignTeam(id, req.TeamID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, order)
}

func (h *OrderHandler) Delete(c *gin.Context) {
	id, err := paramID(c)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid id")
		return
	}
	if err := h.svc.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	respondMessage(c, "order deleted")
}

// Export streams the order's label sheet as an xlsx download.
func (h *OrderHandler) Export(c *gin.Context) {
	id, err := paramID(c)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid id")
		return
	}
	f, filename, err := h.export.ExportOrder(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	defer f.Close()

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", "attachment; filename=\""+filename+"\"")
	c.Header("Content-Transfer-Encoding", "binary")

	if err := f.Write(c.Writer); err != nil {
		respondError(c, http.StatusInternalServerError, "write excel: "+err.Error())
	}
}
