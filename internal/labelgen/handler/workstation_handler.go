package handler

import (
	"net/http"

	"github.com/ZulfikarHD/labelgen/internal/labelgen/service"
	"github.com/gin-gonic/gin"
)

type WorkstationHandler struct {
	svc *service.WorkstationService
}

func NewWorkstationHandler(svc *service.WorkstationService) *WorkstationHandler {
	return &WorkstationHandler{svc: svc}
}

func (h *WorkstationHandler) List(c *gin.Context) {
	activeOnly := c.Query("active") == "true"
	stations, err := h.svc.List(activeOnly)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, stations)
}

func (h *WorkstationHandler) Get(c *gin.Context) {
	id, err := paramID(c)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid id")
		return
	}
	station, err := h.svc.Get(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, station)
}

func (h *WorkstationHandler) Create(c *gin.Context) {
	var req service.WorkstationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	station, err := h.svc.Create(req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondCreated(c, station)
}

func (h *WorkstationHandler) Update(c *gin.Context) {
	id, err := paramID(c)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid id")
		return
	}
	var req service.WorkstationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	station, err := h.svc.Update(id, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, station)
}

func (h *WorkstationHandler) Delete(c *gin.Context) {
	id, err := paramID(c)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid id")
		return
	}
	if err := h.svc.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	respondMessage(c, "workstation deleted")
}

func (h *WorkstationHandler) ToggleActive(c *gin.Context) {
	id, err := paramID(c)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid id")
		return
	}
	station, err := h.svc.ToggleActive(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, station)
}
