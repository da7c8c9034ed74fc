package handler

import (
	"net/http"

	"github.com/ZulfikarHD/labelgen/internal/labelgen/service"
	"github.com/gin-gonic/gin"
)

type LabelHandler struct {
	svc *service.LabelService
}

func NewLabelHandler(svc *service.LabelService) *LabelHandler {
	return &LabelHandler{svc: svc}
}

// ListByOrder serves GET /orders/:id/labels, ordered inschiet last.
func (h *LabelHandler) ListByOrder(c *gin.Context) {
	orderID, err := paramID(c)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid id")
		return
	}
	labels, err := h.svc.ListByOrder(orderID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, labels)
}

func (h *LabelHandler) Get(c *gin.Context) {
	id, err := paramID(c)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid id")
		return
	}
	label, err := h.svc.Get(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, label)
}

func (h *LabelHandler) Start(c *gin.Context) {
	id, err := paramID(c)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid id")
		return
	}
	// Body is optional: operators start labels under their own NP
	// unless one is given.
	var req service.StartInspectionRequest
	c.ShouldBindJSON(&req)
	if req.InspectorNP == "" {
		req.InspectorNP = c.GetString("user_np")
	}
	label, err := h.svc.Start(id, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, label)
}

func (h *LabelHandler) Finish(c *gin.Context) {
	id, err := paramID(c)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid id")
		return
	}
	var req service.FinishInspectionRequest
	c.ShouldBindJSON(&req)
	label, err := h.svc.Finish(id, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, label)
}
