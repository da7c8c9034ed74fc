package handler

import (
	"net/http"
	"strconv"

	"github.com/ZulfikarHD/labelgen/internal/labelgen/entity"
	"github.com/ZulfikarHD/labelgen/internal/shared/sirine"
	"github.com/gin-gonic/gin"
)

// SpecificationHandler proxies SIRINE order specifications. The type
// query parameter picks the endpoint; anything but "mmea" reads the
// regular one.
type SpecificationHandler struct {
	spec *sirine.Client
}

func NewSpecificationHandler(spec *sirine.Client) *SpecificationHandler {
	return &SpecificationHandler{spec: spec}
}

func (h *SpecificationHandler) poNumber(c *gin.Context) (int64, bool) {
	po, err := strconv.ParseInt(c.Param("poNumber"), 10, 64)
	if err != nil || po <= 0 {
		respondError(c, http.StatusBadRequest, "invalid PO number")
		return 0, false
	}
	return po, true
}

// Get serves the normalized specification, 404 when SIRINE has none.
func (h *SpecificationHandler) Get(c *gin.Context) {
	po, ok := h.poNumber(c)
	if !ok {
		return
	}
	orderType := entity.ParseOrderType(c.Query("type"))
	spec := h.spec.GetParsedSpecification(c.Request.Context(), po, orderType)
	if spec == nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "specification not found", "data": nil})
		return
	}
	respondOK(c, spec)
}

// Validate reports whether the PO exists in SIRINE. Always 200; the
// answer is in the payload.
func (h *SpecificationHandler) Validate(c *gin.Context) {
	po, ok := h.poNumber(c)
	if !ok {
		return
	}
	orderType := entity.ParseOrderType(c.Query("type"))
	valid := h.spec.ValidatePO(c.Request.Context(), po, orderType)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "success",
		"valid":   valid,
		"data":    gin.H{"po_number": po, "order_type": orderType},
	})
}

// Raw serves the untouched SIRINE payload for troubleshooting.
func (h *SpecificationHandler) Raw(c *gin.Context) {
	po, ok := h.poNumber(c)
	if !ok {
		return
	}
	orderType := entity.ParseOrderType(c.Query("type"))
	payload := h.spec.GetSpecification(c.Request.Context(), po, orderType)
	if payload == nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "specification not found", "data": nil})
		return
	}
	respondOK(c, payload)
}
