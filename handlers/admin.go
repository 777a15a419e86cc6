package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"voxcal/database/repository/auditlog"
	"voxcal/utils"
)

// AdminHandler exposes operator diagnostics.
type AdminHandler struct {
	Audit auditlog.Repository
}

// NewAdminHandler constructs an AdminHandler.
func NewAdminHandler(audit auditlog.Repository) *AdminHandler {
	return &AdminHandler{Audit: audit}
}

// ListToolCallsHandler returns the most recent tool-call records.
func (h *AdminHandler) ListToolCallsHandler(c *gin.Context) {
	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "50"), 10, 64)
	records, err := h.Audit.ListRecent(c.Request.Context(), limit)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list tool calls", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"toolCalls": records, "count": len(records)})
}
