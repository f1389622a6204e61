package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"docugen/internal/port"
)

// RegistryHandler handles company registry lookups.
type RegistryHandler struct {
	registry port.CompanyRegistry
}

// NewRegistryHandler creates a new RegistryHandler.
func NewRegistryHandler(registry port.CompanyRegistry) *RegistryHandler {
	return &RegistryHandler{registry: registry}
}

// Companies handles GET /api/v1/registry/companies?name=...
// @Summary      Look up a company profile by name
// @Tags         registry
// @Produce      json
// @Param        name query string true "Company name"
// @Success      200 {object} APIResponse{data=domain.CompanyProfile}
// @Failure      404 {object} APIResponse
// @Failure      502 {object} APIResponse
// @Security     BearerAuth
// @Router       /registry/companies [get]
func (h *RegistryHandler) Companies(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "name query parameter is required")
		return
	}

	profile, err := h.registry.Resolve(c.Request.Context(), name)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, profile)
}
