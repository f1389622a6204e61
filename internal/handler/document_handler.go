package handler

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"docugen/internal/domain"
	"docugen/internal/middleware"
	"docugen/internal/service"
)

// maxGeneratePayload caps the request body of a generation call.
const maxGeneratePayload = 2 << 20 // 2 MiB

// DocumentHandler handles document generation endpoints.
type DocumentHandler struct {
	generationService service.GenerationService
}

// NewDocumentHandler creates a new DocumentHandler.
func NewDocumentHandler(generationService service.GenerationService) *DocumentHandler {
	return &DocumentHandler{generationService: generationService}
}

// Generate handles POST /api/v1/documents/generate
// @Summary      Generate a filled document
// @Description  Resolves the template for the requested document type, fills
// @Description  every placeholder from the payload, and streams back the DOCX.
// @Tags         documents
// @Accept       json
// @Produce      application/vnd.openxmlformats-officedocument.wordprocessingml.document
// @Param        input body object true "Document type plus placeholder fields and group entries"
// @Success      200 {file} binary
// @Failure      400 {object} APIResponse
// @Failure      404 {object} APIResponse
// @Security     BearerAuth
// @Router       /documents/generate [post]
func (h *DocumentHandler) Generate(c *gin.Context) {
	username, err := middleware.GetUsername(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing user context")
		return
	}

	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxGeneratePayload))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "failed to read request body")
		return
	}

	var req domain.GenerateRequest
	if err := json.Unmarshal(body, &req); err != nil {
		HandleError(c, fmt.Errorf("%w: %v", domain.ErrMalformedPayload, err))
		return
	}

	out, err := h.generationService.Generate(c.Request.Context(), username, &req)
	if err != nil {
		HandleError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", out.FileName))
	c.Data(http.StatusOK, out.ContentType, out.Data)
}
