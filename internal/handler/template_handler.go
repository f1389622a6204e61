package handler

import (
	"io"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"docugen/internal/service"
)

// maxTemplateSize caps uploaded template packages.
const maxTemplateSize = 20 << 20 // 20 MiB

// TemplateHandler handles template management endpoints.
type TemplateHandler struct {
	templateService service.TemplateService
}

// NewTemplateHandler creates a new TemplateHandler.
func NewTemplateHandler(templateService service.TemplateService) *TemplateHandler {
	return &TemplateHandler{templateService: templateService}
}

// List handles GET /api/v1/templates
// @Summary      List stored template names
// @Tags         templates
// @Produce      json
// @Success      200 {object} APIResponse{data=[]string}
// @Security     BearerAuth
// @Router       /templates [get]
func (h *TemplateHandler) List(c *gin.Context) {
	names, err := h.templateService.List(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, names)
}

// Upload handles POST /api/v1/templates
// @Summary      Upload a template package
// @Description  Stores a DOCX template under its file name. Admin only.
// @Tags         templates
// @Accept       multipart/form-data
// @Produce      json
// @Param        file formData file true "DOCX template"
// @Success      201 {object} APIResponse
// @Failure      400 {object} APIResponse
// @Security     BearerAuth
// @Router       /templates [post]
func (h *TemplateHandler) Upload(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "MISSING_FILE", "file field is required")
		return
	}
	defer func() { _ = file.Close() }()

	if header.Size > maxTemplateSize {
		RespondError(c, http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", "template exceeds maximum allowed size")
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, maxTemplateSize))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "failed to read uploaded file")
		return
	}

	name := filepath.Base(header.Filename)
	if err := h.templateService.Upload(c.Request.Context(), name, data); err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, gin.H{"template": name})
}

// Sync handles POST /api/v1/templates/sync
// @Summary      Sync templates from the remote store
// @Tags         templates
// @Produce      json
// @Success      200 {object} APIResponse
// @Security     BearerAuth
// @Router       /templates/sync [post]
func (h *TemplateHandler) Sync(c *gin.Context) {
	synced, err := h.templateService.SyncFromRemote(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"synced": synced})
}
