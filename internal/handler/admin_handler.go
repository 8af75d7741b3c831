package handler

import (
	"errors"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/gradehub/resultportal-backend/internal/model"
	"github.com/gradehub/resultportal-backend/internal/response"
	"github.com/gradehub/resultportal-backend/internal/service"
	"github.com/gradehub/resultportal-backend/internal/validator"
)

// AdminHandler handles admin-scoped result entry endpoints.
type AdminHandler struct {
	resultService  *service.ResultService
	importService  *service.ImportService
	maxUploadBytes int64
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(resultService *service.ResultService, importService *service.ImportService, maxUploadBytes int64) *AdminHandler {
	return &AdminHandler{
		resultService:  resultService,
		importService:  importService,
		maxUploadBytes: maxUploadBytes,
	}
}

// SaveResult godoc
// POST /api/admin/save?token=...
// Upserts one manually entered result record keyed by roll number.
func (h *AdminHandler) SaveResult(c *gin.Context) {
	var req model.SaveResultRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	created, err := h.resultService.Save(c.Request.Context(), &req)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	if created {
		response.Message(c, http.StatusCreated, "Saved Successfully")
		return
	}
	response.Message(c, http.StatusOK, "Updated Successfully")
}

// UploadWorkbook godoc
// POST /api/admin/upload?token=...
// Ingests a multipart Excel upload. Row failures are reported in aggregate;
// they never abort the batch.
func (h *AdminHandler) UploadWorkbook(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrFileRequired)
		return
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if ext != ".xls" && ext != ".xlsx" {
		response.Fail(c, http.StatusBadRequest, response.ErrUnsupportedFile)
		return
	}
	if header.Size > h.maxUploadBytes {
		response.Fail(c, http.StatusBadRequest, response.ErrFileTooLarge)
		return
	}

	report, err := h.importService.Ingest(c.Request.Context(), file)
	if err != nil {
		if errors.Is(err, service.ErrWorkbookUnreadable) {
			response.Fail(c, http.StatusBadRequest, response.ErrWorkbookInvalid)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message":  "Excel uploaded successfully",
		"imported": report.Imported,
		"errors":   report.Errors,
	})
}
