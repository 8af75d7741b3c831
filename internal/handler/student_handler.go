package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gradehub/resultportal-backend/internal/repository"
	"github.com/gradehub/resultportal-backend/internal/response"
	"github.com/gradehub/resultportal-backend/internal/service"
)

// StudentHandler handles the public result lookup.
type StudentHandler struct {
	resultService *service.ResultService
}

// NewStudentHandler creates a new StudentHandler.
func NewStudentHandler(resultService *service.ResultService) *StudentHandler {
	return &StudentHandler{resultService: resultService}
}

// GetResult godoc
// GET /api/student/result?rollNo=...&dob=...
// Looks up a result record by roll number and date of birth. A miss is a
// domain outcome rendered as a message, not an error status.
func (h *StudentHandler) GetResult(c *gin.Context) {
	rollNo := c.Query("rollNo")
	dob := c.Query("dob")
	if rollNo == "" || dob == "" {
		response.Fail(c, http.StatusBadRequest, response.ErrMissingParameter)
		return
	}

	result, err := h.resultService.Find(c.Request.Context(), rollNo, dob)
	if err != nil {
		if errors.Is(err, repository.ErrResultNotFound) {
			response.Message(c, http.StatusOK, "No result found")
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, result)
}
