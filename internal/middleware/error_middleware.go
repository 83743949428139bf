package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mahir/gradeplan/internal/app/models/dto"
	"github.com/mahir/gradeplan/internal/pkg/apperrors"
	"github.com/mahir/gradeplan/internal/pkg/logger"
)

// HandleAPIError maps application errors to HTTP responses
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeSessionNotFound, "Session not found"),
		})
	case errors.Is(err, apperrors.ErrEntryNotFound):
		c.JSON(http.StatusNotFound, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Record entry not found").WithDetails(err.Error()),
		})
	case errors.Is(err, apperrors.ErrUnknownCourse):
		c.JSON(http.StatusNotFound, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Course not in catalog").WithDetails(err.Error()),
		})
	case errors.Is(err, apperrors.ErrUnknownProgram):
		c.JSON(http.StatusNotFound, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Unknown program").WithDetails(err.Error()),
		})
	case errors.Is(err, apperrors.ErrDuplicateEntry):
		c.JSON(http.StatusConflict, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, "Course already in record").WithDetails(err.Error()),
		})
	case errors.Is(err, apperrors.ErrInfeasibleTarget):
		c.JSON(http.StatusUnprocessableEntity, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeInfeasibleTarget, "Target CGPA is not achievable").WithDetails(err.Error()),
		})
	case errors.Is(err, apperrors.ErrInvalidTarget):
		c.JSON(http.StatusBadRequest, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeInvalidTarget, "Target CGPA must be on the grade scale").WithDetails(err.Error()),
		})
	case errors.Is(err, apperrors.ErrEmptyInput):
		c.JSON(http.StatusBadRequest, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeEmptyInput, "No credit hours to average"),
		})
	case errors.Is(err, apperrors.ErrInvalidGrade):
		c.JSON(http.StatusBadRequest, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeInvalidGrade, "Invalid grade").WithDetails(err.Error()),
		})
	case apperrors.Is(err, apperrors.ErrValidationFailed, apperrors.ErrBadRequest):
		c.JSON(http.StatusBadRequest, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Validation failed").WithDetails(err.Error()),
		})
	default:
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled API error")
		detail := dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error").
			WithSeverity(dto.ErrorSeverityCritical)
		if gin.Mode() != gin.ReleaseMode {
			detail = detail.WithDebugInfo("%v", err)
		}
		c.JSON(http.StatusInternalServerError, dto.APIResponse{Error: detail})
	}
}

// HandleBindingError responds to request body or parameter binding failures.
func HandleBindingError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
		dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request").WithDetails(describeBindingError(err)),
	))
}
