package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mahir/gradeplan/internal/app/models/dto"
	"github.com/mahir/gradeplan/internal/app/services"
	"github.com/mahir/gradeplan/internal/middleware"
)

// SessionController handles session lifecycle operations
type SessionController struct {
	sessionService *services.SessionService
}

// NewSessionController creates a new SessionController
func NewSessionController(sessionService *services.SessionService) *SessionController {
	return &SessionController{
		sessionService: sessionService,
	}
}

// CreateSession opens a new planning session
// @Summary Create a session
// @Description Opens a session with an empty academic record for the given program
// @Tags sessions
// @Accept json
// @Produce json
// @Param request body dto.CreateSessionRequest true "Session information"
// @Success 201 {object} dto.APIResponse{data=dto.SessionResponse} "Session created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Unknown program"
// @Router /sessions [post]
func (c *SessionController) CreateSession(ctx *gin.Context) {
	var req dto.CreateSessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	session, err := c.sessionService.Create(&req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(session))
}

// GetSession describes the current session
// @Summary Get the session
// @Description Describes the session's program and record size
// @Tags sessions
// @Produce json
// @Param X-Session-ID header string true "Session id"
// @Success 200 {object} dto.APIResponse{data=dto.SessionInfoResponse} "Session retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Router /sessions [get]
func (c *SessionController) GetSession(ctx *gin.Context) {
	info, err := c.sessionService.Info(middleware.SessionID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(info))
}

// DeleteSession destroys the current session
// @Summary Delete the session
// @Description Destroys the session and its academic record
// @Tags sessions
// @Produce json
// @Param X-Session-ID header string true "Session id"
// @Success 200 {object} dto.APIResponse "Session deleted successfully"
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Router /sessions [delete]
func (c *SessionController) DeleteSession(ctx *gin.Context) {
	if err := c.sessionService.Delete(middleware.SessionID(ctx)); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(gin.H{"deleted": true}))
}
