package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mahir/gradeplan/internal/app/models/dto"
	"github.com/mahir/gradeplan/internal/app/services"
	"github.com/mahir/gradeplan/internal/middleware"
)

// PlanningController handles projection and planning queries
type PlanningController struct {
	planningService *services.PlanningService
}

// NewPlanningController creates a new PlanningController
func NewPlanningController(planningService *services.PlanningService) *PlanningController {
	return &PlanningController{
		planningService: planningService,
	}
}

// Target computes the average required to reach a target CGPA
// @Summary Project a target CGPA
// @Description Average grade points the remaining credit hours must earn to reach the target
// @Tags projections
// @Accept json
// @Produce json
// @Param X-Session-ID header string true "Session id"
// @Param request body dto.TargetRequest true "Target query"
// @Success 200 {object} dto.APIResponse{data=dto.TargetResponse} "Projection computed successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid target"
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Failure 422 {object} dto.ErrorResponse "Target not achievable"
// @Router /projections/target [post]
func (c *PlanningController) Target(ctx *gin.Context) {
	var req dto.TargetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	resp, err := c.planningService.Target(middleware.SessionID(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resp))
}

// Ceiling computes the best CGPA still reachable
// @Summary Project the ceiling CGPA
// @Description Best CGPA reachable if every remaining credit hour earns the maximum grade
// @Tags projections
// @Accept json
// @Produce json
// @Param X-Session-ID header string true "Session id"
// @Param request body dto.CeilingRequest true "Ceiling query"
// @Success 200 {object} dto.APIResponse{data=dto.CeilingResponse} "Projection computed successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Router /projections/ceiling [post]
func (c *PlanningController) Ceiling(ctx *gin.Context) {
	var req dto.CeilingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	resp, err := c.planningService.Ceiling(middleware.SessionID(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resp))
}

// WhatIf applies a hypothetical edit
// @Summary Run a what-if edit
// @Description Applies a hypothetical record edit to a copy and reports the CGPA movement
// @Tags projections
// @Accept json
// @Produce json
// @Param X-Session-ID header string true "Session id"
// @Param request body dto.WhatIfRequest true "Hypothetical edit"
// @Success 200 {object} dto.APIResponse{data=projection.WhatIfResult} "Projection computed successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid edit"
// @Failure 404 {object} dto.ErrorResponse "Entry or session not found"
// @Failure 409 {object} dto.ErrorResponse "Course already in record"
// @Router /projections/what-if [post]
func (c *PlanningController) WhatIf(ctx *gin.Context) {
	var req dto.WhatIfRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	result, err := c.planningService.WhatIf(middleware.SessionID(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(result))
}

// Retakes simulates re-grading a set of courses
// @Summary Simulate retakes
// @Description Recomputes the CGPA with the listed courses re-graded to new grade points
// @Tags projections
// @Accept json
// @Produce json
// @Param X-Session-ID header string true "Session id"
// @Param request body dto.RetakesRequest true "Retake set"
// @Success 200 {object} dto.APIResponse{data=projection.RetakeSimulation} "Simulation computed successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid grade points"
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Router /projections/retakes [post]
func (c *PlanningController) Retakes(ctx *gin.Context) {
	var req dto.RetakesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	result, err := c.planningService.Retakes(middleware.SessionID(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(result))
}

// Plan sizes a plan of future semesters
// @Summary Plan future semesters
// @Description Sizes a plan of semesters against the degree and an optional target CGPA
// @Tags projections
// @Accept json
// @Produce json
// @Param X-Session-ID header string true "Session id"
// @Param request body dto.PlanRequest true "Plan query"
// @Success 200 {object} dto.APIResponse{data=projection.PlanResult} "Plan computed successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid plan parameters"
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Router /projections/plan [post]
func (c *PlanningController) Plan(ctx *gin.Context) {
	var req dto.PlanRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	result, err := c.planningService.Plan(middleware.SessionID(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(result))
}
