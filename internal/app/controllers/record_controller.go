package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mahir/gradeplan/internal/app/models/dto"
	"github.com/mahir/gradeplan/internal/app/services"
	"github.com/mahir/gradeplan/internal/middleware"
	"github.com/mahir/gradeplan/internal/transcript"
)

// RecordController handles academic record operations
type RecordController struct {
	recordService *services.RecordService
}

// NewRecordController creates a new RecordController
func NewRecordController(recordService *services.RecordService) *RecordController {
	return &RecordController{
		recordService: recordService,
	}
}

// AddEntry adds a course attempt to the record
// @Summary Add a record entry
// @Description Adds a completed or planned course attempt to the session's record
// @Tags record
// @Accept json
// @Produce json
// @Param X-Session-ID header string true "Session id"
// @Param request body dto.AddEntryRequest true "Course attempt"
// @Success 201 {object} dto.APIResponse{data=models.RecordEntry} "Entry added successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Failure 409 {object} dto.ErrorResponse "Course already in record"
// @Router /record/entries [post]
func (c *RecordController) AddEntry(ctx *gin.Context) {
	var req dto.AddEntryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	entry, err := c.recordService.AddEntry(middleware.SessionID(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(entry))
}

// UpdateGrade changes the grade of a course's most recent attempt
// @Summary Update an entry's grade
// @Description Changes the grade of the most recent attempt of the course
// @Tags record
// @Accept json
// @Produce json
// @Param X-Session-ID header string true "Session id"
// @Param code path string true "Course code"
// @Param request body dto.UpdateGradeRequest true "New grade"
// @Success 200 {object} dto.APIResponse{data=models.RecordEntry} "Grade updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Entry or session not found"
// @Router /record/entries/{code} [patch]
func (c *RecordController) UpdateGrade(ctx *gin.Context) {
	var req dto.UpdateGradeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	entry, err := c.recordService.UpdateGrade(middleware.SessionID(ctx), ctx.Param("code"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(entry))
}

// RemoveEntry deletes every attempt of a course
// @Summary Remove a record entry
// @Description Removes every attempt of the course from the record
// @Tags record
// @Produce json
// @Param X-Session-ID header string true "Session id"
// @Param code path string true "Course code"
// @Success 200 {object} dto.APIResponse "Entry removed successfully"
// @Failure 404 {object} dto.ErrorResponse "Entry or session not found"
// @Router /record/entries/{code} [delete]
func (c *RecordController) RemoveEntry(ctx *gin.Context) {
	if err := c.recordService.RemoveEntry(middleware.SessionID(ctx), ctx.Param("code")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(gin.H{"removed": true}))
}

// GetRecord retrieves the full record
// @Summary Get the record
// @Description Retrieves the session's academic record, history included
// @Tags record
// @Produce json
// @Param X-Session-ID header string true "Session id"
// @Success 200 {object} dto.APIResponse{data=models.AcademicRecord} "Record retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Router /record [get]
func (c *RecordController) GetRecord(ctx *gin.Context) {
	record, err := c.recordService.Record(middleware.SessionID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(record))
}

// GetSummary aggregates the record
// @Summary Get the record summary
// @Description CGPA, totals, per-semester GPAs, category breakdown and degree progress
// @Tags record
// @Produce json
// @Param X-Session-ID header string true "Session id"
// @Success 200 {object} dto.APIResponse{data=dto.RecordSummaryResponse} "Summary retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Router /record/summary [get]
func (c *RecordController) GetSummary(ctx *gin.Context) {
	summary, err := c.recordService.Summary(middleware.SessionID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(summary))
}

// GetTrends returns the GPA/CGPA history
// @Summary Get semester trends
// @Description Per-semester GPA and running CGPA in chronological order
// @Tags record
// @Produce json
// @Param X-Session-ID header string true "Session id"
// @Success 200 {object} dto.APIResponse{data=[]projection.SemesterTrend} "Trends retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Router /record/trends [get]
func (c *RecordController) GetTrends(ctx *gin.Context) {
	trends, err := c.recordService.Trends(middleware.SessionID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(trends))
}

// GetStats returns performance statistics
// @Summary Get performance statistics
// @Description Course counts, credit totals and grade-point extremes over the record
// @Tags record
// @Produce json
// @Param X-Session-ID header string true "Session id"
// @Success 200 {object} dto.APIResponse{data=projection.PerformanceStats} "Statistics retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Router /record/stats [get]
func (c *RecordController) GetStats(ctx *gin.Context) {
	stats, err := c.recordService.Stats(middleware.SessionID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(stats))
}

// GetDistribution counts letter grades
// @Summary Get the grade distribution
// @Description Letter grade counts across the whole record, history included
// @Tags record
// @Produce json
// @Param X-Session-ID header string true "Session id"
// @Success 200 {object} dto.APIResponse{data=map[string]int} "Distribution retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Router /record/distribution [get]
func (c *RecordController) GetDistribution(ctx *gin.Context) {
	dist, err := c.recordService.Distribution(middleware.SessionID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dist))
}

// GetUnlocked lists courses whose prerequisites the record satisfies
// @Summary List unlocked courses
// @Description Catalog courses not yet taken whose prerequisites are all completed
// @Tags record
// @Produce json
// @Param X-Session-ID header string true "Session id"
// @Success 200 {object} dto.APIResponse{data=[]catalog.Course} "Unlocked courses retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Router /record/unlocked [get]
func (c *RecordController) GetUnlocked(ctx *gin.Context) {
	unlocked, err := c.recordService.Unlocked(middleware.SessionID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(unlocked))
}

// GetGenEdPlan proposes general-education courses
// @Summary Get a general-education plan
// @Description Stream coverage plus one suggested course per uncovered stream
// @Tags record
// @Produce json
// @Param X-Session-ID header string true "Session id"
// @Success 200 {object} dto.APIResponse{data=catalog.GenEdPlan} "Plan retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Router /record/gened-plan [get]
func (c *RecordController) GetGenEdPlan(ctx *gin.Context) {
	plan, err := c.recordService.GenEdPlan(middleware.SessionID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(plan))
}

// ExportTranscript serializes the record
// @Summary Export the record as a transcript
// @Description Serializes the record, retakes and history included
// @Tags record
// @Produce json
// @Param X-Session-ID header string true "Session id"
// @Success 200 {object} dto.APIResponse{data=transcript.Transcript} "Transcript exported successfully"
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Router /record/export [get]
func (c *RecordController) ExportTranscript(ctx *gin.Context) {
	t, err := c.recordService.Export(middleware.SessionID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(t))
}

// ImportTranscript replaces the record with a transcript
// @Summary Import a transcript
// @Description Replaces the session's record with the record the transcript describes
// @Tags record
// @Accept json
// @Produce json
// @Param X-Session-ID header string true "Session id"
// @Param request body transcript.Transcript true "Transcript"
// @Success 200 {object} dto.APIResponse "Transcript imported successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid transcript data"
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Router /record/import [post]
func (c *RecordController) ImportTranscript(ctx *gin.Context) {
	var t transcript.Transcript
	if err := ctx.ShouldBindJSON(&t); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	count, err := c.recordService.Import(middleware.SessionID(ctx), &t)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(gin.H{"imported": count}))
}
