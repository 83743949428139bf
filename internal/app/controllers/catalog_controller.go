package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mahir/gradeplan/internal/app/models/dto"
	"github.com/mahir/gradeplan/internal/app/services"
	"github.com/mahir/gradeplan/internal/middleware"
)

// CatalogController serves the static course catalog
type CatalogController struct {
	catalogService *services.CatalogService
}

// NewCatalogController creates a new CatalogController
func NewCatalogController(catalogService *services.CatalogService) *CatalogController {
	return &CatalogController{
		catalogService: catalogService,
	}
}

// GetPrograms lists the supported degree programs
// @Summary List degree programs
// @Description Lists the degree programs the catalog supports
// @Tags catalog
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]string} "Programs retrieved successfully"
// @Router /programs [get]
func (c *CatalogController) GetPrograms(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(c.catalogService.Programs()))
}

// GetProgramRequirements retrieves the credit requirements of a program
// @Summary Get program requirements
// @Description Retrieves total, core, general-education and elective credit requirements
// @Tags catalog
// @Produce json
// @Param program path string true "Program code" Enums(CSE, CS)
// @Success 200 {object} dto.APIResponse{data=catalog.Program} "Requirements retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Unknown program"
// @Router /programs/{program} [get]
func (c *CatalogController) GetProgramRequirements(ctx *gin.Context) {
	program, err := c.catalogService.Requirements(ctx.Param("program"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(program))
}

// GetProgramCourses lists the catalog for a program
// @Summary List program courses
// @Description Lists every catalog course with its category within the program
// @Tags catalog
// @Produce json
// @Param program path string true "Program code" Enums(CSE, CS)
// @Success 200 {object} dto.APIResponse{data=[]services.CatalogCourse} "Courses retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Unknown program"
// @Router /programs/{program}/courses [get]
func (c *CatalogController) GetProgramCourses(ctx *gin.Context) {
	courses, err := c.catalogService.Courses(ctx.Param("program"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(courses))
}
