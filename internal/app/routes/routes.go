package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/mahir/gradeplan/internal/app/controllers"
	"github.com/mahir/gradeplan/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	catalogController *controllers.CatalogController,
	sessionController *controllers.SessionController,
	recordController *controllers.RecordController,
	planningController *controllers.PlanningController,
	sessionMiddleware *middleware.SessionMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public catalog routes ---
	programs := v1.Group("/programs")
	{
		programs.GET("", catalogController.GetPrograms)
		programs.GET("/:program", catalogController.GetProgramRequirements)
		programs.GET("/:program/courses", catalogController.GetProgramCourses)
	}

	// Session creation is the only unauthenticated mutation
	v1.POST("/sessions", sessionController.CreateSession)

	// --- Session-scoped routes ---
	scoped := v1.Group("")
	scoped.Use(sessionMiddleware.RequireSession())
	{
		scoped.GET("/sessions", sessionController.GetSession)
		scoped.DELETE("/sessions", sessionController.DeleteSession)

		record := scoped.Group("/record")
		{
			record.GET("", recordController.GetRecord)
			record.POST("/entries", recordController.AddEntry)
			record.PATCH("/entries/:code", recordController.UpdateGrade)
			record.DELETE("/entries/:code", recordController.RemoveEntry)

			record.GET("/summary", recordController.GetSummary)
			record.GET("/trends", recordController.GetTrends)
			record.GET("/stats", recordController.GetStats)
			record.GET("/distribution", recordController.GetDistribution)
			record.GET("/unlocked", recordController.GetUnlocked)
			record.GET("/gened-plan", recordController.GetGenEdPlan)

			record.GET("/export", recordController.ExportTranscript)
			record.POST("/import", recordController.ImportTranscript)
		}

		projections := scoped.Group("/projections")
		{
			projections.POST("/target", planningController.Target)
			projections.POST("/ceiling", planningController.Ceiling)
			projections.POST("/what-if", planningController.WhatIf)
			projections.POST("/retakes", planningController.Retakes)
			projections.POST("/plan", planningController.Plan)
		}
	}
}
