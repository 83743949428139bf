package main

import (
	"os"

	"github.com/mahir/gradeplan/internal/pkg/logger"
	"github.com/mahir/gradeplan/internal/server"
)

// @title GradePlan API
// @version 1.0
// @description CGPA tracking and projection API for degree planning
// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1
// @schemes http

func main() {
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server exited with error")
		os.Exit(1)
	}
}
