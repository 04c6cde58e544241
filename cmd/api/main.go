package main

import (
	"os"

	"github.com/schoollink/schoollink-api/internal/pkg/logger"
	"github.com/schoollink/schoollink-api/internal/server"
)

// @title SchoolLink API
// @version 1.0
// @description Student records, daily gate-scan attendance, and photo storage for school administration clients
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@schoollink.example

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

func main() {
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
	os.Exit(0)
}
