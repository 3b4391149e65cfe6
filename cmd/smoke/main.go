// Command smoke performs a quick end-to-end check of a running saas-backend
// instance: it calls the diagnostic and plans routes and logs the results.
//
// Usage:
//
//	smoke -addr http://localhost:8000
package main

import (
	"flag"

	"github.com/antonkuklin/saas-backend/internal/logger"
	"github.com/antonkuklin/saas-backend/models"
	"github.com/go-resty/resty/v2"
)

func main() {
	addr := flag.String("addr", "http://localhost:8000", "base URL of the server under test")
	flag.Parse()

	log := logger.NewLogger("smoke")
	client := resty.New().SetBaseURL(*addr)

	var report models.DiagnosticReport
	resp, err := client.R().SetResult(&report).Get("/test")
	if err != nil {
		log.Fatal().Err(err).Msg("diagnostic request failed")
	}

	log.Info().
		Int("status", resp.StatusCode()).
		Str("backend", report.Backend).
		Str("database", report.Database).
		Str("connection_status", report.ConnectionStatus).
		Msg("diagnostic")

	var plans []models.Plan
	resp, err = client.R().SetResult(&plans).Get("/api/plans")
	if err != nil {
		log.Fatal().Err(err).Msg("plans request failed")
	}

	log.Info().
		Int("status", resp.StatusCode()).
		Int("plans", len(plans)).
		Msg("plans")
}
