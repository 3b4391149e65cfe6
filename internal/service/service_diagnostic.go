package service

import (
	"context"

	"github.com/antonkuklin/saas-backend/internal/config"
	"github.com/antonkuklin/saas-backend/internal/logger"
	"github.com/antonkuklin/saas-backend/internal/store"
	"github.com/antonkuklin/saas-backend/models"
)

// Diagnostic report strings. The operational dashboard that polls /test
// matches on these values, so they are part of the endpoint's contract.
const (
	diagBackendRunning = "✅ Running"

	diagDBNotAvailable    = "❌ Not Available"
	diagDBConnected       = "✅ Connected & Working"
	diagDBConnectedErrors = "⚠️  Connected but Error: "

	diagConnected    = "Connected"
	diagNotConnected = "Not Connected"

	diagSet    = "✅ Set"
	diagNotSet = "❌ Not Set"

	// maxDiagCollections caps how many table names the report carries.
	maxDiagCollections = 10

	// maxDiagErrorLen truncates backend error text in the report.
	maxDiagErrorLen = 50
)

// diagnosticService is the concrete implementation of DiagnosticService.
// It is purely observational: it never mutates anything.
type diagnosticService struct {
	// db is the shared database handle, or nil when the process runs
	// without a store.
	db store.CollectionLister

	// dbConfig is used for presence reporting only.
	dbConfig config.DB

	logger *logger.Logger
}

// NewDiagnosticService constructs a DiagnosticService over the given
// database handle (which may be nil) and the storage configuration.
func NewDiagnosticService(db store.CollectionLister, dbConfig config.DB, logger *logger.Logger) DiagnosticService {
	return &diagnosticService{
		db:       db,
		dbConfig: dbConfig,
		logger:   logger,
	}
}

// Report builds the diagnostic body for GET /test.
//
// Connectivity is proven by listing table names rather than by a bare ping,
// so a half-broken connection (reachable but unusable) is reported as
// "connected but error". Configuration presence is reported from the merged
// config, which is where the DATABASE_URL / DATABASE_NAME environment
// variables land.
func (d *diagnosticService) Report(ctx context.Context) models.DiagnosticReport {
	log := logger.FromContext(ctx)

	report := models.DiagnosticReport{
		Backend:          diagBackendRunning,
		Database:         diagDBNotAvailable,
		DatabaseURL:      diagNotSet,
		DatabaseName:     diagNotSet,
		ConnectionStatus: diagNotConnected,
		Collections:      []string{},
	}

	if d.dbConfig.DSN != "" {
		report.DatabaseURL = diagSet
	}
	if d.dbConfig.Name != "" {
		report.DatabaseName = diagSet
	}

	if d.db == nil {
		return report
	}

	report.ConnectionStatus = diagConnected

	collections, err := d.db.ListCollections(ctx, maxDiagCollections)
	if err != nil {
		log.Err(err).Msg("diagnostic collection listing failed")
		report.Database = diagDBConnectedErrors + truncateError(err, maxDiagErrorLen)
		return report
	}

	report.Database = diagDBConnected
	report.Collections = collections

	return report
}

// truncateError caps the message at limit characters. Counting runes rather
// than bytes keeps a multi-byte character from being split at the boundary.
func truncateError(err error, limit int) string {
	msg := []rune(err.Error())
	if len(msg) > limit {
		return string(msg[:limit])
	}
	return string(msg)
}
