package telemetry

import (
	"errors"

	"github.com/uptrace/opentelemetry-go-extra/otelgorm"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DBTracingConfig holds configuration for database query tracing.
type DBTracingConfig struct {
	Enabled    bool
	LogFullSQL bool // include query variables in spans, development only
}

// RegisterDBTracing registers the otelgorm plugin on the GORM instance so
// every query produces a child span, plus a callback that annotates the
// span with the affected table and row count.
func RegisterDBTracing(db *gorm.DB, cfg DBTracingConfig, logger *zap.Logger) error {
	if !cfg.Enabled {
		logger.Debug("Database tracing disabled, skipping otelgorm registration")
		return nil
	}

	opts := []otelgorm.Option{
		otelgorm.WithDBName("postgresql"),
	}
	if !cfg.LogFullSQL {
		// keep query parameters out of spans
		opts = append(opts, otelgorm.WithoutQueryVariables())
	}

	if err := db.Use(otelgorm.NewPlugin(opts...)); err != nil {
		return err
	}

	after := func(db *gorm.DB) {
		annotateQuerySpan(db)
	}
	registrations := []struct {
		name     string
		register func() error
	}{
		{"query_span:after_create", func() error {
			return db.Callback().Create().After("gorm:create").Register("query_span:after_create", after)
		}},
		{"query_span:after_query", func() error {
			return db.Callback().Query().After("gorm:query").Register("query_span:after_query", after)
		}},
		{"query_span:after_update", func() error {
			return db.Callback().Update().After("gorm:update").Register("query_span:after_update", after)
		}},
		{"query_span:after_delete", func() error {
			return db.Callback().Delete().After("gorm:delete").Register("query_span:after_delete", after)
		}},
	}
	for _, r := range registrations {
		if err := r.register(); err != nil {
			return err
		}
	}

	logger.Info("Database tracing enabled", zap.Bool("log_full_sql", cfg.LogFullSQL))
	return nil
}

// annotateQuerySpan enriches the active query span with the table name and
// row count, and marks real errors. Record-not-found is expected on lookups
// and stays out of the span status.
func annotateQuerySpan(db *gorm.DB) {
	ctx := db.Statement.Context
	if ctx == nil {
		return
	}

	span := trace.SpanFromContext(ctx)
	if span == nil || !span.IsRecording() {
		return
	}

	if db.Statement.RowsAffected >= 0 {
		span.SetAttributes(attribute.Int64("db.rows_affected", db.Statement.RowsAffected))
	}
	if db.Statement.Table != "" {
		span.SetAttributes(attribute.String("db.sql.table", db.Statement.Table))
	}

	if db.Error != nil && !errors.Is(db.Error, gorm.ErrRecordNotFound) {
		span.SetStatus(codes.Error, db.Error.Error())
		span.RecordError(db.Error)
	}
}
