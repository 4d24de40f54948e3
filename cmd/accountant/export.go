package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"treasuryReports/internal/config"
	"treasuryReports/internal/model"
	"treasuryReports/internal/period"
	"treasuryReports/internal/report"
	"treasuryReports/internal/storage/postgres"
)

func runExport(cmd *cobra.Command, _ []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadExport(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	if cfg.PGDSN == "" {
		return fmt.Errorf("pg dsn is required")
	}

	loc, err := cfg.Location()
	if err != nil {
		return err
	}
	from, _, err := config.ParseTimestamp(cfg.From, loc)
	if err != nil {
		return fmt.Errorf("parse from: %w", err)
	}
	to, _, err := config.ParseTimestamp(cfg.To, loc)
	if err != nil {
		return fmt.Errorf("parse to: %w", err)
	}
	if !from.Before(to) {
		return fmt.Errorf("from must be before to")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := postgres.NewStore(ctx, cfg.PGDSN)
	if err != nil {
		return fmt.Errorf("connect postgres: %w", err)
	}
	defer store.Close()

	sink, err := newSink(ctx, cfg.Config, logger)
	if err != nil {
		return err
	}

	gen := report.NewGenerator(report.Config{Location: loc}, store, sink, logger)

	name := exportName(exportRange(from, to))

	logger.Info("export start",
		zap.String("pg_dsn", redactDSN(cfg.PGDSN)),
		zap.Time("from", from),
		zap.Time("to", to),
		zap.String("reports_dir", cfg.ReportsDir),
		zap.String("name", name),
	)

	_, err = gen.ExportDaily(ctx, name, model.TxFilter{From: &from, To: &to})
	return err
}

// exportRange turns the exclusive window end into the last covered instant,
// so the label names the last day that has exported rows.
func exportRange(from, to time.Time) period.Range {
	return period.Range{Start: from, End: to.Add(-time.Nanosecond)}
}

func exportName(r period.Range) string {
	return fmt.Sprintf("txs_%s.csv", r.Label())
}
