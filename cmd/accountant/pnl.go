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

var pnlPeriods = []string{"all", "mtd", "qtd", "last-month", "last-quarter"}

func runPnL(cmd *cobra.Command, args []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadPnL(cfgFile, cmd.Flags())
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
	now, ok, err := config.ParseTimestamp(cfg.AsOf, loc)
	if err != nil {
		return fmt.Errorf("parse as-of: %w", err)
	}
	if !ok {
		now = time.Now().In(loc)
	}

	name := "all"
	if len(args) > 0 {
		name = args[0]
	}
	filter, reportName, err := resolvePnLPeriod(name, now)
	if err != nil {
		return err
	}

	treasury, err := newTreasury(cfg.Config)
	if err != nil {
		return err
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

	gen := report.NewGenerator(report.Config{
		Location: loc,
		Treasury: treasury,
		Console:  cmd.OutOrStdout(),
	}, store, sink, logger)

	logger.Info("pnl start",
		zap.String("pg_dsn", redactDSN(cfg.PGDSN)),
		zap.String("period", name),
		zap.Time("as_of", now),
		zap.Int("treasury_addresses", treasury.Len()),
		zap.String("name", reportName),
	)

	_, err = gen.PnL(ctx, reportName, filter)
	return err
}

// resolvePnLPeriod maps a period name to its transaction filter and report file name.
func resolvePnLPeriod(name string, now time.Time) (model.TxFilter, string, error) {
	var r period.Range
	switch name {
	case "all":
		return model.TxFilter{}, "pnl_all.csv", nil
	case "mtd":
		r = period.MonthToDate(now)
		return model.TxFilter{From: &r.Start}, pnlName(r), nil
	case "qtd":
		r = period.QuarterToDate(now)
		return model.TxFilter{From: &r.Start}, pnlName(r), nil
	case "last-month":
		var err error
		if r, err = period.LastMonth(now); err != nil {
			return model.TxFilter{}, "", err
		}
	case "last-quarter":
		var err error
		if r, err = period.LastQuarter(now); err != nil {
			return model.TxFilter{}, "", err
		}
	default:
		return model.TxFilter{}, "", fmt.Errorf("unknown period %q", name)
	}
	return model.TxFilter{From: &r.Start, To: &r.End}, pnlName(r), nil
}

func pnlName(r period.Range) string {
	return fmt.Sprintf("pnl_%s.csv", r.Label())
}
