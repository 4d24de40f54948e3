package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"treasuryReports/internal/category"
	"treasuryReports/internal/config"
	"treasuryReports/internal/storage"
)

func main() {
	root := &cobra.Command{
		Use:          "accountant",
		Short:        "Treasury transaction reports",
		SilenceUsage: true,
	}

	root.PersistentFlags().String("config", "", "config file path")

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Export daily transaction sums to CSV",
		RunE:  runExport,
	}

	addCommonFlags(exportCmd)
	exportCmd.Flags().String("from", "2022-04-01", "window start (inclusive; date, RFC3339 or unix seconds)")
	exportCmd.Flags().String("to", "2022-07-01", "window end (exclusive; date, RFC3339 or unix seconds)")

	root.AddCommand(exportCmd)

	pnlCmd := &cobra.Command{
		Use:       "pnl [all|mtd|qtd|last-month|last-quarter]",
		Short:     "Build the monthly profit-and-loss report",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: pnlPeriods,
		RunE:      runPnL,
	}

	addCommonFlags(pnlCmd)
	pnlCmd.Flags().String("as-of", "", "reference time for period computation (default now)")

	root.AddCommand(pnlCmd)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func addCommonFlags(cmd *cobra.Command) {
	cmd.Flags().String("pg-dsn", "", "Postgres DSN of the treasury transaction store")
	cmd.Flags().String("reports-dir", "./reports", "directory for generated reports")
	cmd.Flags().StringSlice("treasury", nil, "treasury addresses (comma-separated)")
	cmd.Flags().String("timezone", "UTC", "IANA timezone for period and day boundaries")
	cmd.Flags().String("s3-endpoint", "", "optional S3-compatible endpoint to mirror reports to")
	cmd.Flags().String("s3-access-key", "", "S3 access key")
	cmd.Flags().String("s3-secret-key", "", "S3 secret key")
	cmd.Flags().String("s3-bucket", "treasury-reports", "S3 bucket")
	cmd.Flags().Bool("s3-use-ssl", false, "use TLS for the S3 endpoint")
	cmd.Flags().String("log-level", "info", "log level (debug, info, warn, error)")
}

func newLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevel()
	if err := cfg.Level.UnmarshalText([]byte(level)); err != nil {
		return nil, err
	}

	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return cfg.Build()
}

func newTreasury(cfg config.Config) (*category.Treasury, error) {
	treasury, err := category.ParseTreasury(cfg.Treasury)
	if err != nil {
		return nil, fmt.Errorf("parse treasury addresses: %w", err)
	}
	return treasury, nil
}

// newSink returns the reports directory sink, mirrored to S3 when configured.
func newSink(ctx context.Context, cfg config.Config, logger *zap.Logger) (storage.Storage, error) {
	files := storage.NewFileStorage(cfg.ReportsDir)
	if !cfg.S3.Enabled() {
		return files, nil
	}

	remote, err := storage.NewMinIOStorage(ctx, storage.MinIOConfig{
		Endpoint:  cfg.S3.Endpoint,
		AccessKey: cfg.S3.AccessKey,
		SecretKey: cfg.S3.SecretKey,
		Bucket:    cfg.S3.Bucket,
		UseSSL:    cfg.S3.UseSSL,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("connect s3: %w", err)
	}
	return storage.MultiStorage{files, remote}, nil
}

func redactDSN(dsn string) string {
	if dsn == "" {
		return dsn
	}
	return "***"
}
