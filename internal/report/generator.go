package report

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"treasuryReports/internal/category"
	"treasuryReports/internal/model"
	"treasuryReports/internal/storage"
)

// ErrNoTransactions is returned when a report has nothing to aggregate.
var ErrNoTransactions = errors.New("no transactions to report")

// Config controls report generation.
type Config struct {
	Location *time.Location
	Treasury *category.Treasury
	// Console receives the rendered PnL table; nil disables printing.
	Console io.Writer
}

// Generator fetches treasury transactions, reshapes them and writes reports.
type Generator struct {
	cfg    Config
	store  storage.TransactionStore
	sink   storage.Storage
	logger *zap.Logger
}

func NewGenerator(cfg Config, store storage.TransactionStore, sink storage.Storage, logger *zap.Logger) *Generator {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	return &Generator{
		cfg:    cfg,
		store:  store,
		sink:   sink,
		logger: logger,
	}
}

// fetch loads transactions inside filter and drops the ignore category.
func (g *Generator) fetch(ctx context.Context, filter model.TxFilter) ([]model.Transaction, error) {
	if g.store == nil {
		return nil, fmt.Errorf("transaction store is nil")
	}

	txs, err := g.store.Transactions(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("fetch transactions: %w", err)
	}

	kept := txs[:0]
	var ignored int
	for _, tx := range txs {
		if tx.TopTxGroup == category.IgnoreLabel {
			ignored++
			continue
		}
		kept = append(kept, tx)
	}

	g.logger.Info("transactions fetched",
		zap.Int("fetched", len(txs)),
		zap.Int("ignored", ignored),
		zap.Int("kept", len(kept)),
	)
	return kept, nil
}

func (g *Generator) put(ctx context.Context, name string, data []byte) error {
	if g.sink == nil {
		return fmt.Errorf("report sink is nil")
	}
	if err := g.sink.PutReport(ctx, name, data); err != nil {
		return fmt.Errorf("write report %s: %w", name, err)
	}
	g.logger.Info("report written", zap.String("name", name), zap.Int("bytes", len(data)))
	return nil
}
