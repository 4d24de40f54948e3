package storage

import (
	"context"

	"treasuryReports/internal/model"
)

// TransactionStore reads treasury transactions.
type TransactionStore interface {
	Transactions(ctx context.Context, filter model.TxFilter) ([]model.Transaction, error)
}

// Storage defines a sink for rendered reports.
type Storage interface {
	PutReport(ctx context.Context, name string, data []byte) error
}

// MultiStorage writes a report to every sink in order and stops at the first failure.
type MultiStorage []Storage

func (m MultiStorage) PutReport(ctx context.Context, name string, data []byte) error {
	for _, sink := range m {
		if sink == nil {
			continue
		}
		if err := sink.PutReport(ctx, name, data); err != nil {
			return err
		}
	}
	return nil
}
