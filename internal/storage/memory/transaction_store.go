package memory

import (
	"context"
	"sort"
	"sync"

	"treasuryReports/internal/model"
	"treasuryReports/internal/storage"
)

// TransactionStore keeps transactions in memory.
type TransactionStore struct {
	mu  sync.RWMutex
	txs []model.Transaction
}

// Compile-time interface check.
var _ storage.TransactionStore = (*TransactionStore)(nil)

func NewTransactionStore(txs ...model.Transaction) *TransactionStore {
	s := &TransactionStore{}
	s.Add(txs...)
	return s
}

func (s *TransactionStore) Add(txs ...model.Transaction) {
	s.mu.Lock()
	s.txs = append(s.txs, txs...)
	s.mu.Unlock()
}

// Transactions returns the transactions matching filter ordered by timestamp then block.
func (s *TransactionStore) Transactions(_ context.Context, filter model.TxFilter) ([]model.Transaction, error) {
	s.mu.RLock()
	out := make([]model.Transaction, 0, len(s.txs))
	for _, tx := range s.txs {
		if filter.Contains(tx.Timestamp) {
			out = append(out, tx)
		}
	}
	s.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Timestamp != out[j].Timestamp {
			return out[i].Timestamp < out[j].Timestamp
		}
		return out[i].Block < out[j].Block
	})
	return out, nil
}
