package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"treasuryReports/internal/model"
)

func TestTransactionStoreFilter(t *testing.T) {
	store := NewTransactionStore(
		model.Transaction{Chain: "Mainnet", Timestamp: 300, Block: 3},
		model.Transaction{Chain: "Mainnet", Timestamp: 100, Block: 1},
		model.Transaction{Chain: "Fantom", Timestamp: 200, Block: 2},
	)

	all, err := store.Transactions(context.Background(), model.TxFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, uint64(1), all[0].Block)
	assert.Equal(t, uint64(3), all[2].Block)

	from := time.Unix(100, 0)
	to := time.Unix(300, 0)
	bounded, err := store.Transactions(context.Background(), model.TxFilter{From: &from, To: &to})
	require.NoError(t, err)
	require.Len(t, bounded, 2)
	assert.Equal(t, int64(100), bounded[0].Timestamp)
	assert.Equal(t, int64(200), bounded[1].Timestamp)
}

func TestTransactionStoreFractionalStart(t *testing.T) {
	store := NewTransactionStore(
		model.Transaction{Chain: "Mainnet", Timestamp: 100, Block: 1},
		model.Transaction{Chain: "Mainnet", Timestamp: 101, Block: 2},
	)

	from := time.Unix(100, 500_000_000)
	txs, err := store.Transactions(context.Background(), model.TxFilter{From: &from})
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, int64(101), txs[0].Timestamp)
}
