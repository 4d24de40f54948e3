package postgres

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// setupTestStore starts a Postgres container, applies testdata/schema.sql and returns a Store.
func setupTestStore(t *testing.T) *Store {
	t.Helper()
	if testing.Short() {
		t.Skip("postgres integration test skipped in short mode")
	}

	ctx := context.Background()

	container, err := tcpostgres.Run(ctx, "postgres:15-alpine",
		tcpostgres.WithDatabase("treasury"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err, "failed to start postgres container")
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err, "failed to get connection string")

	store, err := NewStore(ctx, dsn)
	require.NoError(t, err, "failed to create store")
	t.Cleanup(store.Close)

	schema, err := os.ReadFile("testdata/schema.sql")
	require.NoError(t, err, "failed to read schema")
	_, err = store.pool.Exec(ctx, string(schema))
	require.NoError(t, err, "failed to apply schema")

	return store
}

const seedSQL = `
INSERT INTO chains (chain_id, chain_name) VALUES (1, 'Mainnet');
INSERT INTO addresses (address_id, chain_id, address, nickname) VALUES
	(1, 1, '0x93A62dA5a14C80f265DAbC077fCEE437B1a0Efde', 'Yearn Treasury'),
	(2, 1, '0x2222222222222222222222222222222222222222', NULL),
	(3, 1, '0x6B175474E89094C44Da98b954EedeAC495271d0F', 'DAI');
INSERT INTO tokens (token_id, chain_id, symbol, address_id) VALUES (1, 1, 'DAI', 3);
INSERT INTO txgroups (txgroup_id, name, parent_txgroup) VALUES
	(1, 'Protocol Revenue', NULL),
	(2, 'Vault Fees', 1),
	(3, 'Ignore', NULL),
	(4, 'Internal Transfer', 3);
INSERT INTO treasury_txs (chain_id, timestamp, block, hash, token_id, from_address, to_address, amount, value_usd, txgroup_id) VALUES
	(1, 1648771200, 100, '0xa', 1, 2, 1, 10.5, 10.5, 2),
	(1, 1651363200, 200, '0xb', 1, 1, NULL, 3, NULL, 4),
	(1, 1656633600, 300, '0xc', 1, 2, 1, 1, 1, 2);
`
