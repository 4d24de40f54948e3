package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"treasuryReports/internal/model"
	"treasuryReports/internal/storage"
)

// txgroups form a tree; lineage resolves each node's full path and its root name.
const selectTransactions = `
	WITH RECURSIVE lineage AS (
		SELECT txgroup_id, name, name::text AS full_string, name::text AS top_name
		FROM txgroups
		WHERE parent_txgroup IS NULL
		UNION ALL
		SELECT g.txgroup_id, g.name, l.full_string || ':' || g.name, l.top_name
		FROM txgroups g
		JOIN lineage l ON g.parent_txgroup = l.txgroup_id
	)
	SELECT
		c.chain_name,
		t.timestamp,
		t.block,
		fa.address,
		COALESCE(fa.nickname, ''),
		ta.address,
		ta.nickname,
		tok.symbol,
		tka.address,
		t.amount::text,
		COALESCE(t.value_usd, 0)::text,
		l.full_string,
		l.name,
		l.top_name
	FROM treasury_txs t
	JOIN chains c ON c.chain_id = t.chain_id
	JOIN addresses fa ON fa.address_id = t.from_address
	LEFT JOIN addresses ta ON ta.address_id = t.to_address
	JOIN tokens tok ON tok.token_id = t.token_id
	JOIN addresses tka ON tka.address_id = tok.address_id
	JOIN lineage l ON l.txgroup_id = t.txgroup_id`

// Store reads treasury transactions from Postgres.
type Store struct {
	pool *pgxpool.Pool
}

// Compile-time interface check.
var _ storage.TransactionStore = (*Store)(nil)

func NewStore(ctx context.Context, dsn string) (*Store, error) {
	if dsn == "" {
		return nil, fmt.Errorf("pg dsn is required")
	}
	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse postgres dsn: %w", err)
	}
	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return &Store{pool: pool}, nil
}

func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Transactions returns treasury transactions inside filter ordered by timestamp.
func (s *Store) Transactions(ctx context.Context, filter model.TxFilter) ([]model.Transaction, error) {
	query, args := buildTransactionsQuery(filter)

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query transactions: %w", err)
	}
	defer rows.Close()

	var out []model.Transaction
	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, tx)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transactions: %w", err)
	}
	return out, nil
}

func buildTransactionsQuery(filter model.TxFilter) (string, []any) {
	var (
		conds []string
		args  []any
	)
	if from, ok := filter.FromUnix(); ok {
		args = append(args, from)
		conds = append(conds, fmt.Sprintf("t.timestamp >= $%d", len(args)))
	}
	if to, ok := filter.ToUnix(); ok {
		args = append(args, to)
		conds = append(conds, fmt.Sprintf("t.timestamp < $%d", len(args)))
	}

	var sb strings.Builder
	sb.WriteString(selectTransactions)
	if len(conds) > 0 {
		sb.WriteString("\n\tWHERE ")
		sb.WriteString(strings.Join(conds, " AND "))
	}
	sb.WriteString("\n\tORDER BY t.timestamp, t.block")
	return sb.String(), args
}

func scanTransaction(row pgx.Row) (model.Transaction, error) {
	var (
		tx               model.Transaction
		amount, valueUSD string
	)
	if err := row.Scan(
		&tx.Chain,
		&tx.Timestamp,
		&tx.Block,
		&tx.FromAddress,
		&tx.FromNickname,
		&tx.ToAddress,
		&tx.ToNickname,
		&tx.Symbol,
		&tx.TokenAddress,
		&amount,
		&valueUSD,
		&tx.TxGroup,
		&tx.TxGroupName,
		&tx.TopTxGroup,
	); err != nil {
		return model.Transaction{}, fmt.Errorf("scan transaction: %w", err)
	}

	var err error
	if tx.Amount, err = decimal.NewFromString(amount); err != nil {
		return model.Transaction{}, fmt.Errorf("parse amount %q: %w", amount, err)
	}
	if tx.ValueUSD, err = decimal.NewFromString(valueUSD); err != nil {
		return model.Transaction{}, fmt.Errorf("parse value_usd %q: %w", valueUSD, err)
	}
	return tx, nil
}
