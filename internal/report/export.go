package report

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"treasuryReports/internal/model"
)

// ExportDaily writes the daily transaction dump for filter as name.
func (g *Generator) ExportDaily(ctx context.Context, name string, filter model.TxFilter) ([]model.DailyRow, error) {
	txs, err := g.fetch(ctx, filter)
	if err != nil {
		return nil, err
	}

	rows := BuildDaily(txs, g.cfg.Location)
	g.logger.Info("daily export built", zap.Int("transactions", len(txs)), zap.Int("rows", len(rows)))

	data, err := DailyCSV(rows)
	if err != nil {
		return nil, err
	}
	if err := g.put(ctx, name, data); err != nil {
		return nil, err
	}
	return rows, nil
}

type dailyBucket struct {
	first, last time.Time
	amount      map[time.Time]decimal.Decimal
	value       map[time.Time]decimal.Decimal
}

// BuildDaily sums amount and value per grouping key and day. Each key gets one
// row for every day between its first and last transaction, zero when idle.
func BuildDaily(txs []model.Transaction, loc *time.Location) []model.DailyRow {
	if loc == nil {
		loc = time.UTC
	}

	buckets := make(map[model.DailyKey]*dailyBucket)
	for _, tx := range txs {
		key := model.DailyKey{
			Chain:        tx.Chain,
			Symbol:       tx.Symbol,
			TokenAddress: tx.TokenAddress,
			TxGroup:      tx.TxGroup,
			TopTxGroup:   tx.TopTxGroup,
		}
		day := startOfDay(tx.Time(loc))

		b := buckets[key]
		if b == nil {
			b = &dailyBucket{
				first:  day,
				last:   day,
				amount: make(map[time.Time]decimal.Decimal),
				value:  make(map[time.Time]decimal.Decimal),
			}
			buckets[key] = b
		}
		if day.Before(b.first) {
			b.first = day
		}
		if day.After(b.last) {
			b.last = day
		}
		b.amount[day] = b.amount[day].Add(tx.Amount)
		b.value[day] = b.value[day].Add(tx.ValueUSD)
	}

	keys := make([]model.DailyKey, 0, len(buckets))
	for key := range buckets {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool { return lessDailyKey(keys[i], keys[j]) })

	var rows []model.DailyRow
	for _, key := range keys {
		b := buckets[key]
		for day := b.first; !day.After(b.last); day = day.AddDate(0, 0, 1) {
			rows = append(rows, model.DailyRow{
				DailyKey: key,
				Day:      day,
				Amount:   b.amount[day],
				ValueUSD: b.value[day],
			})
		}
	}
	return rows
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func lessDailyKey(a, b model.DailyKey) bool {
	switch {
	case a.Chain != b.Chain:
		return a.Chain < b.Chain
	case a.Symbol != b.Symbol:
		return a.Symbol < b.Symbol
	case a.TokenAddress != b.TokenAddress:
		return a.TokenAddress < b.TokenAddress
	case a.TxGroup != b.TxGroup:
		return a.TxGroup < b.TxGroup
	default:
		return a.TopTxGroup < b.TopTxGroup
	}
}
