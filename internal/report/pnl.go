package report

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"treasuryReports/internal/category"
	"treasuryReports/internal/model"
	"treasuryReports/internal/period"
)

// PnLRow is one line of the PnL table. Subtotal rows carry "Total <top>" in Chain.
type PnLRow struct {
	Top      string
	Chain    string
	TxGroup  string
	Values   []decimal.Decimal
	Subtotal bool
}

// PnLTable is the monthly profit-and-loss pivot.
type PnLTable struct {
	Months []time.Time
	Rows   []PnLRow
}

// MonthLabels returns the column labels, one per month end.
func (t *PnLTable) MonthLabels() []string {
	labels := make([]string, len(t.Months))
	for i, m := range t.Months {
		labels[i] = period.EndOfMonth(m).Format("2006-01-02")
	}
	return labels
}

// PnL builds the PnL table for filter, prints it to the console and writes it as name.
func (g *Generator) PnL(ctx context.Context, name string, filter model.TxFilter) (*PnLTable, error) {
	txs, err := g.fetch(ctx, filter)
	if err != nil {
		return nil, err
	}

	table, err := BuildPnL(g.PnLEntries(txs), g.cfg.Location)
	if err != nil {
		return nil, err
	}
	g.logger.Info("pnl built", zap.Int("months", len(table.Months)), zap.Int("rows", len(table.Rows)))

	if g.cfg.Console != nil {
		RenderPnL(g.cfg.Console, table)
	}

	data, err := table.CSV()
	if err != nil {
		return nil, err
	}
	if err := g.put(ctx, name, data); err != nil {
		return nil, err
	}
	return table, nil
}

// PnLEntries categorizes transactions, resolving the pending label by direction.
func (g *Generator) PnLEntries(txs []model.Transaction) []model.PnLEntry {
	entries := make([]model.PnLEntry, 0, len(txs))
	for _, tx := range txs {
		entries = append(entries, model.PnLEntry{
			Timestamp: tx.Timestamp,
			ValueUSD:  tx.ValueUSD,
			Chain:     tx.Chain,
			TxGroup:   g.cfg.Treasury.ResolveTxGroup(tx.TxGroupName, tx.FromAddress),
			Top:       tx.TopTxGroup,
		})
	}
	return entries
}

type pnlKey struct {
	top     string
	chain   string
	txgroup string
}

// BuildPnL pivots entries into monthly columns by (top, chain, txgroup), drops
// all-zero rows and appends one subtotal per top-level category. Entries whose
// top-level label is not a PnL category are left out.
func BuildPnL(entries []model.PnLEntry, loc *time.Location) (*PnLTable, error) {
	if loc == nil {
		loc = time.UTC
	}

	kept := make([]model.PnLEntry, 0, len(entries))
	var first, last time.Time
	for _, e := range entries {
		if _, ok := category.Rank(e.Top); !ok {
			continue
		}
		month := period.BeginningOfMonth(time.Unix(e.Timestamp, 0).In(loc))
		if len(kept) == 0 || month.Before(first) {
			first = month
		}
		if len(kept) == 0 || month.After(last) {
			last = month
		}
		kept = append(kept, e)
	}
	if len(kept) == 0 {
		return nil, ErrNoTransactions
	}

	var months []time.Time
	index := make(map[time.Time]int)
	for m := first; !m.After(last); m = period.BeginningOfNextMonth(m) {
		index[m] = len(months)
		months = append(months, m)
	}

	cells := make(map[pnlKey][]decimal.Decimal)
	for _, e := range kept {
		key := pnlKey{top: e.Top, chain: e.Chain, txgroup: e.TxGroup}
		values, ok := cells[key]
		if !ok {
			values = zeros(len(months))
			cells[key] = values
		}
		col := index[period.BeginningOfMonth(time.Unix(e.Timestamp, 0).In(loc))]
		values[col] = values[col].Add(e.ValueUSD)
	}

	subtotals := make(map[string][]decimal.Decimal, len(category.PnLOrder))
	for _, top := range category.PnLOrder {
		subtotals[top] = zeros(len(months))
	}

	rows := make([]PnLRow, 0, len(cells)+len(category.PnLOrder))
	for key, values := range cells {
		if allZero(values) {
			continue
		}
		total := subtotals[key.top]
		for i, v := range values {
			total[i] = total[i].Add(v)
		}
		rows = append(rows, PnLRow{Top: key.top, Chain: key.chain, TxGroup: key.txgroup, Values: values})
	}
	for _, top := range category.PnLOrder {
		rows = append(rows, PnLRow{Top: top, Chain: "Total " + top, Values: subtotals[top], Subtotal: true})
	}

	sortPnLRows(rows)
	return &PnLTable{Months: months, Rows: rows}, nil
}

func sortPnLRows(rows []PnLRow) {
	sort.SliceStable(rows, func(i, j int) bool {
		ri, _ := category.Rank(rows[i].Top)
		rj, _ := category.Rank(rows[j].Top)
		if ri != rj {
			return ri < rj
		}
		if rows[i].Chain != rows[j].Chain {
			return rows[i].Chain < rows[j].Chain
		}
		return rows[i].TxGroup < rows[j].TxGroup
	})
}

func zeros(n int) []decimal.Decimal {
	out := make([]decimal.Decimal, n)
	for i := range out {
		out[i] = decimal.Zero
	}
	return out
}

func allZero(values []decimal.Decimal) bool {
	for _, v := range values {
		if !v.IsZero() {
			return false
		}
	}
	return true
}
