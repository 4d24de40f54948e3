package report

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"treasuryReports/internal/model"
)

var dailyHeader = []string{
	"chain", "symbol", "token_address", "txgroup", "top_level_txgroup",
	"timestamp", "amount", "value_usd", "month", "year",
}

// DailyCSV renders daily export rows.
func DailyCSV(rows []model.DailyRow) ([]byte, error) {
	records := make([][]string, 0, len(rows)+1)
	records = append(records, dailyHeader)
	for _, r := range rows {
		records = append(records, []string{
			r.Chain,
			r.Symbol,
			r.TokenAddress,
			r.TxGroup,
			r.TopTxGroup,
			r.Day.Format("2006-01-02"),
			r.Amount.String(),
			r.ValueUSD.String(),
			strconv.Itoa(int(r.Day.Month())),
			strconv.Itoa(r.Day.Year()),
		})
	}
	return writeCSV(records)
}

// CSV renders the PnL table with the three index levels followed by one column per month.
func (t *PnLTable) CSV() ([]byte, error) {
	header := append([]string{"top", "chain", "txgroup"}, t.MonthLabels()...)
	records := make([][]string, 0, len(t.Rows)+1)
	records = append(records, header)
	for _, row := range t.Rows {
		record := make([]string, 0, len(header))
		record = append(record, row.Top, row.Chain, row.TxGroup)
		for _, v := range row.Values {
			record = append(record, v.String())
		}
		records = append(records, record)
	}
	return writeCSV(records)
}

func writeCSV(records [][]string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.WriteAll(records); err != nil {
		return nil, fmt.Errorf("write csv: %w", err)
	}
	return buf.Bytes(), nil
}
