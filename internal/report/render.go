package report

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// RenderPnL prints the PnL table with two-decimal values.
func RenderPnL(w io.Writer, t *PnLTable) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)

	header := table.Row{"Top", "Chain", "TxGroup"}
	configs := make([]table.ColumnConfig, 0, len(t.Months))
	for i, label := range t.MonthLabels() {
		header = append(header, label)
		configs = append(configs, table.ColumnConfig{Number: i + 4, Align: text.AlignRight})
	}
	tw.AppendHeader(header)
	tw.SetColumnConfigs(configs)

	for _, r := range t.Rows {
		row := table.Row{r.Top, r.Chain, r.TxGroup}
		for _, v := range r.Values {
			row = append(row, v.StringFixed(2))
		}
		if r.Subtotal {
			tw.AppendSeparator()
		}
		tw.AppendRow(row)
	}

	tw.Render()
}
