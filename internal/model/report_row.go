package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// PnLEntry is a categorized transaction ready for the PnL pivot.
type PnLEntry struct {
	Timestamp int64
	ValueUSD  decimal.Decimal
	Chain     string
	TxGroup   string
	Top       string
}

// DailyKey groups export rows.
type DailyKey struct {
	Chain        string
	Symbol       string
	TokenAddress string
	TxGroup      string
	TopTxGroup   string
}

// DailyRow is one day of summed activity for a DailyKey.
type DailyRow struct {
	DailyKey
	Day      time.Time
	Amount   decimal.Decimal
	ValueUSD decimal.Decimal
}
