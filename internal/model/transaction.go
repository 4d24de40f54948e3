package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a treasury transaction as read from the store.
type Transaction struct {
	Chain        string          `json:"chain"`
	Timestamp    int64           `json:"timestamp"`
	Block        uint64          `json:"block"`
	FromAddress  string          `json:"from_address"`
	FromNickname string          `json:"from_nickname"`
	ToAddress    *string         `json:"to_address,omitempty"`
	ToNickname   *string         `json:"to_nickname,omitempty"`
	Symbol       string          `json:"symbol"`
	TokenAddress string          `json:"token_address"`
	Amount       decimal.Decimal `json:"amount"`
	ValueUSD     decimal.Decimal `json:"value_usd"`
	TxGroup      string          `json:"txgroup"`
	TxGroupName  string          `json:"txgroup_name"`
	TopTxGroup   string          `json:"top_level_txgroup"`
}

// Time returns the transaction timestamp in loc.
func (t Transaction) Time(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return time.Unix(t.Timestamp, 0).In(loc)
}

// TxFilter bounds a transaction query. From is inclusive, To is exclusive.
type TxFilter struct {
	From *time.Time
	To   *time.Time
}

// FromUnix returns the inclusive lower bound in unix seconds. A fractional
// bound rounds up so the whole second before it stays excluded.
func (f TxFilter) FromUnix() (int64, bool) {
	if f.From == nil {
		return 0, false
	}
	return ceilUnix(*f.From), true
}

// ToUnix returns the exclusive upper bound in unix seconds. A fractional bound
// rounds up so whole-second timestamps below it are still included.
func (f TxFilter) ToUnix() (int64, bool) {
	if f.To == nil {
		return 0, false
	}
	return ceilUnix(*f.To), true
}

func ceilUnix(t time.Time) int64 {
	ts := t.Unix()
	if t.Nanosecond() > 0 {
		ts++
	}
	return ts
}

// Contains reports whether a unix timestamp falls inside the filter.
func (f TxFilter) Contains(ts int64) bool {
	if from, ok := f.FromUnix(); ok && ts < from {
		return false
	}
	if to, ok := f.ToUnix(); ok && ts >= to {
		return false
	}
	return true
}
