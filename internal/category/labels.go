package category

// Top-level txgroup labels.
const (
	IgnoreLabel       = "Ignore"
	PendingLabel      = "Categorization Pending"
	RevenueLabel      = "Protocol Revenue"
	CORLabel          = "Cost of Revenue"
	OpexLabel         = "Operating Expenses"
	OtherIncomeLabel  = "Other Income"
	OtherExpenseLabel = "Other Operating Expense"
)

// PnLOrder is the row order of top-level categories in the PnL report.
var PnLOrder = []string{
	RevenueLabel,
	CORLabel,
	OpexLabel,
	OtherIncomeLabel,
	OtherExpenseLabel,
	PendingLabel,
}

// Rank returns the position of top in PnLOrder.
func Rank(top string) (int, bool) {
	for i, label := range PnLOrder {
		if label == top {
			return i, true
		}
	}
	return 0, false
}

// Pending transactions split by direction relative to the treasury.
const (
	PendingOutLabel = PendingLabel + " - out"
	PendingInLabel  = PendingLabel + " - in"
)
