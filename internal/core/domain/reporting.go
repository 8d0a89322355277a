package domain

import "github.com/shopspring/decimal"

// RowReport pairs a tally row with its derived monetary subtotal.
type RowReport struct {
	Row      TallyRow
	Subtotal decimal.Decimal
}

// SheetReport is the derived view of the whole sheet: rows with subtotals,
// per-denomination bill counts, the grand total, and the session state.
// It is recomputed from the current snapshot on every read, never cached.
type SheetReport struct {
	Rows         []RowReport
	ColumnTotals map[int64]int64
	GrandTotal   decimal.Decimal
	Session      SessionState
}

// ExportFile is a rendered export document ready to hand to a file-save sink.
type ExportFile struct {
	Filename string
	MIMEType string
	Content  []byte
}
