package dto

// ExportDenomination is one catalog entry in the structured export.
type ExportDenomination struct {
	Value int64  `json:"value"`
	Label string `json:"label"`
}

// ExportMeta describes the export header: title, display timestamp, currency,
// and the ordered denomination catalog.
type ExportMeta struct {
	Title         string               `json:"title"`
	Date          string               `json:"date"`
	Currency      string               `json:"currency"`
	Denominations []ExportDenomination `json:"denominations"`
}

// ExportRow is one recipient in the structured export. Counts always include
// every catalog denomination so the shape stays uniform for consumers.
type ExportRow struct {
	Name     string           `json:"name"`
	Counts   map[string]int64 `json:"counts"`
	Subtotal int64            `json:"subtotal"`
}

// ExportTotals carries per-denomination bill counts and the monetary grand total.
type ExportTotals struct {
	Counts     map[string]int64 `json:"counts"`
	GrandTotal int64            `json:"grandTotal"`
}

// ExportDocument is the structured (JSON) export payload.
type ExportDocument struct {
	Meta   ExportMeta   `json:"meta"`
	Rows   []ExportRow  `json:"rows"`
	Totals ExportTotals `json:"totals"`
}
