package tallying

import (
	"github.com/shopspring/decimal"

	"github.com/hongbao-tally/hongbao_tally_app/internal/core/domain"
)

// RowTotal computes the monetary subtotal for a single row:
// the sum over catalog denominations of count * value.
// Counts for denominations absent from the row read as 0.
func RowTotal(catalog *domain.Catalog, row domain.TallyRow) decimal.Decimal {
	total := decimal.Zero
	for _, d := range catalog.Denominations() {
		count := row.Count(d.Value)
		if count == 0 {
			continue
		}
		total = total.Add(decimal.NewFromInt(count).Mul(decimal.NewFromInt(d.Value)))
	}
	return total
}

// ColumnTotal computes the total bill count (not amount) for one denomination
// across all rows.
func ColumnTotal(rows []domain.TallyRow, denomValue int64) int64 {
	var total int64
	for _, row := range rows {
		total += row.Count(denomValue)
	}
	return total
}

// GrandTotal computes the monetary total across all rows and denominations.
func GrandTotal(catalog *domain.Catalog, rows []domain.TallyRow) decimal.Decimal {
	total := decimal.Zero
	for _, row := range rows {
		total = total.Add(RowTotal(catalog, row))
	}
	return total
}
