package domain

// TallyRow is one recipient's tally record across all denominations.
type TallyRow struct {
	RowID string `json:"rowID"` // Primary key (UUID), never reused after deletion
	Name  string `json:"name"`  // Recipient name, may be blank
	// Counts maps denomination value -> bill count. Entries may be omitted
	// for compactness; absent keys read as 0 at the access boundary.
	Counts map[int64]int64 `json:"counts"`
}

// Count returns the bill count for a denomination, defaulting absent keys to 0.
func (r TallyRow) Count(denomValue int64) int64 {
	return r.Counts[denomValue]
}

// Clone returns a deep copy of the row.
func (r TallyRow) Clone() TallyRow {
	counts := make(map[int64]int64, len(r.Counts))
	for value, count := range r.Counts {
		counts[value] = count
	}
	return TallyRow{RowID: r.RowID, Name: r.Name, Counts: counts}
}

// TallySheet is the ordered collection of tally rows. Insertion order is the
// display and export order; it does not affect totals.
type TallySheet struct {
	Rows []TallyRow `json:"rows"`
}

// FindRow returns the index of the row with the given id, or -1.
func (s TallySheet) FindRow(rowID string) int {
	for i, row := range s.Rows {
		if row.RowID == rowID {
			return i
		}
	}
	return -1
}

// Clone returns a deep copy of the sheet so callers can mutate freely.
func (s TallySheet) Clone() TallySheet {
	rows := make([]TallyRow, len(s.Rows))
	for i, row := range s.Rows {
		rows[i] = row.Clone()
	}
	return TallySheet{Rows: rows}
}
