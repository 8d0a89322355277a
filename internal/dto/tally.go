package dto

import (
	"strconv"
	"time"

	"github.com/hongbao-tally/hongbao_tally_app/internal/core/domain"
	"github.com/hongbao-tally/hongbao_tally_app/internal/utils"
	"github.com/hongbao-tally/hongbao_tally_app/internal/utils/tallying"
)

// UpdateNameRequest carries a verbatim name replacement. Blank names are valid.
type UpdateNameRequest struct {
	Name string `json:"name"`
}

// SetCountRequest carries the raw count input exactly as the user typed it.
// Normalization (clamping, truncation) happens in the service, not here.
type SetCountRequest struct {
	Value string `json:"value" binding:"countinput"`
}

// ResetRequest guards the destructive clear-all behind an explicit confirmation.
type ResetRequest struct {
	Confirm bool `json:"confirm" binding:"required"`
}

// DenominationResponse describes one catalog entry.
type DenominationResponse struct {
	Value int64  `json:"value"`
	Label string `json:"label"`
}

// RowResponse is one tally row with its derived subtotal. Counts always list
// every catalog denomination, zero or not, keyed by the denomination value.
type RowResponse struct {
	RowID    string           `json:"rowID"`
	Name     string           `json:"name"`
	Counts   map[string]int64 `json:"counts"`
	Subtotal int64            `json:"subtotal"`
}

// NotificationResponse is a transient user-facing message.
type NotificationResponse struct {
	Message   string    `json:"message"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// SheetResponse is the full tally view: rows, derived totals, and the
// transient session state.
type SheetResponse struct {
	Denominations    []DenominationResponse `json:"denominations"`
	Rows             []RowResponse          `json:"rows"`
	ColumnTotals     map[string]int64       `json:"columnTotals"`
	GrandTotal       int64                  `json:"grandTotal"`
	ActiveRowID      string                 `json:"activeRowID,omitempty"`
	ArmedDeleteRowID string                 `json:"armedDeleteRowID,omitempty"`
	Notification     *NotificationResponse  `json:"notification,omitempty"`
}

// DeleteRowResponse reports the outcome of a delete call: armed=true means a
// confirming second call is required before the row is removed.
type DeleteRowResponse struct {
	RowID string `json:"rowID"`
	Armed bool   `json:"armed"`
}

// ToRowResponse converts a domain row, filling a count for every catalog
// denomination and computing the subtotal.
func ToRowResponse(catalog *domain.Catalog, row domain.TallyRow) RowResponse {
	counts := make(map[string]int64, catalog.Len())
	for _, value := range catalog.Values() {
		counts[strconv.FormatInt(value, 10)] = row.Count(value)
	}
	return RowResponse{
		RowID:    row.RowID,
		Name:     row.Name,
		Counts:   counts,
		Subtotal: utils.AmountToInt64(tallying.RowTotal(catalog, row)),
	}
}

// ToSheetResponse converts a derived sheet report.
func ToSheetResponse(catalog *domain.Catalog, report *domain.SheetReport) SheetResponse {
	denominations := make([]DenominationResponse, 0, catalog.Len())
	for _, d := range catalog.Denominations() {
		denominations = append(denominations, DenominationResponse{Value: d.Value, Label: d.Label})
	}

	rows := make([]RowResponse, len(report.Rows))
	for i, rowReport := range report.Rows {
		rows[i] = ToRowResponse(catalog, rowReport.Row)
	}

	columnTotals := make(map[string]int64, len(report.ColumnTotals))
	for value, total := range report.ColumnTotals {
		columnTotals[strconv.FormatInt(value, 10)] = total
	}

	resp := SheetResponse{
		Denominations:    denominations,
		Rows:             rows,
		ColumnTotals:     columnTotals,
		GrandTotal:       utils.AmountToInt64(report.GrandTotal),
		ActiveRowID:      report.Session.ActiveRowID,
		ArmedDeleteRowID: report.Session.ArmedDeleteRowID,
	}
	if report.Session.Notification != nil {
		resp.Notification = &NotificationResponse{
			Message:   report.Session.Notification.Message,
			ExpiresAt: report.Session.Notification.ExpiresAt,
		}
	}
	return resp
}

// ToNotificationResponse converts a domain notification.
func ToNotificationResponse(n *domain.Notification) NotificationResponse {
	return NotificationResponse{Message: n.Message, ExpiresAt: n.ExpiresAt}
}
