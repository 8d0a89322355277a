package services

import (
	"context"

	"github.com/hongbao-tally/hongbao_tally_app/internal/core/domain"
)

// TallyReaderSvc defines read operations over the tally session.
type TallyReaderSvc interface {
	// GetSheet returns the current sheet with all derived totals recomputed.
	GetSheet(ctx context.Context) (*domain.SheetReport, error)

	// GetNotification returns the current transient notification, or nil if
	// none is pending or the pending one has expired.
	GetNotification(ctx context.Context) (*domain.Notification, error)
}

// TallyWriterSvc defines mutations of the tally session.
type TallyWriterSvc interface {
	// CreateRow appends a fresh empty row and returns it.
	CreateRow(ctx context.Context) (*domain.TallyRow, error)

	// UpdateName replaces the row's name verbatim.
	UpdateName(ctx context.Context, rowID string, name string) (*domain.TallyRow, error)

	// SetCount parses rawInput as an integer (clamping negatives and parse
	// failures to 0, truncating fractions toward zero) and stores it.
	SetCount(ctx context.Context, rowID string, denomValue int64, rawInput string) (*domain.TallyRow, error)

	// IncrementCount adds one bill of the denomination to the row.
	IncrementCount(ctx context.Context, rowID string, denomValue int64) (*domain.TallyRow, error)

	// ActivateRow marks the row as the target for quick-add actions.
	ActivateRow(ctx context.Context, rowID string) error

	// QuickAdd increments the active row's count for the denomination.
	// With no active row it records a notification and returns ErrNoActiveRow.
	QuickAdd(ctx context.Context, denomValue int64) (*domain.TallyRow, error)

	// DeleteRow arms deletion on the first call (returning armed=true) and
	// removes the row on a confirming second call for the same id.
	DeleteRow(ctx context.Context, rowID string) (armed bool, err error)

	// ResetAll replaces the sheet with two fresh empty rows.
	ResetAll(ctx context.Context) (domain.TallySheet, error)
}

// TallySvcFacade combines all tally-related service interfaces.
type TallySvcFacade interface {
	TallyReaderSvc
	TallyWriterSvc
}
