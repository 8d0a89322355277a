package services

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hongbao-tally/hongbao_tally_app/internal/apperrors"
	"github.com/hongbao-tally/hongbao_tally_app/internal/core/domain"
	portsrepo "github.com/hongbao-tally/hongbao_tally_app/internal/core/ports/repositories"
	"github.com/hongbao-tally/hongbao_tally_app/internal/utils/tallying"
)

// selectRecipientMessage is surfaced when a quick-add arrives with no active row.
const selectRecipientMessage = "請先選擇一位收紅包的對象"

// initialRowCount is how many empty rows a fresh or reset sheet contains.
const initialRowCount = 2

// TallyService implements the tally session operations: row lifecycle, count
// edits, quick-add routing via the active row, and the two-step delete
// confirmation. Every mutation reads a snapshot, edits the copy, and replaces
// the whole snapshot, so readers never observe partial updates.
type TallyService struct {
	sessionRepo     portsrepo.SessionRepositoryFacade
	catalog         *domain.Catalog
	notificationTTL time.Duration
	now             func() time.Time
}

// NewTallyService creates a TallyService. The clock is injected so tests can
// pin notification expiry to a fixed instant.
func NewTallyService(sessionRepo portsrepo.SessionRepositoryFacade, catalog *domain.Catalog, notificationTTL time.Duration, now func() time.Time) *TallyService {
	if now == nil {
		now = time.Now
	}
	return &TallyService{
		sessionRepo:     sessionRepo,
		catalog:         catalog,
		notificationTTL: notificationTTL,
		now:             now,
	}
}

// newEmptyRow builds a fresh row: new unique id, blank name, an explicit zero
// count for every catalog denomination.
func (s *TallyService) newEmptyRow() domain.TallyRow {
	counts := make(map[int64]int64, s.catalog.Len())
	for _, value := range s.catalog.Values() {
		counts[value] = 0
	}
	return domain.TallyRow{
		RowID:  uuid.NewString(),
		Name:   "",
		Counts: counts,
	}
}

// GetSheet returns the current sheet with all derived totals recomputed from
// the snapshot. Expired notifications are filtered out of the returned state.
func (s *TallyService) GetSheet(ctx context.Context) (*domain.SheetReport, error) {
	sheet, session, err := s.sessionRepo.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read session snapshot: %w", err)
	}

	if session.Notification != nil && session.Notification.Expired(s.now()) {
		session.Notification = nil
	}

	report := &domain.SheetReport{
		Rows:         make([]domain.RowReport, len(sheet.Rows)),
		ColumnTotals: make(map[int64]int64, s.catalog.Len()),
		GrandTotal:   tallying.GrandTotal(s.catalog, sheet.Rows),
		Session:      session,
	}
	for i, row := range sheet.Rows {
		report.Rows[i] = domain.RowReport{
			Row:      row,
			Subtotal: tallying.RowTotal(s.catalog, row),
		}
	}
	for _, value := range s.catalog.Values() {
		report.ColumnTotals[value] = tallying.ColumnTotal(sheet.Rows, value)
	}
	return report, nil
}

// GetNotification returns the pending transient notification, or nil once it
// has expired or been superseded.
func (s *TallyService) GetNotification(ctx context.Context) (*domain.Notification, error) {
	_, session, err := s.sessionRepo.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read session snapshot: %w", err)
	}
	if session.Notification == nil || session.Notification.Expired(s.now()) {
		return nil, nil
	}
	return session.Notification, nil
}

// CreateRow appends a fresh empty row and returns it.
func (s *TallyService) CreateRow(ctx context.Context) (*domain.TallyRow, error) {
	sheet, session, err := s.sessionRepo.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read session snapshot: %w", err)
	}

	row := s.newEmptyRow()
	sheet.Rows = append(sheet.Rows, row)
	session.ArmedDeleteRowID = ""

	if err := s.sessionRepo.Replace(ctx, sheet, session); err != nil {
		return nil, fmt.Errorf("failed to store new row: %w", err)
	}
	created := row.Clone()
	return &created, nil
}

// UpdateName replaces the row's name verbatim, with no trimming or validation.
// Editing a row also makes it the active quick-add target.
func (s *TallyService) UpdateName(ctx context.Context, rowID string, name string) (*domain.TallyRow, error) {
	sheet, session, err := s.sessionRepo.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read session snapshot: %w", err)
	}

	idx := sheet.FindRow(rowID)
	if idx < 0 {
		return nil, apperrors.ErrNotFound
	}

	sheet.Rows[idx].Name = name
	session.ActiveRowID = rowID
	session.ArmedDeleteRowID = ""

	if err := s.sessionRepo.Replace(ctx, sheet, session); err != nil {
		return nil, fmt.Errorf("failed to store name update: %w", err)
	}
	updated := sheet.Rows[idx].Clone()
	return &updated, nil
}

// SetCount parses rawInput and writes the normalized count. Invalid, negative
// or fractional input is a data-entry correction, not a failure: it is clamped
// to 0 or truncated toward zero and never surfaced as an error.
func (s *TallyService) SetCount(ctx context.Context, rowID string, denomValue int64, rawInput string) (*domain.TallyRow, error) {
	if !s.catalog.Contains(denomValue) {
		return nil, apperrors.ErrNotFound
	}

	sheet, session, err := s.sessionRepo.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read session snapshot: %w", err)
	}

	idx := sheet.FindRow(rowID)
	if idx < 0 {
		return nil, apperrors.ErrNotFound
	}

	sheet.Rows[idx].Counts[denomValue] = parseCountInput(rawInput)
	session.ActiveRowID = rowID
	session.ArmedDeleteRowID = ""

	if err := s.sessionRepo.Replace(ctx, sheet, session); err != nil {
		return nil, fmt.Errorf("failed to store count update: %w", err)
	}
	updated := sheet.Rows[idx].Clone()
	return &updated, nil
}

// IncrementCount adds one bill of the denomination to the row, treating an
// absent count as 0.
func (s *TallyService) IncrementCount(ctx context.Context, rowID string, denomValue int64) (*domain.TallyRow, error) {
	if !s.catalog.Contains(denomValue) {
		return nil, apperrors.ErrNotFound
	}

	sheet, session, err := s.sessionRepo.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read session snapshot: %w", err)
	}

	idx := sheet.FindRow(rowID)
	if idx < 0 {
		return nil, apperrors.ErrNotFound
	}

	sheet.Rows[idx].Counts[denomValue] = sheet.Rows[idx].Count(denomValue) + 1
	session.ActiveRowID = rowID
	session.ArmedDeleteRowID = ""

	if err := s.sessionRepo.Replace(ctx, sheet, session); err != nil {
		return nil, fmt.Errorf("failed to store count increment: %w", err)
	}
	updated := sheet.Rows[idx].Clone()
	return &updated, nil
}

// ActivateRow marks the row as the target for subsequent quick-add actions.
// At most one row is active; activation replaces the previous target.
func (s *TallyService) ActivateRow(ctx context.Context, rowID string) error {
	sheet, session, err := s.sessionRepo.Snapshot(ctx)
	if err != nil {
		return fmt.Errorf("failed to read session snapshot: %w", err)
	}

	if sheet.FindRow(rowID) < 0 {
		return apperrors.ErrNotFound
	}

	session.ActiveRowID = rowID
	session.ArmedDeleteRowID = ""

	if err := s.sessionRepo.Replace(ctx, sheet, session); err != nil {
		return fmt.Errorf("failed to store active row: %w", err)
	}
	return nil
}

// QuickAdd increments the active row's count for the denomination. With no
// active row the sheet is left untouched, a transient notification is recorded
// for the user, and ErrNoActiveRow is returned.
func (s *TallyService) QuickAdd(ctx context.Context, denomValue int64) (*domain.TallyRow, error) {
	if !s.catalog.Contains(denomValue) {
		return nil, apperrors.ErrNotFound
	}

	sheet, session, err := s.sessionRepo.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read session snapshot: %w", err)
	}

	idx := -1
	if session.ActiveRowID != "" {
		idx = sheet.FindRow(session.ActiveRowID)
	}
	if idx < 0 {
		session.ActiveRowID = ""
		session.ArmedDeleteRowID = ""
		session.Notification = &domain.Notification{
			Message:   selectRecipientMessage,
			ExpiresAt: s.now().Add(s.notificationTTL),
		}
		if err := s.sessionRepo.Replace(ctx, sheet, session); err != nil {
			return nil, fmt.Errorf("failed to store notification: %w", err)
		}
		return nil, apperrors.ErrNoActiveRow
	}

	sheet.Rows[idx].Counts[denomValue] = sheet.Rows[idx].Count(denomValue) + 1
	session.ArmedDeleteRowID = ""

	if err := s.sessionRepo.Replace(ctx, sheet, session); err != nil {
		return nil, fmt.Errorf("failed to store quick add: %w", err)
	}
	updated := sheet.Rows[idx].Clone()
	return &updated, nil
}

// DeleteRow implements the two-step confirmation: the first call arms deletion
// and returns armed=true, a second call for the same id removes the row.
// Arming a different row implicitly disarms the previous one. Deleting the
// active row clears the active reference.
func (s *TallyService) DeleteRow(ctx context.Context, rowID string) (bool, error) {
	sheet, session, err := s.sessionRepo.Snapshot(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to read session snapshot: %w", err)
	}

	idx := sheet.FindRow(rowID)
	if idx < 0 {
		return false, apperrors.ErrNotFound
	}

	if session.ArmedDeleteRowID != rowID {
		session.ArmedDeleteRowID = rowID
		if err := s.sessionRepo.Replace(ctx, sheet, session); err != nil {
			return false, fmt.Errorf("failed to store armed delete: %w", err)
		}
		return true, nil
	}

	sheet.Rows = append(sheet.Rows[:idx], sheet.Rows[idx+1:]...)
	session.ArmedDeleteRowID = ""
	if session.ActiveRowID == rowID {
		session.ActiveRowID = ""
	}

	if err := s.sessionRepo.Replace(ctx, sheet, session); err != nil {
		return false, fmt.Errorf("failed to store row deletion: %w", err)
	}
	return false, nil
}

// ResetAll replaces the entire sheet with two freshly created empty rows and
// clears all transient session state.
func (s *TallyService) ResetAll(ctx context.Context) (domain.TallySheet, error) {
	sheet := domain.TallySheet{Rows: make([]domain.TallyRow, 0, initialRowCount)}
	for i := 0; i < initialRowCount; i++ {
		sheet.Rows = append(sheet.Rows, s.newEmptyRow())
	}

	if err := s.sessionRepo.Replace(ctx, sheet, domain.SessionState{}); err != nil {
		return domain.TallySheet{}, fmt.Errorf("failed to reset sheet: %w", err)
	}
	return sheet.Clone(), nil
}

// parseCountInput normalizes raw user input to a non-negative integer count.
// Integer parse first; fractional input falls back to a float parse truncated
// toward zero; anything unparseable or negative becomes 0.
func parseCountInput(raw string) int64 {
	raw = strings.TrimSpace(raw)

	if v, err := strconv.ParseInt(raw, 10, 64); err == nil {
		if v < 0 {
			return 0
		}
		return v
	}

	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	truncated := math.Trunc(f)
	if truncated <= 0 {
		return 0
	}
	if truncated >= math.MaxInt64 {
		return math.MaxInt64
	}
	return int64(truncated)
}
