package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/hongbao-tally/hongbao_tally_app/internal/adapters/memstore"
	"github.com/hongbao-tally/hongbao_tally_app/internal/apperrors"
	"github.com/hongbao-tally/hongbao_tally_app/internal/core/domain"
	portssvc "github.com/hongbao-tally/hongbao_tally_app/internal/core/ports/services"
	"github.com/hongbao-tally/hongbao_tally_app/internal/core/services"
)

// Ensure the service satisfies its facade.
var _ portssvc.TallySvcFacade = (*services.TallyService)(nil)

type TallyServiceTestSuite struct {
	suite.Suite
	repo    *memstore.SessionRepository
	catalog *domain.Catalog
	service *services.TallyService
	now     time.Time
}

func (s *TallyServiceTestSuite) SetupTest() {
	s.repo = memstore.NewSessionRepository()
	s.catalog = domain.DefaultCatalog()
	s.now = time.Date(2026, 8, 30, 14, 5, 0, 0, time.UTC)
	s.service = services.NewTallyService(s.repo, s.catalog, 2500*time.Millisecond, func() time.Time { return s.now })

	_, err := s.service.ResetAll(context.Background())
	s.Require().NoError(err)
}

func (s *TallyServiceTestSuite) TestResetAll_YieldsTwoEmptyRows() {
	ctx := context.Background()

	// Grow the sheet first so the reset actually shrinks it
	for i := 0; i < 3; i++ {
		_, err := s.service.CreateRow(ctx)
		s.Require().NoError(err)
	}

	sheet, err := s.service.ResetAll(ctx)
	s.Require().NoError(err)
	s.Len(sheet.Rows, 2)

	report, err := s.service.GetSheet(ctx)
	s.Require().NoError(err)
	s.Require().Len(report.Rows, 2)
	for _, rowReport := range report.Rows {
		s.True(rowReport.Subtotal.IsZero())
		s.Empty(rowReport.Row.Name)
	}
	s.True(report.GrandTotal.IsZero())
}

func (s *TallyServiceTestSuite) TestCreateRow_AppendsEmptyRowWithUniqueID() {
	ctx := context.Background()

	first, err := s.service.CreateRow(ctx)
	s.Require().NoError(err)
	second, err := s.service.CreateRow(ctx)
	s.Require().NoError(err)

	s.NotEqual(first.RowID, second.RowID)
	for _, value := range s.catalog.Values() {
		s.Zero(first.Count(value))
	}

	report, err := s.service.GetSheet(ctx)
	s.Require().NoError(err)
	s.Len(report.Rows, 4) // 2 initial + 2 created
	s.Equal(second.RowID, report.Rows[3].Row.RowID)
}

func (s *TallyServiceTestSuite) TestUpdateName_Verbatim() {
	ctx := context.Background()
	row, err := s.service.CreateRow(ctx)
	s.Require().NoError(err)

	updated, err := s.service.UpdateName(ctx, row.RowID, "  阿嬤  ")
	s.Require().NoError(err)
	s.Equal("  阿嬤  ", updated.Name) // no trimming

	_, err = s.service.UpdateName(ctx, "no-such-row", "x")
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *TallyServiceTestSuite) TestSetCount_NormalizesInput() {
	ctx := context.Background()
	row, err := s.service.CreateRow(ctx)
	s.Require().NoError(err)

	cases := []struct {
		raw  string
		want int64
	}{
		{"12", 12},
		{"-5", 0},
		{"3.7", 3},
		{"abc", 0},
		{"", 0},
		{" 7 ", 7},
		{"-0.9", 0},
	}
	for _, tc := range cases {
		updated, err := s.service.SetCount(ctx, row.RowID, 1000, tc.raw)
		s.Require().NoError(err, "raw input %q", tc.raw)
		s.Equal(tc.want, updated.Count(1000), "raw input %q", tc.raw)
	}
}

func (s *TallyServiceTestSuite) TestSetCount_UnknownRowOrDenomination() {
	ctx := context.Background()
	row, err := s.service.CreateRow(ctx)
	s.Require().NoError(err)

	_, err = s.service.SetCount(ctx, "no-such-row", 1000, "1")
	s.ErrorIs(err, apperrors.ErrNotFound)

	_, err = s.service.SetCount(ctx, row.RowID, 999, "1")
	s.ErrorIs(err, apperrors.ErrNotFound)

	// Store unchanged either way
	report, err := s.service.GetSheet(ctx)
	s.Require().NoError(err)
	s.True(report.GrandTotal.IsZero())
}

func (s *TallyServiceTestSuite) TestIncrementCount_TwiceYieldsTwo() {
	ctx := context.Background()
	row, err := s.service.CreateRow(ctx)
	s.Require().NoError(err)

	_, err = s.service.IncrementCount(ctx, row.RowID, 500)
	s.Require().NoError(err)
	updated, err := s.service.IncrementCount(ctx, row.RowID, 500)
	s.Require().NoError(err)

	s.Equal(int64(2), updated.Count(500))

	report, err := s.service.GetSheet(ctx)
	s.Require().NoError(err)
	s.Equal(int64(1000), report.GrandTotal.IntPart()) // 2 x 500
}

func (s *TallyServiceTestSuite) TestQuickAdd_RoutesToActiveRow() {
	ctx := context.Background()
	row, err := s.service.CreateRow(ctx)
	s.Require().NoError(err)

	s.Require().NoError(s.service.ActivateRow(ctx, row.RowID))

	added, err := s.service.QuickAdd(ctx, 1000)
	s.Require().NoError(err)
	s.Equal(row.RowID, added.RowID)
	s.Equal(int64(1), added.Count(1000))
}

func (s *TallyServiceTestSuite) TestQuickAdd_NoActiveRowNotifiesAndLeavesSheetUnchanged() {
	ctx := context.Background()

	before, err := s.service.GetSheet(ctx)
	s.Require().NoError(err)

	_, err = s.service.QuickAdd(ctx, 1000)
	s.ErrorIs(err, apperrors.ErrNoActiveRow)

	after, err := s.service.GetSheet(ctx)
	s.Require().NoError(err)
	s.Equal(before.GrandTotal.IntPart(), after.GrandTotal.IntPart())
	s.Len(after.Rows, len(before.Rows))
	for i := range after.Rows {
		s.True(after.Rows[i].Subtotal.Equal(before.Rows[i].Subtotal))
	}

	notification, err := s.service.GetNotification(ctx)
	s.Require().NoError(err)
	s.Require().NotNil(notification)
	s.Contains(notification.Message, "請先選擇")
}

func (s *TallyServiceTestSuite) TestNotification_ExpiresAfterTTL() {
	ctx := context.Background()

	_, err := s.service.QuickAdd(ctx, 1000)
	s.ErrorIs(err, apperrors.ErrNoActiveRow)

	notification, err := s.service.GetNotification(ctx)
	s.Require().NoError(err)
	s.Require().NotNil(notification)

	s.now = s.now.Add(3 * time.Second)

	notification, err = s.service.GetNotification(ctx)
	s.Require().NoError(err)
	s.Nil(notification)
}

func (s *TallyServiceTestSuite) TestDeleteRow_TwoStepConfirmation() {
	ctx := context.Background()
	row, err := s.service.CreateRow(ctx)
	s.Require().NoError(err)

	armed, err := s.service.DeleteRow(ctx, row.RowID)
	s.Require().NoError(err)
	s.True(armed)

	// Row still present after arming
	report, err := s.service.GetSheet(ctx)
	s.Require().NoError(err)
	s.Equal(row.RowID, report.Session.ArmedDeleteRowID)
	s.GreaterOrEqual(len(report.Rows), 3)

	armed, err = s.service.DeleteRow(ctx, row.RowID)
	s.Require().NoError(err)
	s.False(armed)

	report, err = s.service.GetSheet(ctx)
	s.Require().NoError(err)
	s.Len(report.Rows, 2)
	s.Empty(report.Session.ArmedDeleteRowID)
}

func (s *TallyServiceTestSuite) TestDeleteRow_ArmingIsMutuallyExclusive() {
	ctx := context.Background()
	rowA, err := s.service.CreateRow(ctx)
	s.Require().NoError(err)
	rowB, err := s.service.CreateRow(ctx)
	s.Require().NoError(err)

	armed, err := s.service.DeleteRow(ctx, rowA.RowID)
	s.Require().NoError(err)
	s.True(armed)

	// Arming B disarms A: deleting A afterwards re-arms instead of removing
	armed, err = s.service.DeleteRow(ctx, rowB.RowID)
	s.Require().NoError(err)
	s.True(armed)

	armed, err = s.service.DeleteRow(ctx, rowA.RowID)
	s.Require().NoError(err)
	s.True(armed)
}

func (s *TallyServiceTestSuite) TestDeleteRow_OtherMutationCancelsArmedState() {
	ctx := context.Background()
	row, err := s.service.CreateRow(ctx)
	s.Require().NoError(err)

	armed, err := s.service.DeleteRow(ctx, row.RowID)
	s.Require().NoError(err)
	s.True(armed)

	_, err = s.service.UpdateName(ctx, row.RowID, "keep me")
	s.Require().NoError(err)

	// Armed state was cancelled, so delete arms again rather than removing
	armed, err = s.service.DeleteRow(ctx, row.RowID)
	s.Require().NoError(err)
	s.True(armed)
}

func (s *TallyServiceTestSuite) TestDeleteActiveRow_ClearsActiveReference() {
	ctx := context.Background()
	row, err := s.service.CreateRow(ctx)
	s.Require().NoError(err)

	s.Require().NoError(s.service.ActivateRow(ctx, row.RowID))

	armed, err := s.service.DeleteRow(ctx, row.RowID)
	s.Require().NoError(err)
	s.True(armed)
	armed, err = s.service.DeleteRow(ctx, row.RowID)
	s.Require().NoError(err)
	s.False(armed)

	report, err := s.service.GetSheet(ctx)
	s.Require().NoError(err)
	s.Empty(report.Session.ActiveRowID)

	// A subsequent quick-add is rejected and leaves all counts unchanged
	_, err = s.service.QuickAdd(ctx, 100)
	s.ErrorIs(err, apperrors.ErrNoActiveRow)

	after, err := s.service.GetSheet(ctx)
	s.Require().NoError(err)
	s.True(after.GrandTotal.IsZero())
}

func (s *TallyServiceTestSuite) TestGetSheet_DerivedTotalsScenario() {
	ctx := context.Background()

	report, err := s.service.GetSheet(ctx)
	s.Require().NoError(err)
	s.Require().Len(report.Rows, 2)
	row1 := report.Rows[0].Row.RowID
	row2 := report.Rows[1].Row.RowID

	_, err = s.service.UpdateName(ctx, row1, "Grandma")
	s.Require().NoError(err)
	_, err = s.service.SetCount(ctx, row1, 1000, "1")
	s.Require().NoError(err)
	_, err = s.service.SetCount(ctx, row1, 100, "2")
	s.Require().NoError(err)
	_, err = s.service.SetCount(ctx, row2, 500, "1")
	s.Require().NoError(err)

	report, err = s.service.GetSheet(ctx)
	s.Require().NoError(err)
	s.Equal(int64(1200), report.Rows[0].Subtotal.IntPart())
	s.Equal(int64(500), report.Rows[1].Subtotal.IntPart())
	s.Equal(int64(1), report.ColumnTotals[1000])
	s.Equal(int64(1), report.ColumnTotals[500])
	s.Equal(int64(2), report.ColumnTotals[100])
	s.Equal(int64(1700), report.GrandTotal.IntPart())
}

func TestTallyServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TallyServiceTestSuite))
}
