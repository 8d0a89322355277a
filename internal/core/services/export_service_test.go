package services_test

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/hongbao-tally/hongbao_tally_app/internal/adapters/memstore"
	"github.com/hongbao-tally/hongbao_tally_app/internal/apperrors"
	"github.com/hongbao-tally/hongbao_tally_app/internal/core/domain"
	portssvc "github.com/hongbao-tally/hongbao_tally_app/internal/core/ports/services"
	"github.com/hongbao-tally/hongbao_tally_app/internal/core/services"
	"github.com/hongbao-tally/hongbao_tally_app/internal/dto"
)

// Ensure the service satisfies its facade.
var _ portssvc.ExportSvcFacade = (*services.ExportService)(nil)

type ExportServiceTestSuite struct {
	suite.Suite
	repo    *memstore.SessionRepository
	catalog *domain.Catalog
	service *services.ExportService
	now     time.Time
}

func (s *ExportServiceTestSuite) SetupTest() {
	s.repo = memstore.NewSessionRepository()
	s.catalog = domain.DefaultCatalog()
	s.now = time.Date(2026, 8, 30, 14, 5, 0, 0, time.UTC)
	s.service = services.NewExportService(s.repo, s.catalog, "TWD", func() time.Time { return s.now })
}

// seedScenario stores the reference sheet: 阿嬤 with 1x1000 + 2x100 (subtotal
// 1200) and an unnamed row with 1x500 (subtotal 500); grand total 1700.
func (s *ExportServiceTestSuite) seedScenario() {
	sheet := domain.TallySheet{Rows: []domain.TallyRow{
		{RowID: "row-1", Name: "阿嬤", Counts: map[int64]int64{1000: 1, 500: 0, 100: 2}},
		{RowID: "row-2", Name: "", Counts: map[int64]int64{1000: 0, 500: 1, 100: 0}},
	}}
	s.Require().NoError(s.repo.Replace(context.Background(), sheet, domain.SessionState{}))
}

func (s *ExportServiceTestSuite) TestExportText_GoldenLayout() {
	s.seedScenario()

	file, err := s.service.ExportText(context.Background())
	s.Require().NoError(err)

	s.Equal("hongbao_20260830_1405.txt", file.Filename)
	s.Equal("text/plain;charset=utf-8", file.MIMEType)

	expected := strings.Join([]string{
		"紅包點鈔表",
		"日期：2026-08-30 14:05",
		"幣別：TWD",
		"面額：1000, 500, 100",
		"",
		"明細：",
		"稱謂/姓名   | 1000張  | 500張   | 100張   | 小計    ",
		"阿嬤        | 1       | 0       | 2       | 1200    ",
		"(未填)      | 0       | 1       | 0       | 500     ",
		strings.Repeat("-", 52),
		"總計        | 1       | 1       | 2       | 1700    ",
		"",
		"備註：張數為鈔票數量；小計/總計為金額（元）。",
		"",
	}, "\n")
	s.Equal(expected, string(file.Content))
}

func (s *ExportServiceTestSuite) TestExportText_Idempotent() {
	s.seedScenario()
	ctx := context.Background()

	first, err := s.service.ExportText(ctx)
	s.Require().NoError(err)
	second, err := s.service.ExportText(ctx)
	s.Require().NoError(err)

	s.Equal(first.Content, second.Content)
	s.Equal(first.Filename, second.Filename)
}

func (s *ExportServiceTestSuite) TestExportJSON_StructureAndTotals() {
	s.seedScenario()

	file, err := s.service.ExportJSON(context.Background())
	s.Require().NoError(err)

	s.Equal("hongbao_20260830_1405.json", file.Filename)
	s.Equal("application/json;charset=utf-8", file.MIMEType)

	var document dto.ExportDocument
	s.Require().NoError(json.Unmarshal(file.Content, &document))

	s.Equal("紅包點鈔表", document.Meta.Title)
	s.Equal("2026-08-30 14:05", document.Meta.Date)
	s.Equal("TWD", document.Meta.Currency)
	s.Require().Len(document.Meta.Denominations, 3)
	s.Equal(int64(1000), document.Meta.Denominations[0].Value)
	s.Equal("1000元", document.Meta.Denominations[0].Label)

	s.Require().Len(document.Rows, 2)
	s.Equal("阿嬤", document.Rows[0].Name)
	s.Equal("(未填)", document.Rows[1].Name)
	s.Equal(int64(1200), document.Rows[0].Subtotal)
	s.Equal(int64(500), document.Rows[1].Subtotal)

	// Every row lists every denomination, zeros included
	for _, row := range document.Rows {
		s.Len(row.Counts, 3)
	}
	s.Equal(int64(0), document.Rows[0].Counts["500"])

	s.Equal(int64(1), document.Totals.Counts["1000"])
	s.Equal(int64(1), document.Totals.Counts["500"])
	s.Equal(int64(2), document.Totals.Counts["100"])
	s.Equal(int64(1700), document.Totals.GrandTotal)

	// Round-trip property: the document's grand total matches a recomputation
	// from its own rows
	var recomputed int64
	for _, row := range document.Rows {
		recomputed += row.Subtotal
	}
	s.Equal(recomputed, document.Totals.GrandTotal)
}

func (s *ExportServiceTestSuite) TestExportJSON_PrettyPrintedWithoutEscaping() {
	s.seedScenario()

	file, err := s.service.ExportJSON(context.Background())
	s.Require().NoError(err)

	content := string(file.Content)
	s.True(strings.HasPrefix(content, "{\n  \"meta\""))
	s.Contains(content, "紅包點鈔表") // non-ASCII kept verbatim, not \u-escaped
	s.NotContains(content, "\\u")
}

func (s *ExportServiceTestSuite) TestExport_EmptySheetRejected() {
	ctx := context.Background()

	_, err := s.service.ExportText(ctx)
	s.ErrorIs(err, apperrors.ErrEmptySheet)

	_, err = s.service.ExportJSON(ctx)
	s.ErrorIs(err, apperrors.ErrEmptySheet)
}

func TestExportServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ExportServiceTestSuite))
}
