package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/hongbao-tally/hongbao_tally_app/internal/apperrors"
	"github.com/hongbao-tally/hongbao_tally_app/internal/core/domain"
	portsrepo "github.com/hongbao-tally/hongbao_tally_app/internal/core/ports/repositories"
	"github.com/hongbao-tally/hongbao_tally_app/internal/dto"
	"github.com/hongbao-tally/hongbao_tally_app/internal/utils"
	"github.com/hongbao-tally/hongbao_tally_app/internal/utils/tallying"
	"github.com/hongbao-tally/hongbao_tally_app/internal/utils/textwidth"
)

const (
	exportTitle          = "紅包點鈔表"
	exportNote           = "備註：張數為鈔票數量；小計/總計為金額（元）。"
	blankNamePlaceholder = "(未填)"
	totalsLabel          = "總計"

	textMIMEType = "text/plain;charset=utf-8"
	jsonMIMEType = "application/json;charset=utf-8"

	// Column widths in display columns (CJK glyphs count as 2).
	nameColumnWidth = 12
	numColumnWidth  = 8
)

// ExportService renders the current sheet into downloadable documents.
// Given the same sheet and clock instant both renderers are deterministic.
type ExportService struct {
	sessionRepo  portsrepo.SessionRepositoryFacade
	catalog      *domain.Catalog
	currencyCode string
	now          func() time.Time
}

// NewExportService creates an ExportService. The clock is injected so tests
// can pin the timestamp fields.
func NewExportService(sessionRepo portsrepo.SessionRepositoryFacade, catalog *domain.Catalog, currencyCode string, now func() time.Time) *ExportService {
	if now == nil {
		now = time.Now
	}
	return &ExportService{
		sessionRepo:  sessionRepo,
		catalog:      catalog,
		currencyCode: currencyCode,
		now:          now,
	}
}

// exportTimestamps derives the display and filename-safe forms from the same
// instant so they can never disagree.
func exportTimestamps(t time.Time) (display, compact string) {
	return t.Format("2006-01-02 15:04"), t.Format("20060102_1504")
}

// ExportText renders the fixed-width plain-text report.
func (s *ExportService) ExportText(ctx context.Context) (*domain.ExportFile, error) {
	sheet, _, err := s.sessionRepo.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read session snapshot: %w", err)
	}
	if len(sheet.Rows) == 0 {
		return nil, apperrors.ErrEmptySheet
	}

	display, compact := exportTimestamps(s.now())
	denominations := s.catalog.Denominations()

	var b strings.Builder
	b.WriteString(exportTitle + "\n")
	b.WriteString("日期：" + display + "\n")
	b.WriteString("幣別：" + s.currencyCode + "\n")

	values := make([]string, len(denominations))
	for i, d := range denominations {
		values[i] = strconv.FormatInt(d.Value, 10)
	}
	b.WriteString("面額：" + strings.Join(values, ", ") + "\n\n")
	b.WriteString("明細：\n")

	// Header
	header := textwidth.PadRight("稱謂/姓名", nameColumnWidth)
	for _, d := range denominations {
		header += "| " + textwidth.PadRight(fmt.Sprintf("%d張", d.Value), numColumnWidth)
	}
	header += "| " + textwidth.PadRight("小計", numColumnWidth)
	b.WriteString(header + "\n")

	// Rows
	for _, row := range sheet.Rows {
		name := row.Name
		if name == "" {
			name = blankNamePlaceholder
		}
		line := textwidth.PadRight(name, nameColumnWidth)
		for _, d := range denominations {
			line += "| " + textwidth.PadRight(strconv.FormatInt(row.Count(d.Value), 10), numColumnWidth)
		}
		subtotal := utils.FormatAmount(tallying.RowTotal(s.catalog, row))
		line += "| " + textwidth.PadRight(subtotal, numColumnWidth)
		b.WriteString(line + "\n")
	}

	// Separator spanning the full rendered width
	totalWidth := nameColumnWidth + (len(denominations)+1)*(numColumnWidth+2)
	b.WriteString(strings.Repeat("-", totalWidth) + "\n")

	// Totals line
	totalLine := textwidth.PadRight(totalsLabel, nameColumnWidth)
	for _, d := range denominations {
		totalLine += "| " + textwidth.PadRight(strconv.FormatInt(tallying.ColumnTotal(sheet.Rows, d.Value), 10), numColumnWidth)
	}
	grand := utils.FormatAmount(tallying.GrandTotal(s.catalog, sheet.Rows))
	totalLine += "| " + textwidth.PadRight(grand, numColumnWidth)
	b.WriteString(totalLine + "\n\n")

	b.WriteString(exportNote + "\n")

	return &domain.ExportFile{
		Filename: fmt.Sprintf("hongbao_%s.txt", compact),
		MIMEType: textMIMEType,
		Content:  []byte(b.String()),
	}, nil
}

// ExportJSON renders the structured document: 2-space indentation, UTF-8,
// no HTML escaping of non-ASCII content.
func (s *ExportService) ExportJSON(ctx context.Context) (*domain.ExportFile, error) {
	sheet, _, err := s.sessionRepo.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read session snapshot: %w", err)
	}
	if len(sheet.Rows) == 0 {
		return nil, apperrors.ErrEmptySheet
	}

	display, compact := exportTimestamps(s.now())
	document := s.buildDocument(sheet, display)

	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(document); err != nil {
		return nil, fmt.Errorf("failed to encode export document: %w", err)
	}
	content := bytes.TrimRight(buf.Bytes(), "\n")

	return &domain.ExportFile{
		Filename: fmt.Sprintf("hongbao_%s.json", compact),
		MIMEType: jsonMIMEType,
		Content:  content,
	}, nil
}

// buildDocument assembles the structured export with a count entry for every
// catalog denomination in every row, zero or not.
func (s *ExportService) buildDocument(sheet domain.TallySheet, display string) dto.ExportDocument {
	denominations := s.catalog.Denominations()

	meta := dto.ExportMeta{
		Title:         exportTitle,
		Date:          display,
		Currency:      s.currencyCode,
		Denominations: make([]dto.ExportDenomination, len(denominations)),
	}
	for i, d := range denominations {
		meta.Denominations[i] = dto.ExportDenomination{Value: d.Value, Label: d.Label}
	}

	rows := make([]dto.ExportRow, len(sheet.Rows))
	for i, row := range sheet.Rows {
		name := row.Name
		if name == "" {
			name = blankNamePlaceholder
		}
		counts := make(map[string]int64, len(denominations))
		for _, d := range denominations {
			counts[strconv.FormatInt(d.Value, 10)] = row.Count(d.Value)
		}
		rows[i] = dto.ExportRow{
			Name:     name,
			Counts:   counts,
			Subtotal: utils.AmountToInt64(tallying.RowTotal(s.catalog, row)),
		}
	}

	totals := dto.ExportTotals{
		Counts:     make(map[string]int64, len(denominations)),
		GrandTotal: utils.AmountToInt64(tallying.GrandTotal(s.catalog, sheet.Rows)),
	}
	for _, d := range denominations {
		totals.Counts[strconv.FormatInt(d.Value, 10)] = tallying.ColumnTotal(sheet.Rows, d.Value)
	}

	return dto.ExportDocument{Meta: meta, Rows: rows, Totals: totals}
}
