package services

import (
	"context"

	"github.com/hongbao-tally/hongbao_tally_app/internal/core/domain"
)

// ExportSvcFacade renders the current sheet into downloadable documents.
// Both renderers are deterministic given the same sheet and clock instant,
// and both fail with ErrEmptySheet when the sheet has no rows.
type ExportSvcFacade interface {
	// ExportText renders the fixed-width plain-text report.
	ExportText(ctx context.Context) (*domain.ExportFile, error)

	// ExportJSON renders the structured document.
	ExportJSON(ctx context.Context) (*domain.ExportFile, error)
}
