package sheets

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"

	"github.com/transgraos/fretelog/internal/config"
	"github.com/transgraos/fretelog/internal/domain/models"
	"github.com/transgraos/fretelog/internal/finance"
)

const reportRange = "Fechamentos!A:M"

// Exporter defines the export operations supported by the spreadsheet
// adapter.
type Exporter interface {
	AppendClosing(ctx context.Context, snapshot models.ClosingSnapshot) error
}

// GoogleSheetExporter implements Exporter using the official Google Sheets
// API.
type GoogleSheetExporter struct {
	service       *sheetsapi.Service
	spreadsheetID string
	logger        *zap.Logger
}

// NewGoogleSheetExporter builds a Google Sheets backed exporter instance.
func NewGoogleSheetExporter(ctx context.Context, cfg config.SheetsConfig, logger *zap.Logger) (Exporter, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	service, err := sheetsapi.NewService(ctx, option.WithCredentialsFile(cfg.CredentialsPath), option.WithScopes(sheetsapi.SpreadsheetsScope))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize sheets client: %w", err)
	}

	return &GoogleSheetExporter{
		service:       service,
		spreadsheetID: cfg.SpreadsheetID,
		logger:        logger,
	}, nil
}

// AppendClosing appends one closing snapshot as a report row.
func (e *GoogleSheetExporter) AppendClosing(ctx context.Context, snapshot models.ClosingSnapshot) error {
	summary := snapshot.Summary

	values := []interface{}{
		snapshot.GeneratedAt.Format(time.RFC3339),
		summary.Granularity,
		summary.PeriodKey,
		summary.PeriodLabel,
		summary.Revenue,
		summary.Cost,
		summary.Result,
		summary.FreightCount,
		snapshot.AvailableCount,
	}
	for _, category := range finance.Categories() {
		values = append(values, summary.CostByCategory[string(category)])
	}

	payload := &sheetsapi.ValueRange{Values: [][]interface{}{values}}

	call := e.service.Spreadsheets.Values.Append(e.spreadsheetID, reportRange, payload).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx)

	if _, err := call.Do(); err != nil {
		return fmt.Errorf("append closing row into range %s: %w", reportRange, err)
	}

	e.logger.Debug("closing row appended to sheet", zap.String("periodo", summary.PeriodKey))
	return nil
}
