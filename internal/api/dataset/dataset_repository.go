package dataset

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/FACorreiaa/go-kemet-travel-planner/app/observability/metrics"
	"github.com/FACorreiaa/go-kemet-travel-planner/internal/types"
)

var _ Repository = (*ExcelRepository)(nil)

// ErrDataLoad marks every failure to produce the attraction table.
var ErrDataLoad = errors.New("dataset unavailable")

// Repository provides the attraction table. The returned slice is shared and
// must not be modified.
type Repository interface {
	Attractions(ctx context.Context) ([]types.AttractionRecord, error)
}

// LoadError reports why the workbook could not be turned into records.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load %s: %v", filepath.Base(e.Path), e.Err)
}

func (e *LoadError) Unwrap() []error {
	return []error{ErrDataLoad, e.Err}
}

// column maps a normalized header to the record field it fills.
type column struct {
	header string
	set    func(r *types.AttractionRecord, v string)
}

var columns = []column{
	{"name", func(r *types.AttractionRecord, v string) { r.Name = v }},
	{"cultural tip", func(r *types.AttractionRecord, v string) { r.CulturalTip = v }},
	{"description", func(r *types.AttractionRecord, v string) { r.Description = v }},
	{"entry fee", func(r *types.AttractionRecord, v string) { r.EntryFee = v }},
	{"address", func(r *types.AttractionRecord, v string) { r.Address = v }},
	{"location", func(r *types.AttractionRecord, v string) { r.Location = v }},
	{"duration", func(r *types.AttractionRecord, v string) { r.Duration = v }},
	{"open time", func(r *types.AttractionRecord, v string) { r.OpenTime = v }},
	{"close time", func(r *types.AttractionRecord, v string) { r.CloseTime = v }},
	{"category", func(r *types.AttractionRecord, v string) { r.Category = v }},
}

// ExcelRepository reads attractions from a workbook on every call.
type ExcelRepository struct {
	path   string
	sheet  string
	logger *slog.Logger
}

// NewExcelRepository reads the named sheet of the workbook at path, or the
// first sheet when sheet is empty.
func NewExcelRepository(path, sheet string, logger *slog.Logger) *ExcelRepository {
	return &ExcelRepository{
		path:   path,
		sheet:  sheet,
		logger: logger,
	}
}

func (r *ExcelRepository) Attractions(ctx context.Context) ([]types.AttractionRecord, error) {
	ctx, span := otel.Tracer("DatasetRepository").Start(ctx, "Attractions", trace.WithAttributes(
		attribute.String("dataset.path", r.path),
	))
	defer span.End()

	l := r.logger.With(slog.String("path", r.path))
	start := time.Now()

	records, err := r.load()
	metrics.Get().DatasetLoadDurationSeconds.Record(ctx, time.Since(start).Seconds(),
		metric.WithAttributes(attribute.Bool("success", err == nil)))
	if err != nil {
		l.ErrorContext(ctx, "Failed to load attraction workbook", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to load dataset")
		return nil, &LoadError{Path: r.path, Err: err}
	}

	metrics.Get().DatasetRecords.Record(ctx, int64(len(records)))
	span.SetAttributes(attribute.Int("dataset.records", len(records)))
	span.SetStatus(codes.Ok, "Dataset loaded")
	l.DebugContext(ctx, "Loaded attraction workbook", slog.Int("records", len(records)))
	return records, nil
}

func (r *ExcelRepository) load() ([]types.AttractionRecord, error) {
	f, err := excelize.OpenFile(r.path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheet := r.sheet
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, errors.New("workbook has no sheets")
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	return recordsFromRows(rows)
}

// recordsFromRows treats the first row as the header.
func recordsFromRows(rows [][]string) ([]types.AttractionRecord, error) {
	if len(rows) == 0 {
		return nil, errors.New("workbook has no header row")
	}

	index := make(map[string]int, len(rows[0]))
	for i, h := range rows[0] {
		key := normalizeHeader(h)
		if _, dup := index[key]; !dup {
			index[key] = i
		}
	}

	var missing []string
	for _, c := range columns {
		if _, ok := index[c.header]; !ok {
			missing = append(missing, c.header)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required columns: %s", strings.Join(missing, ", "))
	}

	records := make([]types.AttractionRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		var rec types.AttractionRecord
		blank := true
		for _, c := range columns {
			v := cell(row, index[c.header])
			if v != "" {
				blank = false
			}
			c.set(&rec, v)
		}
		if blank {
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}

func cell(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return cleanText(row[i])
}

func normalizeHeader(h string) string {
	return strings.ToLower(strings.TrimSpace(h))
}

// cleanText drops line breaks and collapses runs of whitespace to one space.
func cleanText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
