package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/lukilot/bawaria-motors-configurator-sub000/internal/api/dto"
	"github.com/lukilot/bawaria-motors-configurator-sub000/internal/domain/vehicle"
	ierr "github.com/lukilot/bawaria-motors-configurator-sub000/internal/errors"
	"github.com/lukilot/bawaria-motors-configurator-sub000/internal/types"
	"github.com/shopspring/decimal"
)

// StockImportService normalizes one raw manufacturer stock sheet into a
// batch of vehicles plus import statistics
type StockImportService interface {
	ImportSheet(ctx context.Context, sheet [][]string) (*dto.ImportResult, error)
}

type stockImportService struct {
	ServiceParams
}

func NewStockImportService(serviceParams ServiceParams) StockImportService {
	return &stockImportService{
		ServiceParams: serviceParams,
	}
}

// logicalField enumerates the columns the feed is expected, but not
// required, to carry
type logicalField int

const (
	fieldVIN logicalField = iota
	fieldStatusCode
	fieldSalesStatus
	fieldModelCode
	fieldModelName
	fieldBodyGroup
	fieldColorCode
	fieldUpholstery
	fieldOptionCodes
	fieldProcessingType
	fieldProductionDate
	fieldReservation
)

// fieldAliases holds the ordered alias patterns per logical field. For each
// field the aliases are tried in order and the first case-insensitive
// substring match against a header label wins. Alias sets are kept disjoint
// so two fields cannot silently claim the same column.
var fieldAliases = map[logicalField][]string{
	fieldVIN:            {"vin"},
	fieldStatusCode:     {"order status", "status code"},
	fieldSalesStatus:    {"sales status"},
	fieldModelCode:      {"model code"},
	fieldModelName:      {"model description", "model name"},
	fieldBodyGroup:      {"body group", "series"},
	fieldColorCode:      {"colour code", "color code", "paint"},
	fieldUpholstery:     {"upholstery"},
	fieldOptionCodes:    {"option"},
	fieldProcessingType: {"processing type", "proc type"},
	fieldProductionDate: {"actual production date", "production date"},
	fieldReservation:    {"reservation", "reserved"},
}

// maxHeaderScanRows bounds how deep into the sheet the header row is looked
// for before falling back to row 0
const maxHeaderScanRows = 20

func (s *stockImportService) ImportSheet(ctx context.Context, sheet [][]string) (*dto.ImportResult, error) {
	if len(sheet) == 0 {
		return &dto.ImportResult{}, nil
	}

	headerRow, degraded := findHeaderRow(sheet)
	if degraded {
		s.Logger.Warnw("no header row detected, falling back to row 0",
			"scanned_rows", min(len(sheet), maxHeaderScanRows))
	}

	columns := mapColumns(sheet[headerRow])
	if _, ok := columns[fieldVIN]; !ok {
		// The only fatal condition: without a VIN column no row can be
		// identified, so the operator has to fix the source file.
		return nil, ierr.NewError("VIN column not found in stock sheet").
			WithHint("The detected header row carries no recognizable VIN column").
			WithReportableDetails(map[string]any{
				"header_row": headerRow,
				"headers":    sheet[headerRow],
			}).
			Mark(ierr.ErrValidation)
	}

	result := &dto.ImportResult{}
	for i := headerRow + 1; i < len(sheet); i++ {
		if err := s.processRow(sheet[i], columns, result); err != nil {
			// Row-level isolation: one malformed row must not abort the
			// batch. Row references are 1-based.
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: %v", i+1, err))
		}
	}

	s.Logger.Infow("stock sheet normalized",
		"processed", result.Processed,
		"skipped_status", result.SkippedStatus,
		"skipped_type", result.SkippedType,
		"hidden_internal", result.HiddenInternal,
		"errors", len(result.Errors),
	)

	return result, nil
}

// findHeaderRow scans at most the first 20 rows for the first row whose
// stringified contents contain both a VIN-like marker and a status-like or
// model-like marker. The second return value reports degraded mode (row 0
// fallback).
func findHeaderRow(sheet [][]string) (int, bool) {
	limit := min(len(sheet), maxHeaderScanRows)
	for i := 0; i < limit; i++ {
		joined := strings.ToLower(strings.Join(sheet[i], " "))
		if strings.Contains(joined, "vin") &&
			(strings.Contains(joined, "status") || strings.Contains(joined, "model")) {
			return i, false
		}
	}
	return 0, true
}

// mapColumns resolves each logical field to a column index once per sheet.
// A field whose aliases match no label is simply absent from the map; row
// access fabricates an empty value for it and never fails.
func mapColumns(header []string) map[logicalField]int {
	labels := make([]string, len(header))
	for i, cell := range header {
		labels[i] = strings.ToLower(strings.TrimSpace(cell))
	}

	columns := make(map[logicalField]int, len(fieldAliases))
	for field, aliases := range fieldAliases {
		for _, alias := range aliases {
			found := false
			for idx, label := range labels {
				if strings.Contains(label, alias) {
					columns[field] = idx
					found = true
					break
				}
			}
			if found {
				break
			}
		}
	}
	return columns
}

// processRow admits or rejects one feed row. Admission rejections are
// counted outcomes; only genuinely malformed rows return an error. A recover
// boundary keeps any panic during value coercion row-local.
func (s *stockImportService) processRow(row []string, columns map[logicalField]int, result *dto.ImportResult) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()

	cell := func(field logicalField) string {
		idx, ok := columns[field]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	vin := cell(fieldVIN)
	if vin == "" {
		// blank filler rows are expected in manufacturer exports
		return nil
	}

	statusCode, convErr := strconv.Atoi(cell(fieldStatusCode))
	if convErr != nil {
		statusCode = 0
	}
	if statusCode < types.MinSellableStatusCode {
		result.SkippedStatus++
		return nil
	}

	processingType := types.ProcessingType(strings.ToUpper(cell(fieldProcessingType)))
	visibility, allowed := processingType.Classify()
	if !allowed {
		result.SkippedType++
		return nil
	}
	if visibility == types.VisibilityInternal {
		result.HiddenInternal++
	}

	optionCodes, parseErr := vehicle.ParseOptionCodes(cell(fieldOptionCodes))
	if parseErr != nil {
		return parseErr
	}

	v := &vehicle.Vehicle{
		VIN:            vin,
		StatusCode:     statusCode,
		ModelCode:      cell(fieldModelCode),
		ModelName:      cell(fieldModelName),
		BodyGroup:      cell(fieldBodyGroup),
		ColorCode:      cell(fieldColorCode),
		UpholsteryCode: cell(fieldUpholstery),
		OptionCodes:    optionCodes,
		// this feed format carries no list price; pricing for such units is
		// established out-of-band
		ListPrice:      decimal.Zero,
		ProductionDate: cell(fieldProductionDate),
		SalesStatus:    cell(fieldSalesStatus),
		Reservation:    cell(fieldReservation),
		Visibility:     visibility,
		ProcessingType: processingType,
	}

	result.Processed++
	result.Vehicles = append(result.Vehicles, v)
	return nil
}
