package dto

import (
	"fmt"

	"github.com/lukilot/bawaria-motors-configurator-sub000/internal/domain/vehicle"
)

// maxDisplayedImportErrors caps how many row diagnostics consumers render;
// the remainder is summarized as "+N more"
const maxDisplayedImportErrors = 10

// ImportResult is the outcome of normalizing one stock feed sheet: the
// accepted vehicle batch plus import statistics. Admission rejections are
// counted outcomes, not errors.
type ImportResult struct {
	Vehicles       []*vehicle.Vehicle `json:"vehicles"`
	Processed      int                `json:"processed"`
	SkippedStatus  int                `json:"skipped_status"`
	SkippedType    int                `json:"skipped_type"`
	HiddenInternal int                `json:"hidden_internal"`
	Errors         []string           `json:"errors,omitempty"`
}

// DisplayErrors returns at most the first 10 row diagnostics, appending a
// "+N more" summary entry when more were recorded.
func (r *ImportResult) DisplayErrors() []string {
	if len(r.Errors) <= maxDisplayedImportErrors {
		return r.Errors
	}

	display := make([]string, 0, maxDisplayedImportErrors+1)
	display = append(display, r.Errors[:maxDisplayedImportErrors]...)
	display = append(display, fmt.Sprintf("+%d more", len(r.Errors)-maxDisplayedImportErrors))
	return display
}
