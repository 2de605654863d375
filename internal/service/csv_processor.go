package service

import (
	"bytes"
	"encoding/csv"

	"github.com/lukilot/bawaria-motors-configurator-sub000/internal/logger"
)

// CSVProcessor turns an exported stock feed file into the raw sheet the
// normalizer consumes
type CSVProcessor struct {
	Logger *logger.Logger
}

// NewCSVProcessor creates a new CSV processor
func NewCSVProcessor(logger *logger.Logger) *CSVProcessor {
	return &CSVProcessor{
		Logger: logger,
	}
}

// PrepareCSVReader creates a configured CSV reader from the file content
func (cp *CSVProcessor) PrepareCSVReader(fileContent []byte) *csv.Reader {
	// Manufacturer exports occasionally carry a UTF-8 BOM
	if len(fileContent) >= 3 && fileContent[0] == 0xEF && fileContent[1] == 0xBB && fileContent[2] == 0xBF {
		fileContent = fileContent[3:]
		cp.Logger.Debug("BOM detected and removed from file content")
	}

	reader := csv.NewReader(bytes.NewReader(fileContent))

	reader.LazyQuotes = true       // Allow lazy quotes
	reader.FieldsPerRecord = -1    // Allow variable number of fields
	reader.TrimLeadingSpace = true // Trim leading space

	return reader
}

// ReadSheet reads the whole file into a 2-D grid of cell values
func (cp *CSVProcessor) ReadSheet(fileContent []byte) ([][]string, error) {
	return cp.PrepareCSVReader(fileContent).ReadAll()
}
