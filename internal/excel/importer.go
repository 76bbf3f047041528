package excel

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/example/vocabcli/pkg/models"
)

// TopicStore is the storage surface the importer writes through
type TopicStore interface {
	TopicExists(topic string) bool
	Append(topic string, item models.VocabularyItem) error
}

// ImportConfig defines the import configuration
type ImportConfig struct {
	FilePath          string // Path to the Excel or CSV file
	WordColumn        string // Column with the word
	TranslationColumn string // Column with the translation
	ContextsColumn    string // Column with semicolon-separated context sentences
	SheetName         string // Name of the sheet to import
	StartRow          int    // The row to start importing from (1-based index)
}

// DefaultImportConfig returns the default import configuration
func DefaultImportConfig() ImportConfig {
	return ImportConfig{
		WordColumn:        "A",
		TranslationColumn: "B",
		ContextsColumn:    "C",
		SheetName:         "Sheet1",
		StartRow:          2, // By default, start from the second row (skip header)
	}
}

// ImportResult holds the result of an import operation
type ImportResult struct {
	TotalProcessed int
	Created        int
	Skipped        int
	Errors         []string
}

// ImportWords imports vocabulary items from an Excel or CSV file into an
// existing topic. Imported items start with a memorization score of zero.
func ImportWords(store TopicStore, topic string, config ImportConfig) (*ImportResult, error) {
	if !store.TopicExists(topic) {
		return nil, fmt.Errorf("topic %s does not exist", topic)
	}

	// Check the file extension
	var rows [][]string
	var err error
	switch ext := strings.ToLower(filepath.Ext(config.FilePath)); ext {
	case ".xlsx":
		rows, err = readExcelRows(config)
	case ".csv":
		rows, err = readCSVRows(config)
	default:
		return nil, fmt.Errorf("unsupported file format: %s", ext)
	}
	if err != nil {
		return nil, err
	}

	wordIdx, err := columnIndex(config.WordColumn)
	if err != nil {
		return nil, err
	}
	translationIdx, err := columnIndex(config.TranslationColumn)
	if err != nil {
		return nil, err
	}
	contextsIdx, err := columnIndex(config.ContextsColumn)
	if err != nil {
		return nil, err
	}

	result := &ImportResult{}
	for i, row := range rows {
		rowNum := i + 1
		if rowNum < config.StartRow {
			continue
		}
		result.TotalProcessed++

		word := strings.TrimSpace(cell(row, wordIdx))
		translation := strings.TrimSpace(cell(row, translationIdx))
		if word == "" || translation == "" {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: word or translation is empty", rowNum))
			continue
		}

		item := models.VocabularyItem{
			Word:        word,
			Translation: translation,
			Contexts:    splitContexts(cell(row, contextsIdx)),
		}
		if err := store.Append(topic, item); err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: %v", rowNum, err))
			continue
		}
		result.Created++
	}

	return result, nil
}

// readExcelRows loads all rows of the configured sheet
func readExcelRows(config ImportConfig) ([][]string, error) {
	f, err := excelize.OpenFile(config.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(config.SheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %v", config.SheetName, err)
	}
	return rows, nil
}

// readCSVRows loads all records from a CSV file
func readCSVRows(config ImportConfig) ([][]string, error) {
	f, err := os.Open(config.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %v", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	var rows [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV file: %v", err)
		}
		rows = append(rows, record)
	}
	return rows, nil
}

// columnIndex converts a column letter like "A" to a zero-based index
func columnIndex(column string) (int, error) {
	n, err := excelize.ColumnNameToNumber(column)
	if err != nil {
		return 0, fmt.Errorf("invalid column %q: %v", column, err)
	}
	return n - 1, nil
}

// cell returns the value at idx, or "" when the row is shorter
func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

// splitContexts splits a cell with semicolon-separated sentences
func splitContexts(raw string) []string {
	contexts := []string{}
	for _, part := range strings.Split(raw, ";") {
		if s := strings.TrimSpace(part); s != "" {
			contexts = append(contexts, s)
		}
	}
	return contexts
}
