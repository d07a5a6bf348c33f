package ingest

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"bross/domain/trial"
	"bross/internal/errors"
)

// DataReader loads a two-column binary outcome matrix from Excel or CSV files.
// Column one is the response to treatment A, column two the response to B.
type DataReader struct {
	filePath string
	fileType string // "xlsx" or "csv"
}

// NewDataReader creates a reader; the format is chosen from the file extension
func NewDataReader(filePath string) *DataReader {
	ext := strings.ToLower(filepath.Ext(filePath))
	fileType := "xlsx"
	if ext == ".csv" {
		fileType = "csv"
	}
	return &DataReader{filePath: filePath, fileType: fileType}
}

// ReadPairs implements ports.PairReader
func (r *DataReader) ReadPairs() (trial.PairSequence, error) {
	log.Printf("[DataReader] Reading %s file: %s", r.fileType, r.filePath)

	if _, err := os.Stat(r.filePath); os.IsNotExist(err) {
		return nil, errors.InvalidInput(
			fmt.Sprintf("%s file not found: %s", strings.ToUpper(r.fileType), r.filePath))
	}

	var rows [][]string
	var err error
	switch r.fileType {
	case "csv":
		rows, err = r.readCSVRows()
	case "xlsx":
		rows, err = r.readExcelRows()
	default:
		return nil, errors.InvalidInput(fmt.Sprintf("unsupported file type: %s", r.fileType))
	}
	if err != nil {
		return nil, err
	}

	return parsePairs(rows)
}

func (r *DataReader) readCSVRows() ([][]string, error) {
	f, err := os.Open(r.filePath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open CSV file")
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read CSV rows")
	}
	return rows, nil
}

func (r *DataReader) readExcelRows() ([][]string, error) {
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open Excel file")
	}
	defer f.Close()

	rows, err := f.GetRows("Sheet1")
	if err != nil {
		return nil, errors.Wrap(err, "failed to read Sheet1")
	}
	return rows, nil
}

// parsePairs converts raw rows to pairs. A single leading non-numeric row is
// treated as a header; blank rows are skipped.
func parsePairs(rows [][]string) (trial.PairSequence, error) {
	pairs := make(trial.PairSequence, 0, len(rows))
	for i, row := range rows {
		if isBlank(row) {
			continue
		}
		if len(row) < 2 {
			return nil, errors.InvalidInput(
				fmt.Sprintf("row %d: expected two columns, got %d", i+1, len(row)))
		}

		a, errA := parseBinary(row[0])
		b, errB := parseBinary(row[1])
		if errA != nil || errB != nil {
			if i == 0 && len(pairs) == 0 {
				continue // header row
			}
			return nil, errors.InvalidInput(
				fmt.Sprintf("row %d: values must be 0 or 1, got %q and %q", i+1, row[0], row[1]))
		}
		pairs = append(pairs, trial.Pair{A: a, B: b})
	}

	if len(pairs) == 0 {
		return nil, errors.InvalidInput("no outcome rows found")
	}
	log.Printf("[DataReader] Loaded %d pairs (%d informative)", len(pairs), trial.CountInformative(pairs))
	return pairs, nil
}

func parseBinary(cell string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(cell))
	if err != nil {
		return 0, err
	}
	if v != 0 && v != 1 {
		return 0, fmt.Errorf("value %d outside {0,1}", v)
	}
	return v, nil
}

func isBlank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
