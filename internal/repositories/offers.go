package repositories

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"linku/linku-api/internal/models"
)

// OfferRepository parses the historical admissions table. Load re-reads
// the source on every call; the table is small and callers never share
// a cursor.
type OfferRepository interface {
	Load() ([]models.OfferRecord, error)
}

type csvOfferRepository struct {
	path string
}

func NewOfferRepository(path string) OfferRepository {
	return &csvOfferRepository{path: path}
}

func (r *csvOfferRepository) Load() ([]models.OfferRecord, error) {
	f, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open admissions table: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse admissions table: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("admissions table is empty")
	}

	cols, err := columnIndex(rows[0])
	if err != nil {
		return nil, err
	}

	// The sheet export carries a metadata line directly under the
	// header; it is never a data row.
	body := rows[1:]
	if len(body) > 0 {
		body = body[1:]
	}

	var records []models.OfferRecord
	for _, row := range body {
		avg, err := strconv.ParseFloat(strings.TrimSpace(field(row, cols.average)), 64)
		if err != nil {
			// Non-numeric averages are excluded entirely, never imputed.
			continue
		}
		records = append(records, models.OfferRecord{
			University:  strings.TrimSpace(field(row, cols.university)),
			ProgramName: strings.TrimSpace(field(row, cols.program)),
			Decision:    strings.TrimSpace(field(row, cols.decision)),
			Top6Average: avg,
			SuppApp:     field(row, cols.suppApp),
			SuppNotes:   field(row, cols.suppNotes),
			Comments:    field(row, cols.comments),
		})
	}
	return records, nil
}

type offerColumns struct {
	university int
	program    int
	decision   int
	average    int
	suppApp    int
	suppNotes  int
	comments   int
}

func columnIndex(header []string) (offerColumns, error) {
	find := func(name string) int {
		for i, h := range header {
			if strings.EqualFold(strings.TrimSpace(h), name) {
				return i
			}
		}
		return -1
	}

	cols := offerColumns{
		university: find("University"),
		program:    find("Program name"),
		decision:   find("Decision"),
		average:    find("Top 6 Average"),
		suppApp:    find("Supp App?"),
		suppNotes:  find("Notable info from supp app"),
		comments:   find("Comments"),
	}

	if cols.university == -1 || cols.program == -1 || cols.decision == -1 || cols.average == -1 {
		return offerColumns{}, fmt.Errorf("admissions table is missing required columns")
	}
	return cols, nil
}

func field(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}
