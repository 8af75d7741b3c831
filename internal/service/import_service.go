package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"

	"github.com/gradehub/resultportal-backend/internal/model"
)

// ErrWorkbookUnreadable signals a file that could not be opened as a
// spreadsheet at all.
var ErrWorkbookUnreadable = errors.New("workbook could not be read")

// maxSubjectSlots is the fixed number of repeated subject column groups in
// the upload template.
const maxSubjectSlots = 25

// excelEpoch is the serial-date epoch used by Excel (with the 1900 leap-year
// bug folded in).
var excelEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// ImportReport summarizes one ingestion run. Row failures are isolated and
// accumulated; they never abort the batch.
type ImportReport struct {
	Imported int      `json:"imported"`
	Errors   []string `json:"errors"`
}

// ImportService ingests spreadsheet uploads into the record store.
type ImportService struct {
	store ResultStore
	log   zerolog.Logger
}

// NewImportService creates a new ImportService.
func NewImportService(store ResultStore, log zerolog.Logger) *ImportService {
	return &ImportService{
		store: store,
		log:   log.With().Str("component", "import_service").Logger(),
	}
}

// Ingest parses a workbook and upserts one record per valid row, keyed by
// roll number. The first row of each sheet names the columns; expected
// headers are rollNo, name, dob, course and subjectCode{i},
// subjectSemester{i}, subjectGrade{i} for i = 1..25.
func (s *ImportService) Ingest(ctx context.Context, r io.Reader) (*ImportReport, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWorkbookUnreadable, err)
	}
	defer f.Close()

	report := &ImportReport{Errors: []string{}}

	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			report.Errors = append(report.Errors, fmt.Sprintf("sheet %q: %v", sheet, err))
			continue
		}
		if len(rows) < 2 {
			continue // Header only, or empty sheet.
		}

		headers := headerIndex(rows[0])

		for i, row := range rows[1:] {
			rowNum := i + 2 // 1-based, after the header row.

			if blankRow(row) {
				continue
			}

			rec, err := parseRow(headers, row)
			if err != nil {
				report.Errors = append(report.Errors, fmt.Sprintf("sheet %q row %d: %v", sheet, rowNum, err))
				continue
			}

			if _, err := s.store.Upsert(ctx, rec); err != nil {
				s.log.Error().Err(err).Str("roll_no", rec.RollNo).Msg("row upsert failed")
				report.Errors = append(report.Errors, fmt.Sprintf("sheet %q row %d: save failed", sheet, rowNum))
				continue
			}
			report.Imported++
		}
	}

	s.log.Info().
		Int("imported", report.Imported).
		Int("errors", len(report.Errors)).
		Msg("workbook ingested")

	return report, nil
}

// parseRow maps one spreadsheet row to a record. Blank required scalars are
// row errors; subject slots are consumed in order until the first blank
// subject code, and anything after it is ignored.
func parseRow(headers map[string]int, row []string) (*model.ResultRecord, error) {
	rollNo := cell(headers, row, "rollNo")
	name := cell(headers, row, "name")
	dob := cell(headers, row, "dob")
	course := cell(headers, row, "course")

	switch {
	case rollNo == "":
		return nil, errors.New("missing rollNo")
	case name == "":
		return nil, errors.New("missing name")
	case dob == "":
		return nil, errors.New("missing dob")
	case course == "":
		return nil, errors.New("missing course")
	}

	var subjects []model.SubjectGrade
	for i := 1; i <= maxSubjectSlots; i++ {
		code := cell(headers, row, fmt.Sprintf("subjectCode%d", i))
		if code == "" {
			break
		}
		subjects = append(subjects, model.SubjectGrade{
			Code:     code,
			Semester: cell(headers, row, fmt.Sprintf("subjectSemester%d", i)),
			Grade:    cell(headers, row, fmt.Sprintf("subjectGrade%d", i)),
		})
	}
	if len(subjects) == 0 {
		return nil, errors.New("no subject entries")
	}

	return &model.ResultRecord{
		RollNo:   rollNo,
		Name:     name,
		DOB:      normalizeDOB(dob),
		Course:   course,
		Subjects: subjects,
	}, nil
}

// headerIndex maps trimmed header names from the first row to their column
// position.
func headerIndex(header []string) map[string]int {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.TrimSpace(h)
		if h != "" {
			idx[h] = i
		}
	}
	return idx
}

func cell(headers map[string]int, row []string, name string) string {
	i, ok := headers[name]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func blankRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// normalizeDOB converts an Excel serial-number date cell to YYYY-MM-DD.
// Non-numeric values are kept as-is; the dob is a lookup credential and
// must round-trip exactly with what students enter.
func normalizeDOB(raw string) string {
	serial, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return raw
	}
	return excelEpoch.AddDate(0, 0, int(serial)).Format("2006-01-02")
}
