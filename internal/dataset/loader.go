package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"career-compass/internal/apperr"
)

// Load reads every source in declaration order and concatenates their rows.
// Row order within a source is preserved. Any missing, unreadable or
// schema-incomplete source fails the whole load: the caller gets an empty
// dataset plus a descriptive LoadFailed error, and downstream queries answer
// with their no-data results instead of panicking.
func Load(paths ...string) ([]Record, error) {
	if len(paths) == 0 {
		return nil, apperr.LoadFailed("no dataset sources configured", nil)
	}

	var raw []rawRecord
	for _, path := range paths {
		rows, err := loadSource(path)
		if err != nil {
			return nil, apperr.LoadFailed(fmt.Sprintf("load dataset source %q", path), err)
		}
		raw = append(raw, rows...)
	}

	return Normalize(raw), nil
}

func loadSource(path string) ([]rawRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read CSV header: %w", err)
	}

	cols, err := mapColumns(headers)
	if err != nil {
		return nil, err
	}

	var rows []rawRecord
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// skip structurally broken rows, keep the source
			continue
		}

		rows = append(rows, rawRecord{
			JobTitle:        cell(row, cols["job_title"]),
			SalaryUSD:       cell(row, cols["salary_usd"]),
			ExperienceLevel: cell(row, cols["experience_level"]),
			Industry:        cell(row, cols["industry"]),
			CompanyLocation: cell(row, cols["company_location"]),
			RemoteRatio:     cell(row, cols["remote_ratio"]),
			RequiredSkills:  cell(row, cols["required_skills"]),
			PostingDate:     cell(row, cols["posting_date"]),
		})
	}

	return rows, nil
}

// mapColumns resolves header names to column indexes and checks that every
// required column exists in the source.
func mapColumns(headers []string) (map[string]int, error) {
	cols := make(map[string]int, len(headers))
	for i, h := range headers {
		cols[toSnakeCase(strings.TrimSpace(h))] = i
	}

	var missing []string
	for _, c := range requiredColumns {
		if _, ok := cols[c]; !ok {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required columns: %s", strings.Join(missing, ", "))
	}

	return cols, nil
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// toSnakeCase converts "Company Location" → "company_location".
func toSnakeCase(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, "-", "_")
	return s
}
