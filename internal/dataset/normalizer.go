package dataset

import (
	"strconv"
	"strings"
	"time"
)

const (
	// Salary bounds applied after coercion. Rows outside the range are
	// treated as outliers and dropped.
	SalaryFloorUSD   = 10_000
	SalaryCeilingUSD = 500_000
)

var postingDateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
	time.RFC3339,
}

// Normalize coerces and filters raw rows into the immutable dataset.
//
// The order is load-bearing: salary is coerced before the null-drop, and the
// range filter runs only on rows that survived the null-drop, so a
// non-numeric salary can never pass the range check.
func Normalize(raw []rawRecord) []Record {
	records := make([]Record, 0, len(raw))
	for _, r := range raw {
		salary, salaryOK := parseSalary(r.SalaryUSD)

		rec := Record{
			JobTitle:        r.JobTitle,
			SalaryUSD:       salary,
			ExperienceLevel: strings.ToUpper(r.ExperienceLevel),
			Industry:        r.Industry,
			CompanyLocation: r.CompanyLocation,
			Country:         r.CompanyLocation,
			RemoteRatio:     parseRemoteRatio(r.RemoteRatio),
			Skills:          ParseSkills(r.RequiredSkills),
			PostingDate:     parsePostingDate(r.PostingDate),
		}

		// drop rows missing critical data
		if rec.JobTitle == "" || !salaryOK || rec.Industry == "" {
			continue
		}

		// outlier filter
		if rec.SalaryUSD < SalaryFloorUSD || rec.SalaryUSD > SalaryCeilingUSD {
			continue
		}

		records = append(records, rec)
	}
	return records
}

// ParseSkills splits the raw delimited skill text into trimmed, lower-cased
// tokens. Tokens of one character or less are dropped. Duplicates are kept:
// a skill listed twice in one posting counts twice in demand aggregation.
func ParseSkills(s string) []string {
	skills := []string{}
	if strings.TrimSpace(s) == "" {
		return skills
	}
	for _, tok := range strings.Split(s, ",") {
		tok = strings.TrimSpace(tok)
		if len(tok) <= 1 {
			continue
		}
		skills = append(skills, strings.ToLower(tok))
	}
	return skills
}

func parseSalary(s string) (float64, bool) {
	if s == "" {
		return 0, false
	}
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimPrefix(s, "$")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func parseRemoteRatio(s string) float64 {
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// parsePostingDate returns nil for anything unparseable; a bad date never
// drops the row.
func parsePostingDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	for _, layout := range postingDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}
