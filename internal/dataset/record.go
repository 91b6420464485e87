package dataset

import "time"

// Record is one normalized job posting. The slice produced by Normalize is
// treated as immutable; every analytics query is a pure read over it.
type Record struct {
	JobTitle        string
	SalaryUSD       float64
	ExperienceLevel string
	Industry        string
	CompanyLocation string
	Country         string
	RemoteRatio     float64
	Skills          []string
	PostingDate     *time.Time
}

// rawRecord is a row as it comes off a source, before coercion. Every field
// is the raw cell text so the normalizer can decide what survives.
type rawRecord struct {
	JobTitle        string
	SalaryUSD       string
	ExperienceLevel string
	Industry        string
	CompanyLocation string
	RemoteRatio     string
	RequiredSkills  string
	PostingDate     string
}

// requiredColumns is the minimum schema a source must carry. A source
// missing any of these fails the load.
var requiredColumns = []string{
	"job_title",
	"salary_usd",
	"experience_level",
	"industry",
	"company_location",
	"remote_ratio",
	"required_skills",
	"posting_date",
}
