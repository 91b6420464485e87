package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"career-compass/internal/apperr"
)

const csvHeader = "job_title,salary_usd,experience_level,industry,company_location,remote_ratio,required_skills,posting_date\n"

func writeCSV(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestLoad_SingleSource(t *testing.T) {
	path := writeCSV(t, "jobs.csv", csvHeader+
		"Data Scientist,120000,SE,Technology,United States,100,\"Python, SQL\",2025-03-14\n"+
		"ML Engineer,150000,SE,Technology,United States,0,PyTorch,2025-04-01\n")

	records, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].JobTitle != "Data Scientist" || records[1].JobTitle != "ML Engineer" {
		t.Fatalf("row order not preserved: %+v", records)
	}
}

func TestLoad_ConcatenatesSourcesInOrder(t *testing.T) {
	first := writeCSV(t, "first.csv", csvHeader+
		"Data Scientist,120000,SE,Technology,United States,100,Python,2025-03-14\n")
	second := writeCSV(t, "second.csv", csvHeader+
		"Clinical Analyst,70000,EN,Healthcare,Germany,0,SQL,2025-02-01\n")

	records, err := Load(first, second)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].JobTitle != "Data Scientist" || records[1].JobTitle != "Clinical Analyst" {
		t.Fatalf("source order not preserved: %+v", records)
	}
}

func TestLoad_HeaderNamesNormalized(t *testing.T) {
	path := writeCSV(t, "jobs.csv",
		"Job Title,Salary USD,Experience Level,Industry,Company Location,Remote Ratio,Required Skills,Posting Date\n"+
			"Data Scientist,120000,SE,Technology,United States,100,Python,2025-03-14\n")

	records, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
}

func TestLoad_MissingColumnFailsWholeLoad(t *testing.T) {
	good := writeCSV(t, "good.csv", csvHeader+
		"Data Scientist,120000,SE,Technology,United States,100,Python,2025-03-14\n")
	bad := writeCSV(t, "bad.csv",
		"job_title,experience_level,industry,company_location,remote_ratio,required_skills,posting_date\n"+
			"ML Engineer,SE,Technology,United States,0,PyTorch,2025-04-01\n")

	records, err := Load(good, bad)
	if err == nil {
		t.Fatal("expected an error")
	}
	if records != nil {
		t.Fatalf("expected no records on a failed load, got %d", len(records))
	}

	var domainErr *apperr.DomainError
	if !errors.As(err, &domainErr) || domainErr.Type != apperr.ErrTypeLoadFailed {
		t.Fatalf("expected a LOAD_FAILED error, got %v", err)
	}
	if !strings.Contains(err.Error(), "salary_usd") {
		t.Fatalf("expected the missing column to be named, got %v", err)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.csv"))
	var domainErr *apperr.DomainError
	if !errors.As(err, &domainErr) || domainErr.Type != apperr.ErrTypeLoadFailed {
		t.Fatalf("expected a LOAD_FAILED error, got %v", err)
	}
}

func TestLoad_NoSourcesConfigured(t *testing.T) {
	_, err := Load()
	if err == nil {
		t.Fatal("expected an error")
	}
}

func TestLoad_SkipsMalformedRows(t *testing.T) {
	path := writeCSV(t, "jobs.csv", csvHeader+
		"Data Scientist,120000,SE,Technology,United States,100,Python,2025-03-14\n"+
		"broken \"row,0,EN,Technology,Germany,0,SQL,2025-01-01\n"+
		"ML Engineer,150000,SE,Technology,United States,0,PyTorch,2025-04-01\n")

	records, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected malformed row skipped, got %d records", len(records))
	}
}

func TestLoad_ExtraColumnsIgnored(t *testing.T) {
	path := writeCSV(t, "jobs.csv",
		"job_title,salary_usd,experience_level,industry,company_location,remote_ratio,required_skills,posting_date,company_name\n"+
			"Data Scientist,120000,SE,Technology,United States,100,Python,2025-03-14,Acme\n")

	records, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
}
