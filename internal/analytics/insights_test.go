package analytics

import (
	"errors"
	"testing"

	"career-compass/internal/dataset"
)

func TestSummaryInsights(t *testing.T) {
	insights, err := New(testRecords()).SummaryInsights()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if insights.TotalJobs != 5 {
		t.Fatalf("expected 5 jobs, got %d", insights.TotalJobs)
	}
	if insights.AverageSalary != 106000 {
		t.Fatalf("expected average 106000, got %v", insights.AverageSalary)
	}
	if insights.TopIndustry != "Technology" {
		t.Fatalf("expected Technology, got %s", insights.TopIndustry)
	}
	if insights.TopCountry != "United States" {
		t.Fatalf("expected United States, got %s", insights.TopCountry)
	}
	if insights.TopSkill != "python" {
		t.Fatalf("expected python, got %s", insights.TopSkill)
	}
	// 3 of 5 postings carry a remote ratio above zero
	if insights.RemotePercentage != 60 {
		t.Fatalf("expected 60%%, got %v", insights.RemotePercentage)
	}
	if insights.ExperienceDistribution["EN"] != 2 {
		t.Fatalf("unexpected experience distribution: %+v", insights.ExperienceDistribution)
	}
}

func TestSummaryInsights_NoSkills(t *testing.T) {
	records := []dataset.Record{
		rec("Data Scientist", 90000, "EN", "Technology", "Germany", 0),
	}
	insights, err := New(records).SummaryInsights()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if insights.TopSkill != "N/A" {
		t.Fatalf("expected N/A top skill, got %s", insights.TopSkill)
	}
}

func TestSummaryInsights_EmptyDataset(t *testing.T) {
	_, err := New(nil).SummaryInsights()
	if !errors.Is(err, ErrNoData) {
		t.Fatalf("expected ErrNoData, got %v", err)
	}
}
