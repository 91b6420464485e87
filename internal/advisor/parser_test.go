package advisor

import (
	"strings"
	"testing"
)

func TestCleanJSON_StripsFences(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{"json fence", "```json\n{\"a\": 1}\n```"},
		{"bare fence", "```\n{\"a\": 1}\n```"},
		{"no fence", "{\"a\": 1}"},
		{"surrounding whitespace", "  \n{\"a\": 1}\n  "},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := cleanJSON(tc.input); got != `{"a": 1}` {
				t.Fatalf("expected clean object, got %q", got)
			}
		})
	}
}

func TestCleanJSON_ExtractsEmbeddedObject(t *testing.T) {
	input := `Here is the analysis you asked for: {"career_level": "Senior"} Hope it helps!`
	if got := cleanJSON(input); got != `{"career_level": "Senior"}` {
		t.Fatalf("expected embedded object, got %q", got)
	}
}

func TestParseResumeAnalysis(t *testing.T) {
	response := "```json\n" + `{
		"candidate_summary": "Experienced data scientist",
		"key_strengths": ["Python", "SQL"],
		"career_level": "Senior"
	}` + "\n```"

	analysis, err := parseResumeAnalysis(response)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if analysis.CandidateSummary != "Experienced data scientist" {
		t.Fatalf("unexpected summary: %q", analysis.CandidateSummary)
	}
	if len(analysis.KeyStrengths) != 2 {
		t.Fatalf("unexpected strengths: %v", analysis.KeyStrengths)
	}
	if analysis.CareerLevel != "Senior" {
		t.Fatalf("unexpected level: %q", analysis.CareerLevel)
	}
}

func TestParseResumeAnalysis_DefaultsCareerLevel(t *testing.T) {
	analysis, err := parseResumeAnalysis(`{"candidate_summary": "x"}`)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if analysis.CareerLevel != "Not specified" {
		t.Fatalf("expected default career level, got %q", analysis.CareerLevel)
	}
}

func TestParseResumeAnalysis_InvalidJSON(t *testing.T) {
	_, err := parseResumeAnalysis("the model rambled instead of answering")
	if err == nil {
		t.Fatal("expected an error")
	}
	if !strings.Contains(err.Error(), "parse resume analysis") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestParseCareerAdvice(t *testing.T) {
	advice, err := parseCareerAdvice(`{"career_path": "ML Engineering", "next_skills": ["MLOps"]}`)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if advice.CareerPath != "ML Engineering" {
		t.Fatalf("unexpected path: %q", advice.CareerPath)
	}
	if len(advice.NextSkills) != 1 || advice.NextSkills[0] != "MLOps" {
		t.Fatalf("unexpected skills: %v", advice.NextSkills)
	}
}

func TestFallbacks(t *testing.T) {
	analysis := fallbackResumeAnalysis()
	if analysis.CareerLevel != "Unknown" {
		t.Fatalf("unexpected fallback level: %q", analysis.CareerLevel)
	}
	if analysis.SalaryEstimate.EntryLevel != "N/A" {
		t.Fatalf("unexpected fallback estimate: %+v", analysis.SalaryEstimate)
	}

	advice := fallbackCareerAdvice()
	if advice.Timeline != "N/A" {
		t.Fatalf("unexpected fallback timeline: %q", advice.Timeline)
	}
}
