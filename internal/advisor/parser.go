package advisor

import (
	"encoding/json"
	"fmt"
	"strings"
)

// cleanJSON strips markdown code fences around a model response and, when
// the response embeds JSON in prose, cuts it down to the outermost object.
func cleanJSON(input string) string {
	clean := strings.TrimSpace(input)

	if strings.HasPrefix(clean, "```json") {
		clean = strings.TrimPrefix(clean, "```json")
	} else if strings.HasPrefix(clean, "```") {
		clean = strings.TrimPrefix(clean, "```")
	}
	clean = strings.TrimLeft(clean, "\r\n")
	clean = strings.TrimSuffix(clean, "```")
	clean = strings.TrimSpace(clean)

	if !strings.HasPrefix(clean, "{") {
		start := strings.Index(clean, "{")
		end := strings.LastIndex(clean, "}")
		if start >= 0 && end > start {
			clean = clean[start : end+1]
		}
	}

	return clean
}

func parseResumeAnalysis(response string) (ResumeAnalysis, error) {
	var analysis ResumeAnalysis
	if err := json.Unmarshal([]byte(cleanJSON(response)), &analysis); err != nil {
		return ResumeAnalysis{}, fmt.Errorf("parse resume analysis: %w (response: %.200s)", err, response)
	}
	if analysis.CareerLevel == "" {
		analysis.CareerLevel = "Not specified"
	}
	return analysis, nil
}

func parseCareerAdvice(response string) (CareerAdvice, error) {
	var advice CareerAdvice
	if err := json.Unmarshal([]byte(cleanJSON(response)), &advice); err != nil {
		return CareerAdvice{}, fmt.Errorf("parse career advice: %w (response: %.200s)", err, response)
	}
	return advice, nil
}

func fallbackResumeAnalysis() ResumeAnalysis {
	return ResumeAnalysis{
		CandidateSummary:        "Resume analysis could not be completed due to technical issues",
		KeyStrengths:            []string{"Analysis unavailable"},
		SkillGaps:               []string{"Analysis unavailable"},
		SuitableRoles:           []string{"Analysis unavailable"},
		CareerLevel:             "Unknown",
		ExperienceQuality:       "Analysis unavailable",
		LearningRecommendations: []string{"Please try again later"},
		SalaryEstimate:          SalaryEstimate{EntryLevel: "N/A", MidLevel: "N/A", SeniorLevel: "N/A"},
		InterviewReadiness:      "Analysis unavailable",
		PortfolioSuggestions:    []string{"Analysis unavailable"},
	}
}

func fallbackCareerAdvice() CareerAdvice {
	return CareerAdvice{
		CareerPath:        "Advice could not be generated due to technical issues",
		NextSkills:        []string{"Advice unavailable"},
		TargetRoles:       []string{"Advice unavailable"},
		LearningPlan:      "Please try again later",
		Timeline:          "N/A",
		SalaryProgression: "N/A",
		NetworkingTips:    []string{"Advice unavailable"},
	}
}
