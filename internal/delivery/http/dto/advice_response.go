package dto

import "career-compass/internal/advisor"

type ResumeAnalysisResponse struct {
	Skills         []string                `json:"skills"`
	Analysis       *advisor.ResumeAnalysis `json:"analysis,omitempty"`
	Certifications map[string][]string     `json:"certifications"`
}

type CareerAdviceRequest struct {
	Skills []string `json:"skills"`
	Goals  string   `json:"goals"`
}

type CareerAdviceResponse struct {
	Advice advisor.CareerAdvice `json:"advice"`
}
