package dto

import "career-compass/internal/analytics"

type MarketSummaryResponse struct {
	Summary analytics.SummaryInsights `json:"summary"`
}

type SalaryAnalysisResponse struct {
	Analysis analytics.SalaryAnalysis `json:"analysis"`
	Chart    *analytics.ChartData     `json:"chart,omitempty"`
}

type SkillDemandResponse struct {
	Demand analytics.SkillDemand `json:"demand"`
	Chart  *analytics.ChartData  `json:"chart,omitempty"`
}

type IndustryTrendsResponse struct {
	Trends analytics.IndustryTrends `json:"trends"`
	Chart  *analytics.ChartData     `json:"chart,omitempty"`
}

type GeographicAnalysisResponse struct {
	Analysis analytics.GeographicAnalysis `json:"analysis"`
	Chart    *analytics.ChartData         `json:"chart,omitempty"`
}

type JobTitleSearchResponse struct {
	Analysis analytics.JobTitleAnalysis `json:"analysis"`
	Chart    *analytics.ChartData       `json:"chart,omitempty"`
}

type CertificationRequest struct {
	Skills []string `json:"skills"`
}

type CertificationResponse struct {
	Recommendations map[string][]string `json:"recommendations"`
}
