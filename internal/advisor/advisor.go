package advisor

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

const defaultModel = "gemini-2.5-flash"

// Client asks Gemini for resume assessments and career advice. Model
// failures and malformed responses never surface as errors to the UI: the
// client degrades to a typed fallback result instead.
type Client struct {
	genai  *genai.Client
	model  string
	logger *zap.Logger
}

// ResumeAnalysis is the structured assessment of one resume.
type ResumeAnalysis struct {
	CandidateSummary        string         `json:"candidate_summary"`
	KeyStrengths            []string       `json:"key_strengths"`
	SkillGaps               []string       `json:"skill_gaps"`
	SuitableRoles           []string       `json:"suitable_roles"`
	CareerLevel             string         `json:"career_level"`
	ExperienceQuality       string         `json:"experience_quality"`
	LearningRecommendations []string       `json:"learning_recommendations"`
	SalaryEstimate          SalaryEstimate `json:"salary_estimate"`
	InterviewReadiness      string         `json:"interview_readiness"`
	PortfolioSuggestions    []string       `json:"portfolio_suggestions"`
}

type SalaryEstimate struct {
	EntryLevel  string `json:"entry_level"`
	MidLevel    string `json:"mid_level"`
	SeniorLevel string `json:"senior_level"`
}

// CareerAdvice is personalized guidance for a skill set and goal.
type CareerAdvice struct {
	CareerPath        string   `json:"career_path"`
	NextSkills        []string `json:"next_skills"`
	TargetRoles       []string `json:"target_roles"`
	LearningPlan      string   `json:"learning_plan"`
	Timeline          string   `json:"timeline"`
	SalaryProgression string   `json:"salary_progression"`
	NetworkingTips    []string `json:"networking_tips"`
}

func NewClient(ctx context.Context, apiKey, model string, logger *zap.Logger) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("missing Gemini API key")
	}
	if model == "" {
		model = defaultModel
	}

	gc, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return &Client{genai: gc, model: model, logger: logger}, nil
}

// AnalyzeResume produces a structured assessment of the resume text. On API
// or parse failure it returns the fallback analysis and logs the cause.
func (c *Client) AnalyzeResume(ctx context.Context, resumeText string) ResumeAnalysis {
	text, err := c.generate(ctx, resumeAnalysisPrompt(resumeText))
	if err != nil {
		c.logger.Warn("resume analysis failed, using fallback", zap.Error(err))
		return fallbackResumeAnalysis()
	}

	analysis, err := parseResumeAnalysis(text)
	if err != nil {
		c.logger.Warn("resume analysis response unparseable, using fallback", zap.Error(err))
		return fallbackResumeAnalysis()
	}
	return analysis
}

// CareerAdvice produces guidance for the given skills and goals. On API or
// parse failure it returns the fallback advice and logs the cause.
func (c *Client) CareerAdvice(ctx context.Context, skills []string, goals string) CareerAdvice {
	if strings.TrimSpace(goals) == "" {
		goals = "General career advancement"
	}

	text, err := c.generate(ctx, careerAdvicePrompt(skills, goals))
	if err != nil {
		c.logger.Warn("career advice failed, using fallback", zap.Error(err))
		return fallbackCareerAdvice()
	}

	advice, err := parseCareerAdvice(text)
	if err != nil {
		c.logger.Warn("career advice response unparseable, using fallback", zap.Error(err))
		return fallbackCareerAdvice()
	}
	return advice
}

func (c *Client) generate(ctx context.Context, prompt string) (string, error) {
	resp, err := c.genai.Models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}
	return resp.Text(), nil
}
