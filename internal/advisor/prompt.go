package advisor

import (
	"fmt"
	"strings"
)

func resumeAnalysisPrompt(resumeText string) string {
	return fmt.Sprintf(`You are an expert career coach and AI analyst. Analyze the following resume and provide a structured assessment.

RESUME TEXT:
%s

Respond with JSON only, in this exact format:

{
  "candidate_summary": "Brief 2-3 sentence summary of the candidate",
  "key_strengths": ["Strength with specific examples"],
  "skill_gaps": ["Missing skill with explanation"],
  "suitable_roles": ["Role with readiness level (Entry/Mid/Senior)"],
  "career_level": "Entry/Mid/Senior/Lead",
  "experience_quality": "Assessment of experience depth and relevance",
  "learning_recommendations": ["Specific skill to learn with resource suggestion"],
  "salary_estimate": {"entry_level": "X-Y range", "mid_level": "X-Y range", "senior_level": "X-Y range"},
  "interview_readiness": "Assessment of readiness for technical interviews",
  "portfolio_suggestions": ["Project idea"]
}

Focus on technical skill depth, industry relevance, career trajectory and
market demand. Be constructive and specific.`, resumeText)
}

func careerAdvicePrompt(skills []string, goals string) string {
	return fmt.Sprintf(`You are an expert career coach. Provide personalized career advice based on:

Current Skills: %s
Career Goals: %s

Respond with JSON only, in this exact format:

{
  "career_path": "Recommended career progression path",
  "next_skills": ["Skill to learn"],
  "target_roles": ["Role"],
  "learning_plan": "Step-by-step learning plan",
  "timeline": "Estimated timeline for career advancement",
  "salary_progression": "Expected salary progression",
  "networking_tips": ["Tip"]
}`, strings.Join(skills, ", "), goals)
}
