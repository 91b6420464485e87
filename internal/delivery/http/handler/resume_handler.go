package handler

import (
	"io"

	"career-compass/internal/advisor"
	"career-compass/internal/analytics"
	"career-compass/internal/delivery/http/dto"
	"career-compass/internal/delivery/http/middleware"
	"career-compass/internal/pkg/response"
	"career-compass/internal/resume"

	"github.com/gofiber/fiber/v3"
)

// maxResumeBytes caps uploads; anything larger is rejected before parsing.
const maxResumeBytes = 10 << 20

// ResumeHandler accepts a resume upload, extracts its skills and runs the
// AI assessment when an advisor client is configured.
type ResumeHandler struct {
	parser   *resume.Parser
	advisor  *advisor.Client
	analyzer *analytics.Analyzer
}

func NewResumeHandler(parser *resume.Parser, advisorClient *advisor.Client, analyzer *analytics.Analyzer) *ResumeHandler {
	return &ResumeHandler{parser: parser, advisor: advisorClient, analyzer: analyzer}
}

func (h *ResumeHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/analyze", h.HandleAnalyze)
}

func (h *ResumeHandler) HandleAnalyze(c fiber.Ctx) error {
	fileHeader, err := c.FormFile("resume")
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "resume file is required", nil, err)
	}
	if fileHeader.Size > maxResumeBytes {
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, "resume file too large", nil, nil)
	}

	f, err := fileHeader.Open()
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "cannot read resume file", nil, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "cannot read resume file", nil, err)
	}

	text, err := resume.ExtractText(fileHeader.Filename, data)
	if err != nil {
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, "cannot extract resume text", nil, err)
	}

	skills := h.parser.ExtractSkills(text)

	out := dto.ResumeAnalysisResponse{
		Skills:         skills,
		Certifications: h.analyzer.CertificationRecommendations(skills),
	}
	if h.advisor != nil {
		analysis := h.advisor.AnalyzeResume(c.Context(), text)
		out.Analysis = &analysis
	}

	return response.Success(c, fiber.StatusOK, "success", out)
}
