package handler

import (
	"errors"
	"strconv"
	"time"

	"career-compass/internal/analytics"
	"career-compass/internal/cache"
	"career-compass/internal/delivery/http/dto"
	"career-compass/internal/delivery/http/middleware"
	"career-compass/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

// MarketHandler serves the job-market analytics queries. Results are cached
// per normalized query signature; the cache is optional and every miss path
// recomputes against the in-memory snapshot.
type MarketHandler struct {
	analyzer *analytics.Analyzer
	cache    cache.ResultCache
	cacheTTL time.Duration
}

func NewMarketHandler(analyzer *analytics.Analyzer, results cache.ResultCache, cacheTTL time.Duration) *MarketHandler {
	return &MarketHandler{analyzer: analyzer, cache: results, cacheTTL: cacheTTL}
}

func (h *MarketHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/summary", h.HandleSummary)
	r.Get("/salaries", h.HandleSalaries)
	r.Get("/skills", h.HandleSkills)
	r.Get("/industries", h.HandleIndustries)
	r.Get("/geography", h.HandleGeography)
	r.Get("/titles", h.HandleTitles)
	r.Post("/certifications", h.HandleCertifications)
}

func (h *MarketHandler) HandleSummary(c fiber.Ctx) error {
	summary, err := h.analyzer.SummaryInsights()
	if err != nil {
		return mapAnalyticsError(err)
	}
	return response.Success(c, fiber.StatusOK, "success", dto.MarketSummaryResponse{Summary: summary})
}

func (h *MarketHandler) HandleSalaries(c fiber.Ctx) error {
	filter := analytics.SalaryFilter{
		ExperienceLevel: c.Query("experience_level"),
		Industry:        c.Query("industry"),
	}

	key := cache.Key("salaries", map[string]string{
		"experience_level": cache.NormalizeParam(filter.ExperienceLevel),
		"industry":         cache.NormalizeParam(filter.Industry),
	})
	var cached dto.SalaryAnalysisResponse
	if hit, _ := h.cache.GetJSON(c.Context(), key, &cached); hit {
		return response.Success(c, fiber.StatusOK, "success", cached)
	}

	analysis, err := h.analyzer.SalaryAnalysis(filter)
	if err != nil {
		return mapAnalyticsError(err)
	}

	out := dto.SalaryAnalysisResponse{
		Analysis: analysis,
		Chart:    analytics.SalaryByExperienceChart(analysis),
	}
	_ = h.cache.SetJSON(c.Context(), key, out, h.cacheTTL)

	return response.Success(c, fiber.StatusOK, "success", out)
}

func (h *MarketHandler) HandleSkills(c fiber.Ctx) error {
	topN, err := parseQueryIntStrict(c, "top", 20)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "invalid top parameter", nil, err)
	}

	key := cache.Key("skills", map[string]int{"top": topN})
	var cached dto.SkillDemandResponse
	if hit, _ := h.cache.GetJSON(c.Context(), key, &cached); hit {
		return response.Success(c, fiber.StatusOK, "success", cached)
	}

	demand, err := h.analyzer.SkillDemand(topN)
	if err != nil {
		return mapAnalyticsError(err)
	}

	out := dto.SkillDemandResponse{
		Demand: demand,
		Chart:  analytics.SkillDemandChart(demand),
	}
	_ = h.cache.SetJSON(c.Context(), key, out, h.cacheTTL)

	return response.Success(c, fiber.StatusOK, "success", out)
}

func (h *MarketHandler) HandleIndustries(c fiber.Ctx) error {
	key := cache.Key("industries", nil)
	var cached dto.IndustryTrendsResponse
	if hit, _ := h.cache.GetJSON(c.Context(), key, &cached); hit {
		return response.Success(c, fiber.StatusOK, "success", cached)
	}

	trends, err := h.analyzer.IndustryTrends()
	if err != nil {
		return mapAnalyticsError(err)
	}

	out := dto.IndustryTrendsResponse{
		Trends: trends,
		Chart:  analytics.IndustryJobCountChart(trends),
	}
	_ = h.cache.SetJSON(c.Context(), key, out, h.cacheTTL)

	return response.Success(c, fiber.StatusOK, "success", out)
}

func (h *MarketHandler) HandleGeography(c fiber.Ctx) error {
	key := cache.Key("geography", nil)
	var cached dto.GeographicAnalysisResponse
	if hit, _ := h.cache.GetJSON(c.Context(), key, &cached); hit {
		return response.Success(c, fiber.StatusOK, "success", cached)
	}

	geo, err := h.analyzer.GeographicAnalysis()
	if err != nil {
		return mapAnalyticsError(err)
	}

	out := dto.GeographicAnalysisResponse{
		Analysis: geo,
		Chart:    analytics.CountrySalaryChart(geo),
	}
	_ = h.cache.SetJSON(c.Context(), key, out, h.cacheTTL)

	return response.Success(c, fiber.StatusOK, "success", out)
}

func (h *MarketHandler) HandleTitles(c fiber.Ctx) error {
	term := c.Query("search")

	key := cache.Key("titles", map[string]string{"search": cache.NormalizeParam(term)})
	var cached dto.JobTitleSearchResponse
	if hit, _ := h.cache.GetJSON(c.Context(), key, &cached); hit {
		return response.Success(c, fiber.StatusOK, "success", cached)
	}

	analysis, err := h.analyzer.JobTitleSearch(term)
	if err != nil {
		return mapAnalyticsError(err)
	}

	out := dto.JobTitleSearchResponse{
		Analysis: analysis,
		Chart:    analytics.ExperienceDistributionChart(analysis),
	}
	_ = h.cache.SetJSON(c.Context(), key, out, h.cacheTTL)

	return response.Success(c, fiber.StatusOK, "success", out)
}

func (h *MarketHandler) HandleCertifications(c fiber.Ctx) error {
	var req dto.CertificationRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "invalid request body", nil, err)
	}
	if len(req.Skills) == 0 {
		return middleware.NewAppError(fiber.StatusBadRequest, "skills are required", nil, nil)
	}

	recs := h.analyzer.CertificationRecommendations(req.Skills)
	return response.Success(c, fiber.StatusOK, "success", dto.CertificationResponse{Recommendations: recs})
}

// mapAnalyticsError turns the engine's no-data sentinel into a 404 with its
// informational message; anything else bubbles as an internal error.
func mapAnalyticsError(err error) error {
	if errors.Is(err, analytics.ErrNoData) {
		return middleware.NewAppError(fiber.StatusNotFound, err.Error(), nil, nil)
	}
	return err
}

func parseQueryIntStrict(c fiber.Ctx, key string, defaultVal int) (int, error) {
	s := c.Query(key)
	if s == "" {
		return defaultVal, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	return v, nil
}
