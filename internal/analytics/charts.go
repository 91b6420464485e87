package analytics

// ChartData is a render-ready chart payload: parallel label/value slices
// plus axis metadata. It carries no aggregation logic, adapters only
// reshape results already computed by the Analyzer. A nil *ChartData is the
// "no chart" sentinel the UI turns into an informational message.
type ChartData struct {
	Kind   string    `json:"kind"` // "bar", "hbar", "pie"
	Title  string    `json:"title"`
	XLabel string    `json:"x_label,omitempty"`
	YLabel string    `json:"y_label,omitempty"`
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
}

// SalaryByExperienceChart reshapes a salary analysis into a bar chart of
// mean salary per experience level.
func SalaryByExperienceChart(analysis SalaryAnalysis) *ChartData {
	if len(analysis.ByExperience) == 0 {
		return nil
	}
	labels := make([]string, 0, len(analysis.ByExperience))
	values := make([]float64, 0, len(analysis.ByExperience))
	for _, e := range analysis.ByExperience {
		labels = append(labels, e.Level)
		values = append(values, e.Mean)
	}
	return &ChartData{
		Kind:   "bar",
		Title:  "Average Salary by Experience Level",
		XLabel: "Experience Level",
		YLabel: "Average Salary (USD)",
		Labels: labels,
		Values: values,
	}
}

// SkillDemandChart reshapes skill demand into a horizontal bar chart of the
// top 15 skills.
func SkillDemandChart(demand SkillDemand) *ChartData {
	if len(demand.TopSkills) == 0 {
		return nil
	}
	top := demand.TopSkills
	if len(top) > 15 {
		top = top[:15]
	}
	return &ChartData{
		Kind:   "hbar",
		Title:  "Most In-Demand Skills",
		XLabel: "Number of Job Postings",
		YLabel: "Skills",
		Labels: keyCountLabels(top),
		Values: keyCountValues(top),
	}
}

// IndustryJobCountChart reshapes industry trends into a bar chart of the
// top 10 industries by posting count.
func IndustryJobCountChart(trends IndustryTrends) *ChartData {
	if len(trends.JobCounts) == 0 {
		return nil
	}
	top := trends.JobCounts
	if len(top) > 10 {
		top = top[:10]
	}
	return &ChartData{
		Kind:   "bar",
		Title:  "Top Industries by Job Count",
		XLabel: "Industry",
		YLabel: "Number of Jobs",
		Labels: keyCountLabels(top),
		Values: keyCountValues(top),
	}
}

// CountrySalaryChart reshapes a geographic analysis into a bar chart of the
// top 10 countries by mean salary.
func CountrySalaryChart(geo GeographicAnalysis) *ChartData {
	if len(geo.SalaryRanking) == 0 {
		return nil
	}
	ranking := geo.SalaryRanking
	if len(ranking) > 10 {
		ranking = ranking[:10]
	}
	labels := make([]string, 0, len(ranking))
	values := make([]float64, 0, len(ranking))
	for _, c := range ranking {
		labels = append(labels, c.Country)
		values = append(values, c.Mean)
	}
	return &ChartData{
		Kind:   "bar",
		Title:  "Average Salary by Country (Top 10)",
		XLabel: "Country",
		YLabel: "Average Salary (USD)",
		Labels: labels,
		Values: values,
	}
}

// ExperienceDistributionChart reshapes a title analysis into a pie chart of
// experience levels.
func ExperienceDistributionChart(analysis JobTitleAnalysis) *ChartData {
	if len(analysis.ExperienceDistribution) == 0 {
		return nil
	}
	return &ChartData{
		Kind:   "pie",
		Title:  "Experience Level Distribution",
		Labels: keyCountLabels(analysis.ExperienceDistribution),
		Values: keyCountValues(analysis.ExperienceDistribution),
	}
}

func keyCountLabels(entries []KeyCount) []string {
	labels := make([]string, 0, len(entries))
	for _, e := range entries {
		labels = append(labels, e.Key)
	}
	return labels
}

func keyCountValues(entries []KeyCount) []float64 {
	values := make([]float64, 0, len(entries))
	for _, e := range entries {
		values = append(values, float64(e.Count))
	}
	return values
}
