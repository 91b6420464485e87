package analytics

// SkillDemand ranks skills by how often they appear across postings. Skill
// tokens are not deduplicated within a record: a posting listing the same
// skill twice contributes two counts.
type SkillDemand struct {
	TopSkills         []KeyCount            `json:"top_skills"`
	ByExperience      map[string][]KeyCount `json:"by_experience"`
	ByIndustry        map[string][]KeyCount `json:"by_industry"`
	TotalUniqueSkills int                   `json:"total_unique_skills"`
}

const defaultSkillTopN = 20

// SkillDemand flattens every record's skill list into a global multiset and
// returns the topN most frequent skills, plus the top-10 breakdown per
// experience level and per top-10 industry.
func (a *Analyzer) SkillDemand(topN int) (SkillDemand, error) {
	if len(a.records) == 0 {
		return SkillDemand{}, ErrNoData
	}
	if topN <= 0 {
		topN = defaultSkillTopN
	}

	global := newCounter()
	byLevel := make(map[string]*counter)
	byIndustryCounter := make(map[string]*counter)
	industryRows := newCounter()

	for _, r := range a.records {
		industryRows.Add(r.Industry)
		lc, ok := byLevel[r.ExperienceLevel]
		if !ok {
			lc = newCounter()
			byLevel[r.ExperienceLevel] = lc
		}
		ic, ok := byIndustryCounter[r.Industry]
		if !ok {
			ic = newCounter()
			byIndustryCounter[r.Industry] = ic
		}

		for _, skill := range r.Skills {
			global.Add(skill)
			lc.Add(skill)
			ic.Add(skill)
		}
	}

	byExperience := make(map[string][]KeyCount, len(byLevel))
	for level, c := range byLevel {
		byExperience[level] = c.MostCommon(10)
	}

	byIndustry := make(map[string][]KeyCount, 10)
	for _, entry := range industryRows.MostCommon(10) {
		byIndustry[entry.Key] = byIndustryCounter[entry.Key].MostCommon(10)
	}

	return SkillDemand{
		TopSkills:         global.MostCommon(topN),
		ByExperience:      byExperience,
		ByIndustry:        byIndustry,
		TotalUniqueSkills: global.Distinct(),
	}, nil
}
