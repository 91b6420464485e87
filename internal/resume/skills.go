package resume

import "strings"

// defaultSkills is the dictionary matched against resume text when the
// caller does not supply one.
var defaultSkills = []string{
	"Python", "Java", "JavaScript", "C++", "C#", "R", "SQL", "HTML", "CSS",
	"TensorFlow", "PyTorch", "Scikit-learn", "Pandas", "NumPy", "Matplotlib",
	"Machine Learning", "Deep Learning", "Data Analysis", "Data Science",
	"AWS", "Azure", "GCP", "Docker", "Kubernetes", "Git", "Linux",
	"React", "Node.js", "Django", "Flask", "Spring Boot", "Express.js",
	"MongoDB", "PostgreSQL", "MySQL", "Redis", "Elasticsearch",
	"Excel", "Tableau", "Power BI", "Jupyter", "Apache Spark",
	"NLP", "Computer Vision", "Statistics", "A/B Testing", "Agile", "Scrum",
}

// Parser extracts known skills from free resume text by case-insensitive
// phrase matching against a skill dictionary.
type Parser struct {
	skills []string
}

// NewParser builds a parser over the given dictionary; nil or empty falls
// back to the default dictionary.
func NewParser(skills []string) *Parser {
	if len(skills) == 0 {
		skills = defaultSkills
	}
	return &Parser{skills: skills}
}

// ExtractSkills returns the dictionary entries found in text, in dictionary
// order, each at most once. Matches respect token boundaries so "R" does not
// fire inside "React".
func (p *Parser) ExtractSkills(text string) []string {
	lower := strings.ToLower(text)

	found := []string{}
	for _, skill := range p.skills {
		if containsPhrase(lower, strings.ToLower(skill)) {
			found = append(found, skill)
		}
	}
	return found
}

// containsPhrase reports whether phrase occurs in text delimited by
// non-alphanumeric characters on both sides.
func containsPhrase(text, phrase string) bool {
	if phrase == "" {
		return false
	}
	for from := 0; ; {
		i := strings.Index(text[from:], phrase)
		if i < 0 {
			return false
		}
		start := from + i
		end := start + len(phrase)
		if boundaryBefore(text, start) && boundaryAfter(text, end) {
			return true
		}
		from = start + 1
	}
}

func boundaryBefore(text string, i int) bool {
	if i == 0 {
		return true
	}
	return !isWordByte(text[i-1])
}

func boundaryAfter(text string, i int) bool {
	if i >= len(text) {
		return true
	}
	return !isWordByte(text[i])
}

func isWordByte(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9'
}
