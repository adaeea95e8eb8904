package extraction

import (
	"sort"
	"strings"
)

// defaultRoleSkills maps role-title keywords to the skills such a role
// implies. Used as a fallback when a job description is only a short title
// ("game developer") and primary extraction finds nothing. The table is
// deliberately small; it is a convenience, not a taxonomy.
var defaultRoleSkills = map[string][]string{
	"game developer":     {"c++", "c#", "lua"},
	"frontend developer": {"html", "css", "javascript", "react"},
	"frontend engineer":  {"html", "css", "javascript", "react"},
	"backend developer":  {"python", "sql", "docker", "git"},
	"backend engineer":   {"python", "sql", "docker", "git"},
	"fullstack developer": {
		"javascript", "react", "nodejs", "sql",
	},
	"full stack developer": {
		"javascript", "react", "nodejs", "sql",
	},
	"web developer":             {"html", "css", "javascript"},
	"mobile developer":          {"kotlin", "swift", "react native", "flutter"},
	"android developer":         {"kotlin", "java"},
	"ios developer":             {"swift", "objective-c"},
	"data scientist":            {"python", "pandas", "numpy", "scikit-learn"},
	"data engineer":             {"python", "sql", "airflow", "kafka"},
	"data analyst":              {"python", "sql", "pandas"},
	"machine learning engineer": {"python", "pytorch", "tensorflow"},
	"ml engineer":               {"python", "pytorch", "tensorflow"},
	"devops engineer":           {"docker", "kubernetes", "terraform", "jenkins"},
	"cloud engineer":            {"aws", "terraform", "docker", "kubernetes"},
	"site reliability engineer": {"kubernetes", "prometheus", "grafana", "terraform"},
	"security engineer":         {"linux", "python", "vault"},
	"qa engineer":               {"selenium", "cypress", "pytest"},
}

// SetRoleSkills replaces the role-keyword fallback table. Intended for
// callers that maintain their own role mapping.
func (e *Extractor) SetRoleSkills(roles map[string][]string) {
	e.roles = roles
}

// InferFromRoleTitle maps a short job-description text to a default skill
// list when it contains a known role keyword. It is a static lookup, not
// full extraction; unknown role text yields an empty list. Output is
// sorted and de-duplicated like ExtractFlat.
func (e *Extractor) InferFromRoleTitle(shortText string) []string {
	needle := strings.ToLower(strings.TrimSpace(shortText))
	if needle == "" {
		return []string{}
	}

	found := make(map[string]struct{})
	for keyword, skills := range e.roles {
		if strings.Contains(needle, keyword) {
			for _, skill := range skills {
				found[e.table.Normalize(skill)] = struct{}{}
			}
		}
	}

	result := make([]string, 0, len(found))
	for skill := range found {
		result = append(result, skill)
	}
	sort.Strings(result)
	return result
}
