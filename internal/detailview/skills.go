package detailview

// SkillsMap maps a job category to the five skill labels shown on its page.
type SkillsMap map[string][]string

var defaultSkills = SkillsMap{
	"Technology":       {"Programming", "Problem Solving", "Agile", "Team Collaboration", "Technical Skills"},
	"Commerce":         {"Sales", "Marketing", "Customer Service", "Business Strategy", "Analytics"},
	"Hotels & Tourism": {"Hospitality", "Customer Service", "Management", "Communication", "Multitasking"},
	"Construction":     {"Project Management", "Safety", "Technical Drawing", "Team Leadership", "Planning"},
	"Education":        {"Teaching", "Curriculum Development", "Communication", "Patience", "Mentoring"},
	"Healthcare":       {"Patient Care", "Medical Knowledge", "Empathy", "Attention to Detail", "Teamwork"},
	"Agriculture":      {"Farming", "Sustainability", "Equipment Operation", "Planning", "Physical Stamina"},
}

var genericSkills = []string{"Leadership", "Management", "Communication", "Strategy", "Analytics"}

// DefaultSkills returns a fresh copy of the built-in map.
func DefaultSkills() SkillsMap {
	return defaultSkills.WithOverrides(nil)
}

// WithOverrides copies m and replaces or adds the categories in over.
func (m SkillsMap) WithOverrides(over map[string][]string) SkillsMap {
	out := make(SkillsMap, len(m)+len(over))
	for k, v := range m {
		out[k] = append([]string(nil), v...)
	}
	for k, v := range over {
		out[k] = append([]string(nil), v...)
	}
	return out
}

// For returns the labels for category, or the generic list when unmapped.
func (m SkillsMap) For(category string) []string {
	if s, ok := m[category]; ok && len(s) > 0 {
		return append([]string(nil), s...)
	}
	return append([]string(nil), genericSkills...)
}
