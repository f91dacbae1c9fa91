// config/overlay.go
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type SkillsFile struct {
	Skills map[string][]string `yaml:"skills"`
}

// OverlaySkills merges category skill lists from a side file into cfg.
// Entries in the file win over entries already in cfg.
func OverlaySkills(cfg *Config, skillsPath string) error {
	b, err := os.ReadFile(skillsPath)
	if err != nil {
		// Missing skills file should not kill startup
		return nil
	}

	var sf SkillsFile
	if err := yaml.Unmarshal(b, &sf); err != nil {
		return err
	}

	if len(sf.Skills) == 0 {
		return nil
	}
	if cfg.Skills == nil {
		cfg.Skills = make(map[string][]string, len(sf.Skills))
	}
	for cat, labels := range sf.Skills {
		cfg.Skills[cat] = labels
	}
	return nil
}
