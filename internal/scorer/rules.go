// Package scorer implements deterministic lead quality scoring with an
// auditable per-component breakdown.
package scorer

import (
	"os"
	"regexp"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

// SeniorityRule maps a job title pattern to a seniority weight in [0,1].
// Rules are evaluated in order and the highest matching weight wins.
type SeniorityRule struct {
	Pattern *regexp.Regexp
	Weight  float64
}

// DefaultSeniorityRules returns the built-in title rules, ordered from
// executive titles down to individual contributors.
func DefaultSeniorityRules() []SeniorityRule {
	return []SeniorityRule{
		{regexp.MustCompile(`\b(c[- ]?level|ceo|chief executive officer|coo|cfo|cto|chief technology officer|chief financial officer|founder|co-founder)\b`), 1.0},
		{regexp.MustCompile(`\b(president|vp\b|vice president|vice-president|head of|head,|head )\b`), 0.85},
		{regexp.MustCompile(`\b(director|senior director|sr director)\b`), 0.7},
		{regexp.MustCompile(`\b(manager|senior manager|mgr)\b`), 0.5},
		{regexp.MustCompile(`\b(lead|principal)\b`), 0.6},
		{regexp.MustCompile(`\b(engineer|developer|analyst|specialist|associate)\b`), 0.3},
	}
}

// rulesFile is the YAML shape of a seniority rules override file.
type rulesFile struct {
	Rules []struct {
		Pattern string  `yaml:"pattern"`
		Weight  float64 `yaml:"weight"`
	} `yaml:"rules"`
}

// LoadRules reads seniority rules from a YAML file. Patterns are compiled
// up front so a bad rules file fails at startup, not mid-batch.
func LoadRules(path string) ([]SeniorityRule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrap(err, "scorer: read rules file")
	}

	var rf rulesFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, eris.Wrap(err, "scorer: parse rules file")
	}
	if len(rf.Rules) == 0 {
		return nil, eris.New("scorer: rules file has no rules")
	}

	rules := make([]SeniorityRule, 0, len(rf.Rules))
	for i, r := range rf.Rules {
		if r.Weight < 0 || r.Weight > 1 {
			return nil, eris.Errorf("scorer: rule %d: weight %v outside [0,1]", i, r.Weight)
		}
		re, err := regexp.Compile(r.Pattern)
		if err != nil {
			return nil, eris.Wrapf(err, "scorer: rule %d: compile pattern %q", i, r.Pattern)
		}
		rules = append(rules, SeniorityRule{Pattern: re, Weight: r.Weight})
	}
	return rules, nil
}
