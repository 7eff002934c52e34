package scorer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeRulesFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadRules(t *testing.T) {
	t.Run("valid file", func(t *testing.T) {
		path := writeRulesFile(t, `
rules:
  - pattern: '\b(ceo|founder)\b'
    weight: 1.0
  - pattern: '\bintern\b'
    weight: 0.1
`)
		rules, err := LoadRules(path)
		require.NoError(t, err)
		require.Len(t, rules, 2)
		assert.Equal(t, 1.0, rules[0].Weight)
		assert.True(t, rules[0].Pattern.MatchString("acting ceo"))
		assert.Equal(t, 0.1, rules[1].Weight)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadRules(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		path := writeRulesFile(t, "rules: [}{")
		_, err := LoadRules(path)
		assert.Error(t, err)
	})

	t.Run("empty rules", func(t *testing.T) {
		path := writeRulesFile(t, "rules: []")
		_, err := LoadRules(path)
		assert.Error(t, err)
	})

	t.Run("weight out of range", func(t *testing.T) {
		path := writeRulesFile(t, `
rules:
  - pattern: '\bceo\b'
    weight: 1.5
`)
		_, err := LoadRules(path)
		assert.ErrorContains(t, err, "outside [0,1]")
	})

	t.Run("bad pattern", func(t *testing.T) {
		path := writeRulesFile(t, `
rules:
  - pattern: '('
    weight: 0.5
`)
		_, err := LoadRules(path)
		assert.Error(t, err)
	})
}

func TestDefaultSeniorityRules(t *testing.T) {
	rules := DefaultSeniorityRules()
	require.NotEmpty(t, rules)
	for i, r := range rules {
		assert.NotNil(t, r.Pattern, "rule %d", i)
		assert.GreaterOrEqual(t, r.Weight, 0.0)
		assert.LessOrEqual(t, r.Weight, 1.0)
	}
}
