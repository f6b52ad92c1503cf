package yaml_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fwojciec/skillsync"
	"github.com/fwojciec/skillsync/yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTargets(t *testing.T) {
	t.Parallel()

	t.Run("parses a full target", func(t *testing.T) {
		t.Parallel()

		cfg := `
targets:
  - name: justfile
    url: https://example.com/README.md
    destination: skills/justfile/SKILL.md
    marker: "<!-- generated -->"
    title: "# Just"
    format: lines
    sections:
      exclude: [installation, changelog]
      include: [quick start]
      precedence: include
`

		targets, err := yaml.ParseTargets(strings.NewReader(cfg))

		require.NoError(t, err)
		require.Len(t, targets, 1)
		assert.Equal(t, skillsync.Target{
			Name:        "justfile",
			URL:         "https://example.com/README.md",
			Destination: "skills/justfile/SKILL.md",
			Marker:      "<!-- generated -->",
			Title:       "# Just",
			Format:      skillsync.FormatLines,
			Sections: skillsync.SectionRules{
				Exclude:    []string{"installation", "changelog"},
				Include:    []string{"quick start"},
				Precedence: skillsync.PrecedenceInclude,
			},
		}, targets[0])
	})

	t.Run("applies defaults to omitted fields", func(t *testing.T) {
		t.Parallel()

		cfg := `
targets:
  - name: just
    url: https://example.com/README.md
    destination: SKILL.md
`

		targets, err := yaml.ParseTargets(strings.NewReader(cfg))

		require.NoError(t, err)
		require.Len(t, targets, 1)
		defaults := skillsync.DefaultTarget()
		assert.Equal(t, defaults.Marker, targets[0].Marker)
		assert.Equal(t, defaults.Title, targets[0].Title)
		assert.Equal(t, skillsync.FormatGoldmark, targets[0].Format)
		assert.Equal(t, defaults.Sections, targets[0].Sections)
	})

	t.Run("keeps precedence when sections default", func(t *testing.T) {
		t.Parallel()

		cfg := `
targets:
  - name: just
    url: https://example.com/README.md
    destination: SKILL.md
    sections:
      precedence: include
`

		targets, err := yaml.ParseTargets(strings.NewReader(cfg))

		require.NoError(t, err)
		assert.Equal(t, skillsync.PrecedenceInclude, targets[0].Sections.Precedence)
		assert.Equal(t, skillsync.DefaultSectionRules().Exclude, targets[0].Sections.Exclude)
	})

	t.Run("rejects unknown fields", func(t *testing.T) {
		t.Parallel()

		cfg := `
targets:
  - name: just
    url: https://example.com/README.md
    destination: SKILL.md
    retries: 3
`

		_, err := yaml.ParseTargets(strings.NewReader(cfg))

		require.Error(t, err)
		assert.Equal(t, skillsync.EINVALID, skillsync.ErrorCode(err))
	})

	t.Run("rejects empty config", func(t *testing.T) {
		t.Parallel()

		_, err := yaml.ParseTargets(strings.NewReader(""))

		require.Error(t, err)
		assert.Equal(t, "config is empty", skillsync.ErrorMessage(err))
	})

	t.Run("rejects config without targets", func(t *testing.T) {
		t.Parallel()

		_, err := yaml.ParseTargets(strings.NewReader("targets: []\n"))

		require.Error(t, err)
		assert.Equal(t, "no targets configured", skillsync.ErrorMessage(err))
	})

	t.Run("rejects invalid target", func(t *testing.T) {
		t.Parallel()

		cfg := `
targets:
  - name: just
    destination: SKILL.md
`

		_, err := yaml.ParseTargets(strings.NewReader(cfg))

		require.Error(t, err)
		assert.Equal(t, `target "just": url required`, skillsync.ErrorMessage(err))
	})
}

func TestLoadTargets(t *testing.T) {
	t.Parallel()

	t.Run("loads targets from file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "skillsync.yaml")
		cfg := "targets:\n  - name: just\n    url: https://example.com/README.md\n    destination: SKILL.md\n"
		require.NoError(t, os.WriteFile(path, []byte(cfg), 0644))

		targets, err := yaml.LoadTargets(path)

		require.NoError(t, err)
		require.Len(t, targets, 1)
		assert.Equal(t, "just", targets[0].Name)
	})

	t.Run("returns not found for missing file", func(t *testing.T) {
		t.Parallel()

		_, err := yaml.LoadTargets(filepath.Join(t.TempDir(), "missing.yaml"))

		require.Error(t, err)
		assert.Equal(t, skillsync.ENOTFOUND, skillsync.ErrorCode(err))
	})
}
