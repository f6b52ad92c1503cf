package skillsync

import (
	"net/url"
	"path/filepath"
)

// Defaults reproduce the just skill sync.
const (
	DefaultName        = "justfile"
	DefaultURL         = "https://raw.githubusercontent.com/casey/just/refs/heads/master/README.md"
	DefaultDestination = "skills/justfile/SKILL.md"
	DefaultMarker      = "It fully documents the Justfile syntax and system.\n\n---"
	DefaultTitle       = "# Justfile\n\nThis skill mirrors the user-facing parts of the just README."
)

// Target describes one upstream document and the local file it is spliced into.
type Target struct {
	Name        string       `yaml:"name"`
	URL         string       `yaml:"url"`
	Destination string       `yaml:"destination"`
	Marker      string       `yaml:"marker"`
	Title       string       `yaml:"title"`
	Format      Format       `yaml:"format"`
	Sections    SectionRules `yaml:"sections"`
}

// DefaultTarget returns the target for the just README.
func DefaultTarget() Target {
	return Target{
		Name:        DefaultName,
		URL:         DefaultURL,
		Destination: DefaultDestination,
		Marker:      DefaultMarker,
		Title:       DefaultTitle,
		Format:      FormatGoldmark,
		Sections:    DefaultSectionRules(),
	}
}

// Validate returns an error if the target contains invalid fields.
func (t *Target) Validate() error {
	if t.Name == "" {
		return Errorf(EINVALID, "target name required")
	}
	if t.URL == "" {
		return Errorf(EINVALID, "target %q: url required", t.Name)
	}
	u, err := url.Parse(t.URL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return Errorf(EINVALID, "target %q: url must be an absolute http(s) URL", t.Name)
	}
	if t.Destination == "" {
		return Errorf(EINVALID, "target %q: destination required", t.Name)
	}
	if t.Marker == "" {
		return Errorf(EINVALID, "target %q: marker required", t.Name)
	}
	switch t.Format {
	case FormatGoldmark, FormatLines:
	default:
		return Errorf(EINVALID, "target %q: unknown format %q", t.Name, t.Format)
	}
	switch t.Sections.Precedence {
	case "", PrecedenceExclude, PrecedenceInclude:
	default:
		return Errorf(EINVALID, "target %q: unknown precedence %q", t.Name, t.Sections.Precedence)
	}
	for _, name := range t.Sections.Exclude {
		if contains(t.Sections.Include, name) {
			return Errorf(EINVALID, "target %q: section %q is both excluded and included", t.Name, name)
		}
	}
	return nil
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}

// ValidateTargets validates each target and rejects duplicate names and
// targets that would write the same destination.
func ValidateTargets(targets []Target) error {
	if len(targets) == 0 {
		return Errorf(EINVALID, "no targets configured")
	}
	names := make(map[string]bool, len(targets))
	dests := make(map[string]string, len(targets))
	for i := range targets {
		t := &targets[i]
		if err := t.Validate(); err != nil {
			return err
		}
		if names[t.Name] {
			return Errorf(EINVALID, "duplicate target name %q", t.Name)
		}
		names[t.Name] = true

		dest := filepath.Clean(t.Destination)
		if other, ok := dests[dest]; ok {
			return Errorf(EINVALID, "targets %q and %q write the same destination %q", other, t.Name, t.Destination)
		}
		dests[dest] = t.Name
	}
	return nil
}

// FindTarget returns the target with the given name.
// Returns ENOTFOUND if no target has that name.
func FindTarget(targets []Target, name string) (*Target, error) {
	for i := range targets {
		if targets[i].Name == name {
			return &targets[i], nil
		}
	}
	return nil, Errorf(ENOTFOUND, "target %q not found", name)
}
