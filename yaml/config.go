// Package yaml loads skillsync targets from YAML configuration files.
package yaml

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/fwojciec/skillsync"
	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration format.
//
//	targets:
//	  - name: justfile
//	    url: https://raw.githubusercontent.com/casey/just/refs/heads/master/README.md
//	    destination: skills/justfile/SKILL.md
//	    sections:
//	      exclude: [installation, changelog]
//	      include: [quick start]
type Config struct {
	Targets []skillsync.Target `yaml:"targets"`
}

// ParseTargets decodes a configuration document and returns its targets.
// Omitted marker, title, format and sections fields take the defaults of
// skillsync.DefaultTarget. Unknown fields are rejected.
func ParseTargets(r io.Reader) ([]skillsync.Target, error) {
	var cfg Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, skillsync.Errorf(skillsync.EINVALID, "config is empty")
		}
		return nil, skillsync.Errorf(skillsync.EINVALID, "parse config: %v", err)
	}

	defaults := skillsync.DefaultTarget()
	for i := range cfg.Targets {
		applyDefaults(&cfg.Targets[i], defaults)
	}

	if err := skillsync.ValidateTargets(cfg.Targets); err != nil {
		return nil, err
	}
	return cfg.Targets, nil
}

// LoadTargets reads and parses the configuration file at path.
func LoadTargets(path string) ([]skillsync.Target, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, skillsync.Errorf(skillsync.ENOTFOUND, "config file %q not found", path)
	} else if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	return ParseTargets(f)
}

func applyDefaults(t *skillsync.Target, defaults skillsync.Target) {
	if t.Marker == "" {
		t.Marker = defaults.Marker
	}
	if t.Title == "" {
		t.Title = defaults.Title
	}
	if t.Format == "" {
		t.Format = defaults.Format
	}
	if t.Sections.Exclude == nil && t.Sections.Include == nil {
		precedence := t.Sections.Precedence
		t.Sections = defaults.Sections
		if precedence != "" {
			t.Sections.Precedence = precedence
		}
	}
	if t.Sections.Precedence == "" {
		t.Sections.Precedence = skillsync.PrecedenceExclude
	}
}
