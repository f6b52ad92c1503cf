package skillsync

import (
	"strconv"
	"strings"
	"unicode"
)

// Precedence decides which set wins when a heading matches both the exclude
// and the include set.
type Precedence string

// Precedence constants.
const (
	// PrecedenceExclude checks the exclude set first and consults the
	// include set only when nothing was excluded. This is the historical
	// check order of the sync script.
	PrecedenceExclude Precedence = "exclude"

	// PrecedenceInclude checks the include set first.
	PrecedenceInclude Precedence = "include"
)

// SectionRules selects sections of a document by heading title.
// Names are lowercase; a name matches a title that equals it or that starts
// with the name followed by a space.
type SectionRules struct {
	Exclude    []string   `yaml:"exclude"`
	Include    []string   `yaml:"include"`
	Precedence Precedence `yaml:"precedence"`
}

// DefaultSectionRules returns the rules used for the just README: keep what
// an end user needs, drop the maintainer-facing sections.
func DefaultSectionRules() SectionRules {
	return SectionRules{
		Exclude: []string{
			"installation",
			"backwards compatibility",
			"editor support",
			"changelog",
			"miscellanea",
			"contributing",
			"frequently asked questions",
			"further ramblings",
			"packages",
		},
		Include: []string{
			"quick start",
			"examples",
			"features",
			"the default recipe",
		},
		Precedence: PrecedenceExclude,
	}
}

// MatchSection reports whether title matches any of names.
// Title is expected to be lowercased and trimmed already.
func MatchSection(title string, names []string) bool {
	for _, name := range names {
		if title == name || strings.HasPrefix(title, name+" ") {
			return true
		}
	}
	return false
}

// Resolve returns the keep state after a heading with the given title.
// A title matching neither set leaves keeping unchanged.
func (r SectionRules) Resolve(title string, keeping bool) bool {
	title = strings.ToLower(strings.TrimSpace(title))

	if r.Precedence == PrecedenceInclude {
		if MatchSection(title, r.Include) {
			return true
		} else if MatchSection(title, r.Exclude) {
			return false
		}
		return keeping
	}

	if MatchSection(title, r.Exclude) {
		return false
	} else if MatchSection(title, r.Include) {
		return true
	}
	return keeping
}

// FilterSections returns a new document holding the nodes of doc that were
// encountered while the section state was "keep". Boilerplate HTML blocks
// are always dropped. Node order is preserved and doc is not modified.
func FilterSections(doc *Document, rules SectionRules) *Document {
	out := &Document{}
	if doc == nil {
		return out
	}

	keeping := true
	for _, n := range doc.Nodes {
		if n.Kind == KindHeading {
			keeping = rules.Resolve(n.Text, keeping)
		}

		if n.IsBoilerplate() {
			continue
		}

		if keeping {
			out.Nodes = append(out.Nodes, n)
		}
	}

	return out
}

// SectionDecision describes one heading of a document and whether its
// section survives filtering.
type SectionDecision struct {
	Level  int    `json:"level"`
	Title  string `json:"title"`
	Anchor string `json:"anchor"`
	Kept   bool   `json:"kept"`
}

// PlanSections walks the headings of doc and reports the keep state each
// one leaves behind. Anchors follow the GitHub heading-link rule.
func PlanSections(doc *Document, rules SectionRules) []SectionDecision {
	if doc == nil {
		return nil
	}

	var decisions []SectionDecision
	anchors := make(anchorSet)
	keeping := true

	for _, n := range doc.Nodes {
		if n.Kind != KindHeading {
			continue
		}
		keeping = rules.Resolve(n.Text, keeping)

		title := strings.TrimSpace(n.Text)
		decisions = append(decisions, SectionDecision{
			Level:  n.Level,
			Title:  title,
			Anchor: anchors.add(title),
			Kept:   keeping,
		})
	}

	return decisions
}

// anchorSet hands out unique anchors the way GitHub does for a rendered
// README: a repeated slug gets the next free "-N" suffix.
type anchorSet map[string]int

func (s anchorSet) add(title string) string {
	base := githubSlug(title)
	anchor := base
	for {
		if _, taken := s[anchor]; !taken {
			break
		}
		s[base]++
		anchor = base + "-" + strconv.Itoa(s[base])
	}
	s[anchor] = 0
	return anchor
}

// githubSlug lowercases title, turns each space into a hyphen and drops
// every rune that is not a letter, mark, digit, hyphen or underscore.
// Runs of hyphens are kept as they are.
func githubSlug(title string) string {
	var sb strings.Builder
	for _, r := range strings.ToLower(title) {
		switch {
		case r == ' ':
			sb.WriteByte('-')
		case r == '-' || r == '_':
			sb.WriteRune(r)
		case unicode.IsLetter(r) || unicode.IsMark(r) || unicode.IsDigit(r):
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
