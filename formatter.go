package skillsync

import "strings"

// FormatSections formats section decisions as an indented outline.
// Each line is prefixed with "+" for kept sections and "-" for dropped ones.
func FormatSections(decisions []SectionDecision) string {
	if len(decisions) == 0 {
		return ""
	}

	lines := make([]string, 0, len(decisions))
	for _, d := range decisions {
		mark := "-"
		if d.Kept {
			mark = "+"
		}
		indent := strings.Repeat("  ", max(d.Level-1, 0))
		lines = append(lines, mark+" "+indent+d.Title+" (#"+d.Anchor+")")
	}

	return strings.Join(lines, "\n")
}
