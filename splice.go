package skillsync

import "strings"

// SpliceMode reports how Splice found the boundary between the hand-written
// header and the generated content.
type SpliceMode int

// SpliceMode constants.
const (
	// SpliceMarker means the marker was found in the existing text.
	SpliceMarker SpliceMode = iota

	// SpliceAppended means the marker was missing; the existing text was
	// kept as header and the marker appended after it.
	SpliceAppended

	// SpliceCreated means there was no existing text and a header was
	// synthesized from the title and marker.
	SpliceCreated
)

// String returns the name of the mode.
func (m SpliceMode) String() string {
	switch m {
	case SpliceMarker:
		return "marker"
	case SpliceAppended:
		return "appended"
	case SpliceCreated:
		return "created"
	default:
		return "unknown"
	}
}

// Splice replaces everything after marker in existing with content.
//
// When the marker is absent from non-blank text, the text is kept as the
// header and the marker is appended to it, so the next run finds it. When
// the destination does not exist (or is blank) the header is title followed
// by the marker.
func Splice(existing string, exists bool, content, marker, title string) (string, SpliceMode) {
	if exists && marker != "" {
		if idx := strings.Index(existing, marker); idx >= 0 {
			return existing[:idx+len(marker)] + "\n\n" + content, SpliceMarker
		}
	}

	trimmed := strings.TrimRight(existing, " \t\r\n")
	if exists && strings.TrimSpace(trimmed) != "" {
		return trimmed + "\n\n" + marker + "\n\n" + content, SpliceAppended
	}

	return FallbackHeader(title, marker) + "\n\n" + content, SpliceCreated
}

// FallbackHeader returns the header written to a destination that does not
// exist yet.
func FallbackHeader(title, marker string) string {
	if title == "" {
		return marker
	}
	return title + "\n\n" + marker
}
