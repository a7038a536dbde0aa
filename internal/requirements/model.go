package requirements

import "strings"

// Requirement is a single pinned dependency from a requirements-format
// export. Raw preserves the exported line exactly as the tool wrote it;
// the parsed fields exist for filtering and display.
type Requirement struct {
	// Raw is the original export line, written back verbatim.
	Raw string
	// Name is the normalized package name.
	Name string
	// Version is the pinned version.
	Version string
	// Marker is the environment marker, if any (the part after ";").
	Marker string
}

// String returns the line as it appears in the requirements file.
func (r Requirement) String() string { return r.Raw }

// NormalizeName lowercases a package name and collapses runs of
// ".", "-" and "_" into single hyphens, the comparison form used by
// Python package indexes.
func NormalizeName(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	sep := false
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		if r == '.' || r == '-' || r == '_' {
			sep = true
			continue
		}
		if sep && b.Len() > 0 {
			b.WriteByte('-')
		}
		sep = false
		b.WriteRune(r)
	}
	return b.String()
}
