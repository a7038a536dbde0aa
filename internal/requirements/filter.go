package requirements

import "strings"

// Exclusions matches locally-published package names that must not
// appear in the generated requirements file.
type Exclusions struct {
	exact    map[string]bool
	prefixes []string
}

// NewExclusions builds an exclusion set from config patterns. Each
// pattern is either an exact normalized name or a namespace prefix
// ending in "*", which matches at a hyphen boundary only: "certbot-*"
// excludes certbot-apache but not certbotx.
func NewExclusions(patterns []string) *Exclusions {
	ex := &Exclusions{exact: make(map[string]bool, len(patterns))}
	for _, pat := range patterns {
		if strings.HasSuffix(pat, "*") {
			// Normalization drops trailing separators, so the
			// boundary hyphen is appended after the fact.
			stem := NormalizeName(strings.TrimSuffix(pat, "*"))
			ex.prefixes = append(ex.prefixes, stem+"-")
			continue
		}
		ex.exact[NormalizeName(pat)] = true
	}
	return ex
}

// Match reports whether a normalized package name is excluded.
func (ex *Exclusions) Match(name string) bool {
	if ex.exact[name] {
		return true
	}
	for _, p := range ex.prefixes {
		if strings.HasPrefix(name, p) {
			return true
		}
	}
	return false
}

// Filter returns the requirements that survive the exclusion set, in
// their original order.
func Filter(reqs []Requirement, ex *Exclusions) []Requirement {
	kept := make([]Requirement, 0, len(reqs))
	for _, r := range reqs {
		if ex.Match(r.Name) {
			continue
		}
		kept = append(kept, r)
	}
	return kept
}
