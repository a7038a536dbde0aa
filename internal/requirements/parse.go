package requirements

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"strings"
)

// Load reads a requirements-format file.
func Load(path string) ([]Requirement, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading requirements: %w", err)
	}
	return Parse(data)
}

// Parse parses requirements-format content, preserving the tool's line
// order. Comment and blank lines are skipped.
func Parse(data []byte) ([]Requirement, error) {
	var reqs []Requirement
	sc := bufio.NewScanner(bytes.NewReader(data))
	n := 0
	for sc.Scan() {
		n++
		req, ok, err := ParseLine(sc.Text())
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n, err)
		}
		if ok {
			reqs = append(reqs, req)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scanning requirements: %w", err)
	}
	return reqs, nil
}

// ParseLine parses a single requirements line. It returns ok=false for
// blank lines, comments, and option lines such as --extra-index-url,
// which declare no dependency.
func ParseLine(line string) (Requirement, bool, error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") || strings.HasPrefix(trimmed, "-") {
		return Requirement{}, false, nil
	}

	req := Requirement{Raw: line}

	spec := trimmed
	if idx := strings.Index(spec, ";"); idx >= 0 {
		req.Marker = strings.TrimSpace(spec[idx+1:])
		spec = strings.TrimSpace(spec[:idx])
	}

	name := spec
	if idx := strings.Index(name, "=="); idx >= 0 {
		req.Version = strings.TrimSpace(name[idx+2:])
		name = name[:idx]
	}
	// Strip extras: requests[security]==2.31.0
	if idx := strings.Index(name, "["); idx >= 0 {
		name = name[:idx]
	}
	if idx := strings.IndexAny(name, " <>=!~@"); idx >= 0 {
		name = name[:idx]
	}
	name = NormalizeName(name)
	if name == "" {
		return Requirement{}, false, fmt.Errorf("cannot parse requirement: %q", line)
	}
	req.Name = name

	return req, true, nil
}
