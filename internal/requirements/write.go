package requirements

import (
	"bytes"
	"fmt"
	"os"
)

// Header returns the provenance comment written at the top of the
// generated file. generator is the repository-relative path of the
// pinning directory the tool was run from.
func Header(generator string) string {
	return fmt.Sprintf(`# This file is generated by running repin from %s and should not
# be edited by hand.
#
# pip does not consume these pins directly. The file records the
# project's full resolved dependency graph, minus its own packages, so
# that tooling which watches requirements files (such as automated
# dependency update services) can see the transitive pins.
`, generator)
}

// Render produces the full file content: header first, then the
// requirement lines verbatim in the given order.
func Render(header string, reqs []Requirement) []byte {
	var buf bytes.Buffer
	buf.WriteString(header)
	for _, r := range reqs {
		buf.WriteString(r.Raw)
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

// Save writes the requirements file in a single operation. The
// destination is only ever touched here, after filtering has succeeded.
func Save(path string, header string, reqs []Requirement) error {
	if err := os.WriteFile(path, Render(header, reqs), 0644); err != nil {
		return fmt.Errorf("writing requirements file: %w", err)
	}
	return nil
}
