package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// FakePoetry is a stub poetry executable placed on PATH for a test. It
// emulates the lock and export subcommands against fixture data and can
// be told to fail either step.
type FakePoetry struct {
	// Dir holds the stub executable and its fixture files.
	Dir string
}

const fakeScript = `#!/bin/sh
# Stub poetry used by tests.
cmd="$1"
case "$cmd" in
  --version)
    echo "Poetry (version 1.8.2)"
    ;;
  lock)
    if [ -f "%[1]s/fail-lock" ]; then
      echo "SolverProblemError: version solving failed" >&2
      exit 1
    fi
    printf '# stub lock\n' > poetry.lock
    ;;
  export)
    if [ -f "%[1]s/fail-export" ]; then
      echo "export failed" >&2
      exit 1
    fi
    if [ ! -f poetry.lock ]; then
      echo "poetry.lock not found" >&2
      exit 1
    fi
    out=""
    while [ $# -gt 0 ]; do
      if [ "$1" = "--output" ]; then
        out="$2"
        shift
      fi
      shift
    done
    if [ -z "$out" ]; then
      echo "missing --output" >&2
      exit 1
    fi
    cp "%[1]s/export.txt" "$out"
    ;;
  *)
    echo "unknown command: $cmd" >&2
    exit 1
    ;;
esac
`

// InstallFakePoetry writes the stub onto a fresh PATH entry and seeds
// its export fixture. The PATH change is scoped to the test.
func InstallFakePoetry(t *testing.T, export string) *FakePoetry {
	t.Helper()
	dir := t.TempDir()

	script := fmt.Sprintf(fakeScript, dir)
	if err := os.WriteFile(filepath.Join(dir, "poetry"), []byte(script), 0755); err != nil { //nolint:gosec // test executable
		t.Fatal(err)
	}

	fp := &FakePoetry{Dir: dir}
	fp.SetExport(t, export)
	t.Setenv("PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH"))
	return fp
}

// SetExport replaces the content the stub writes on export.
func (f *FakePoetry) SetExport(t *testing.T, export string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(f.Dir, "export.txt"), []byte(export), 0644); err != nil {
		t.Fatal(err)
	}
}

// FailLock makes the lock subcommand exit non-zero.
func (f *FakePoetry) FailLock(t *testing.T) {
	t.Helper()
	f.touch(t, "fail-lock")
}

// FailExport makes the export subcommand exit non-zero.
func (f *FakePoetry) FailExport(t *testing.T) {
	t.Helper()
	f.touch(t, "fail-export")
}

func (f *FakePoetry) touch(t *testing.T, name string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(f.Dir, name), nil, 0644); err != nil {
		t.Fatal(err)
	}
}

// WithoutPoetry points PATH at an empty directory so the tool cannot be
// found, scoped to the test.
func WithoutPoetry(t *testing.T) {
	t.Helper()
	t.Setenv("PATH", t.TempDir())
}
