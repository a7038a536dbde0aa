package main

import (
	"os"
	"path/filepath"
	"testing"
)

// sampleExport is what the stubbed tool emits for the export step. It
// mixes external pins, the project's own packages, a marker line, and
// an external package whose name nearly collides with a local one.
const sampleExport = `requests==2.31.0
acme==2.7.4
certbot==2.7.4
certbot-apache==2.7.4
certbotx==1.0.0
cffi==1.15.1 ; platform_python_implementation != "PyPy"
cryptography==41.0.5
`

// setupProject lays out repoRoot/tools/pinning with a manifest. With no
// pinning.yaml the defaults apply: output tools/requirements.txt,
// exclusions for acme/certbot/certbot-*.
func setupProject(t *testing.T) (repoRoot, pinDir string) {
	t.Helper()
	repoRoot = t.TempDir()
	pinDir = filepath.Join(repoRoot, "tools", "pinning")
	if err := os.MkdirAll(pinDir, 0755); err != nil {
		t.Fatal(err)
	}
	manifest := filepath.Join(pinDir, "pyproject.toml")
	if err := os.WriteFile(manifest, []byte("[tool.poetry]\nname = \"pinning\"\n"), 0644); err != nil {
		t.Fatal(err)
	}
	return repoRoot, pinDir
}

func runRepin(t *testing.T, args ...string) error {
	t.Helper()
	root := newRootCmd()
	root.SetArgs(args)
	return root.Execute()
}

// pinDirEntries returns the file names left in the pinning directory.
func pinDirEntries(t *testing.T, pinDir string) []string {
	t.Helper()
	entries, err := os.ReadDir(pinDir)
	if err != nil {
		t.Fatal(err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}
