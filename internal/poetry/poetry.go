package poetry

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// IsInstalled returns true if poetry is available on the system PATH.
func IsInstalled() bool {
	_, err := exec.LookPath("poetry")
	return err == nil
}

// Version returns the tool's version string.
func Version(ctx context.Context) (string, error) {
	out, err := output(ctx, ".", "--version")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// Lock resolves the manifest in dir into a fresh lock file. The tool's
// own diagnostics stream through on failure.
func Lock(ctx context.Context, dir string) error {
	if err := run(ctx, dir, "lock"); err != nil {
		return fmt.Errorf("resolving dependencies: %w", err)
	}
	return nil
}

// Export renders the lock file in dir as flat requirements lines,
// without integrity hashes, into outFile.
func Export(ctx context.Context, dir, outFile string) error {
	err := run(ctx, dir,
		"export",
		"--format", "requirements.txt",
		"--without-hashes",
		"--output", outFile,
	)
	if err != nil {
		return fmt.Errorf("exporting lock file: %w", err)
	}
	return nil
}

// run executes a poetry command in the given directory, streaming its
// output to the console.
func run(ctx context.Context, dir string, args ...string) error {
	cmd := exec.CommandContext(ctx, "poetry", args...)
	cmd.Dir = dir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("poetry %s: %w", strings.Join(args, " "), err)
	}
	return nil
}

// output executes a poetry command and returns its stdout. Stderr is
// captured and included in the error message on failure.
func output(ctx context.Context, dir string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "poetry", args...)
	cmd.Dir = dir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("poetry %s: %w: %s", strings.Join(args, " "), err, stderr.String())
	}
	return stdout.String(), nil
}
