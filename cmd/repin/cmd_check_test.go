package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthurlogilab/certbot/internal/testutil"
)

func TestRunCheck_missingOutput(t *testing.T) {
	testutil.InstallFakePoetry(t, sampleExport)
	_, pinDir := setupProject(t)

	if err := runRepin(t, "--dir", pinDir, "check"); err == nil {
		t.Fatal("check should fail when the requirements file does not exist")
	}
}

func TestRunCheck_upToDate(t *testing.T) {
	testutil.InstallFakePoetry(t, sampleExport)
	_, pinDir := setupProject(t)

	if err := runRepin(t, "--dir", pinDir); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if err := runRepin(t, "--dir", pinDir, "check"); err != nil {
		t.Errorf("check should pass right after an update: %v", err)
	}
}

func TestRunCheck_staleAfterEdit(t *testing.T) {
	testutil.InstallFakePoetry(t, sampleExport)
	repoRoot, pinDir := setupProject(t)

	if err := runRepin(t, "--dir", pinDir); err != nil {
		t.Fatal(err)
	}

	outPath := filepath.Join(repoRoot, "tools", "requirements.txt")
	f, err := os.OpenFile(outPath, os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := f.WriteString("handedited==1.0.0\n"); err != nil {
		t.Fatal(err)
	}
	_ = f.Close()

	if err := runRepin(t, "--dir", pinDir, "check"); err == nil {
		t.Fatal("check should fail after a manual edit")
	}
}

func TestRunCheck_staleAfterResolutionChange(t *testing.T) {
	fp := testutil.InstallFakePoetry(t, sampleExport)
	_, pinDir := setupProject(t)

	if err := runRepin(t, "--dir", pinDir); err != nil {
		t.Fatal(err)
	}

	// The registry moved on: a fresh resolution now yields a newer pin.
	fp.SetExport(t, "requests==2.32.0\n")

	if err := runRepin(t, "--dir", pinDir, "check"); err == nil {
		t.Fatal("check should fail when a fresh resolution differs")
	}
}

func TestRunCheck_cleansEphemeralFiles(t *testing.T) {
	testutil.InstallFakePoetry(t, sampleExport)
	_, pinDir := setupProject(t)

	if err := runRepin(t, "--dir", pinDir); err != nil {
		t.Fatal(err)
	}
	if err := runRepin(t, "--dir", pinDir, "check"); err != nil {
		t.Fatal(err)
	}

	names := pinDirEntries(t, pinDir)
	if len(names) != 1 || names[0] != "pyproject.toml" {
		t.Errorf("check left ephemeral files behind: %v", names)
	}
}
