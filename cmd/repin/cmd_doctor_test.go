package main

import (
	"testing"

	"github.com/arthurlogilab/certbot/internal/testutil"
)

func TestRunDoctor_healthy(t *testing.T) {
	testutil.InstallFakePoetry(t, sampleExport)
	_, pinDir := setupProject(t)

	if err := runRepin(t, "--dir", pinDir, "doctor"); err != nil {
		t.Errorf("doctor should pass with tool and manifest present: %v", err)
	}
}

func TestRunDoctor_missingTool(t *testing.T) {
	testutil.WithoutPoetry(t)
	_, pinDir := setupProject(t)

	if err := runRepin(t, "--dir", pinDir, "doctor"); err == nil {
		t.Error("doctor should fail when poetry is absent")
	}
}

func TestRunDoctor_missingManifest(t *testing.T) {
	testutil.InstallFakePoetry(t, sampleExport)

	if err := runRepin(t, "--dir", t.TempDir(), "doctor"); err == nil {
		t.Error("doctor should fail outside a pinning directory")
	}
}
