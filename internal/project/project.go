package project

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/arthurlogilab/certbot/internal/config"
)

// Manifest and artifact names fixed by the external tool.
const (
	ManifestName = "pyproject.toml"
	LockName     = "poetry.lock"
	ConfigName   = "pinning.yaml"
)

// Context holds the resolved paths and loaded config for a pinning run.
type Context struct {
	// Dir is the pinning directory holding the manifest.
	Dir string
	// RepoRoot is two levels above Dir; the output path is resolved
	// against it.
	RepoRoot     string
	ManifestPath string
	LockPath     string
	ConfigPath   string
	// OutputPath is the absolute path of the generated requirements file.
	OutputPath string
	Config     *config.Config
}

// Load resolves the pinning directory, verifies the manifest is present,
// and loads pinning.yaml (falling back to defaults when absent).
func Load(dir string) (*Context, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving pinning directory: %w", err)
	}

	manifestPath := filepath.Join(dir, ManifestName)
	if _, err := os.Stat(manifestPath); err != nil {
		return nil, fmt.Errorf("no %s in %s (not a pinning directory)", ManifestName, dir)
	}

	ctx := &Context{
		Dir:          dir,
		RepoRoot:     filepath.Dir(filepath.Dir(dir)),
		ManifestPath: manifestPath,
		LockPath:     filepath.Join(dir, LockName),
		ConfigPath:   filepath.Join(dir, ConfigName),
	}

	if _, statErr := os.Stat(ctx.ConfigPath); statErr == nil {
		cfg, err := config.Load(ctx.ConfigPath)
		if err != nil {
			return nil, err
		}
		ctx.Config = cfg
	} else {
		ctx.Config = config.Default()
	}

	ctx.OutputPath = filepath.Join(ctx.RepoRoot, filepath.FromSlash(ctx.Config.Output))
	return ctx, nil
}

// Generator returns the repo-relative path of the pinning directory in
// slash form, used in the generated file's provenance header.
func (c *Context) Generator() string {
	rel, err := filepath.Rel(c.RepoRoot, c.Dir)
	if err != nil {
		return filepath.ToSlash(c.Dir)
	}
	return filepath.ToSlash(rel)
}
