package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/arthurlogilab/certbot/internal/poetry"
	"github.com/arthurlogilab/certbot/internal/project"
	"github.com/arthurlogilab/certbot/internal/requirements"
	"github.com/arthurlogilab/certbot/internal/ui"
	"github.com/spf13/cobra"
)

func newUpdateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "update",
		Short: "Re-resolve the manifest and rewrite the requirements file",
		RunE:  runUpdate,
	}
}

func runUpdate(cmd *cobra.Command, _ []string) error {
	dir, _ := cmd.Flags().GetString("dir")

	if !poetry.IsInstalled() {
		return errPoetryMissing
	}

	proj, err := project.Load(dir)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	steps := ui.NewSteps(cmd.ErrOrStderr(), 3)
	reqs, err := regenerate(ctx, proj, steps)
	if err != nil {
		return err
	}

	// The destination is only touched here, after filtering succeeded.
	steps.Start("Writing requirements")
	header := requirements.Header(proj.Generator())
	if err := requirements.Save(proj.OutputPath, header, reqs); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d pins to %s\n", len(reqs), proj.OutputPath)
	return nil
}

var errPoetryMissing = errors.New(
	"poetry not found on PATH; install the development environment " +
		"(python tools/venv.py) and activate it, then rerun repin")

// regenerate runs the lock, export and filter stages and returns the
// filtered pins. The tool's lock file and the temporary export file are
// removed before it returns, on every path, so repeated runs never see
// stale state and the lock file is never left behind to be committed.
func regenerate(ctx context.Context, proj *project.Context, steps *ui.Steps) ([]requirements.Requirement, error) {
	// Drop any pre-existing lock file so the next step performs a
	// full re-resolution rather than an incremental one.
	if err := os.Remove(proj.LockPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("removing stale lock file: %w", err)
	}
	defer func() { _ = os.Remove(proj.LockPath) }()

	steps.Start("Resolving dependencies")
	if err := poetry.Lock(ctx, proj.Dir); err != nil {
		return nil, err
	}

	tmp, err := os.CreateTemp(proj.Dir, ".repin-export-*")
	if err != nil {
		return nil, fmt.Errorf("creating temporary export file: %w", err)
	}
	tmpPath := tmp.Name()
	_ = tmp.Close()
	defer func() { _ = os.Remove(tmpPath) }()

	steps.Start("Exporting pins")
	if err := poetry.Export(ctx, proj.Dir, tmpPath); err != nil {
		return nil, err
	}

	reqs, err := requirements.Load(tmpPath)
	if err != nil {
		return nil, err
	}
	return requirements.Filter(reqs, requirements.NewExclusions(proj.Config.Exclude)), nil
}
