package main

import (
	"bytes"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/arthurlogilab/certbot/internal/poetry"
	"github.com/arthurlogilab/certbot/internal/project"
	"github.com/arthurlogilab/certbot/internal/requirements"
	"github.com/arthurlogilab/certbot/internal/ui"
	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify the requirements file matches a fresh resolution",
		RunE:  runCheck,
	}
}

func runCheck(cmd *cobra.Command, _ []string) error {
	dir, _ := cmd.Flags().GetString("dir")

	if !poetry.IsInstalled() {
		return errPoetryMissing
	}

	proj, err := project.Load(dir)
	if err != nil {
		return err
	}

	current, err := os.ReadFile(proj.OutputPath)
	if err != nil {
		return fmt.Errorf("requirements file missing; run repin from %s to generate it: %w",
			proj.Generator(), err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	steps := ui.NewSteps(cmd.ErrOrStderr(), 3)
	reqs, err := regenerate(ctx, proj, steps)
	if err != nil {
		return err
	}

	steps.Start("Comparing")
	want := requirements.Render(requirements.Header(proj.Generator()), reqs)
	if !bytes.Equal(current, want) {
		return fmt.Errorf("%s is stale; run repin from %s to regenerate it",
			proj.OutputPath, proj.Generator())
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s is up to date\n", proj.OutputPath)
	return nil
}
