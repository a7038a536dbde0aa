package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/arthurlogilab/certbot/internal/config"
	"github.com/arthurlogilab/certbot/internal/project"
	"github.com/arthurlogilab/certbot/internal/requirements"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a pinning.yaml interactively or from flags",
		RunE:  runInit,
	}
	cmd.Flags().String("project", "", "Project name")
	cmd.Flags().String("output", "tools/requirements.txt", "Repo-relative output path")
	cmd.Flags().StringSlice("exclude", nil, "Excluded package name or trailing-* prefix (repeatable)")
	cmd.Flags().Bool("force", false, "Overwrite an existing pinning.yaml")
	return cmd
}

func runInit(cmd *cobra.Command, _ []string) error {
	dir, _ := cmd.Flags().GetString("dir")
	projName, _ := cmd.Flags().GetString("project")
	output, _ := cmd.Flags().GetString("output")
	exclude, _ := cmd.Flags().GetStringSlice("exclude")
	force, _ := cmd.Flags().GetBool("force")

	dir, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("resolving pinning directory: %w", err)
	}
	configPath := filepath.Join(dir, project.ConfigName)

	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", configPath)
	}

	if projName == "" {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			return fmt.Errorf("stdin is not a terminal; pass --project (and optionally --exclude) for non-interactive init")
		}
		projName, output, exclude, err = interactiveInit(output)
		if err != nil {
			return err
		}
	}

	if len(exclude) == 0 {
		// A project's own packages are the only default exclusions.
		exclude = []string{requirements.NormalizeName(projName), requirements.NormalizeName(projName) + "-*"}
	}

	cfg := &config.Config{
		Version: 1,
		Project: projName,
		Output:  output,
		Exclude: exclude,
	}
	if err := config.Save(configPath, cfg); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", configPath)
	return nil
}
