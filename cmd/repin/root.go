package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "repin",
		Short:   "Regenerate the project's pinned requirements file",
		Version: version,
		// Bare invocation performs the update.
		RunE: runUpdate,
	}

	cmd.PersistentFlags().String("dir", ".", "Pinning directory containing pyproject.toml")

	cmd.AddCommand(
		newUpdateCmd(),
		newCheckCmd(),
		newShowCmd(),
		newDoctorCmd(),
		newInitCmd(),
	)

	return cmd
}
