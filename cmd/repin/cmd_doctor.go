package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/arthurlogilab/certbot/internal/poetry"
	"github.com/arthurlogilab/certbot/internal/project"
	"github.com/arthurlogilab/certbot/internal/requirements"
	"github.com/spf13/cobra"
)

func newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Diagnose environment for common issues",
		RunE:  runDoctor,
	}
}

func runDoctor(cmd *cobra.Command, _ []string) error {
	ok := true

	// Check the package manager.
	fmt.Print("Checking poetry... ")
	poetryPath, err := exec.LookPath("poetry")
	if err != nil {
		fmt.Println("NOT FOUND")
		fmt.Println("  poetry is required. Install the development environment (python tools/venv.py).")
		ok = false
	} else {
		fmt.Printf("found at %s\n", poetryPath)
	}

	if err == nil {
		fmt.Print("Checking poetry version... ")
		ver, verr := poetry.Version(cmd.Context())
		if verr != nil {
			fmt.Println("ERROR")
			ok = false
		} else {
			fmt.Println(ver)
		}
	}

	// Check the pinning directory if we are in one.
	dir, _ := cmd.Flags().GetString("dir")
	proj, loadErr := project.Load(dir)
	if loadErr != nil {
		fmt.Printf("No pinning directory at %s (%v)\n", dir, loadErr)
		ok = false
	} else {
		fmt.Printf("Pinning directory: %s\n", proj.Generator())
		fmt.Printf("  output: %s\n", proj.OutputPath)
		fmt.Printf("  exclusions: %d patterns\n", len(proj.Config.Exclude))
		checkOutput(proj)
	}

	if ok {
		fmt.Println("\nAll checks passed.")
		return nil
	}
	fmt.Println("\nSome checks failed. See above for details.")
	return fmt.Errorf("doctor checks failed")
}

// checkOutput reports on the current state of the generated file.
func checkOutput(proj *project.Context) {
	if _, err := os.Stat(filepath.Dir(proj.OutputPath)); err != nil {
		fmt.Printf("  Warning: output directory does not exist: %s\n", filepath.Dir(proj.OutputPath))
		return
	}
	reqs, err := requirements.Load(proj.OutputPath)
	if err != nil {
		fmt.Println("  requirements file not generated yet (run repin)")
		return
	}
	fmt.Printf("  requirements file: %d pins\n", len(reqs))
}
