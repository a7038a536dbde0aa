package main

import (
	"encoding/json"

	"github.com/arthurlogilab/certbot/internal/project"
	"github.com/arthurlogilab/certbot/internal/requirements"
	"github.com/arthurlogilab/certbot/internal/ui"
	"github.com/spf13/cobra"
)

func newShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "List the currently pinned requirements",
		RunE:  runShow,
	}
	cmd.Flags().Bool("json", false, "Output as JSON")
	return cmd
}

type pinRow struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Marker  string `json:"marker,omitempty"`
}

func runShow(cmd *cobra.Command, _ []string) error {
	dir, _ := cmd.Flags().GetString("dir")
	asJSON, _ := cmd.Flags().GetBool("json")

	proj, err := project.Load(dir)
	if err != nil {
		return err
	}

	reqs, err := requirements.Load(proj.OutputPath)
	if err != nil {
		return err
	}

	rows := make([]pinRow, 0, len(reqs))
	for _, r := range reqs {
		rows = append(rows, pinRow{Name: r.Name, Version: r.Version, Marker: r.Marker})
	}

	out := cmd.OutOrStdout()

	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	}

	tbl := ui.NewTable(out, "NAME", "VERSION", "MARKER")
	for _, row := range rows {
		tbl.Row(row.Name, row.Version, row.Marker)
	}
	return tbl.Flush()
}
