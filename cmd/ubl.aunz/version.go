package main

import (
	"encoding/json"

	"github.com/spf13/cobra"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version of the tool",
		RunE: func(cmd *cobra.Command, _ []string) error {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(struct {
				Version string `json:"version"`
				Date    string `json:"date,omitempty"`
			}{
				Version: version,
				Date:    date,
			})
		},
	}
}
