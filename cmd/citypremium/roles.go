package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nao1215/citypremium/internal/dataset"
)

// NewRolesCmd creates the roles command.
func NewRolesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "roles",
		Short: "List the roles that can be passed to --role",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			def, err := dataset.Default()
			if err != nil {
				return err
			}
			for _, name := range def.RoleNames() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}
