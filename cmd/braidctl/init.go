package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Open the configured backend, bootstrapping its sentinels if needed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, closer, err := openConfiguredBackend(cmd.Context())
			if err != nil {
				return err
			}
			defer closer()
			fmt.Fprintln(cmd.OutOrStdout(), "backend ready")
			return nil
		},
	})
}
