package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/braid-db/braid/objdb"
)

func init() {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "exists <kind> <oid>",
		Short: "Check whether an object exists in the configured backend",
		Long:  "kind is one of: content, register, save, saveregister, commit.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, ok := parseRefKind(args[0])
			if !ok {
				return fmt.Errorf("braidctl exists: unknown kind %q", args[0])
			}
			oid, err := objdb.ParseOID(args[1])
			if err != nil {
				return fmt.Errorf("braidctl exists: %w", err)
			}

			b, closer, err := openConfiguredBackend(cmd.Context())
			if err != nil {
				return err
			}
			defer closer()

			found, err := b.Exists(cmd.Context(), kind, oid)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), found)
			return nil
		},
	})
}
