package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var writeFromFile string

func init() {
	cmd := &cobra.Command{
		Use:   "write",
		Short: "Write raw content bytes and print the resulting OID",
		Long: `write stores a Content object. Bytes come from --file, or from
stdin if --file is omitted. It does not accept registers, saves, or
commits: building those is a client library's job, not this shim's.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var r io.Reader = cmd.InOrStdin()
			if writeFromFile != "" {
				f, err := os.Open(writeFromFile)
				if err != nil {
					return fmt.Errorf("braidctl write: %w", err)
				}
				defer f.Close()
				r = f
			}

			data, err := io.ReadAll(r)
			if err != nil {
				return fmt.Errorf("braidctl write: %w", err)
			}

			b, closer, err := openConfiguredBackend(cmd.Context())
			if err != nil {
				return err
			}
			defer closer()

			oid, err := b.WriteContent(cmd.Context(), data)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), oid.String())
			return nil
		},
	}
	cmd.Flags().StringVar(&writeFromFile, "file", "", "path to read content bytes from (default: stdin)")
	rootCmd.AddCommand(cmd)
}
