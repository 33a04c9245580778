package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/braid-db/braid/backend"
	"github.com/braid-db/braid/objdb"
)

func init() {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "read <kind> <oid>",
		Short: "Read an object and print it",
		Long: `kind is one of: content, register, save, saveregister, commit.
Content is written to stdout as raw bytes; registers and saveregisters
print one tab-separated line per entry; saves and commits print their
struct fields with %+v, since this is a smoke-test shim rather than a
pretty-printer.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, ok := parseRefKind(args[0])
			if !ok {
				return fmt.Errorf("braidctl read: unknown kind %q", args[0])
			}
			oid, err := objdb.ParseOID(args[1])
			if err != nil {
				return fmt.Errorf("braidctl read: %w", err)
			}

			b, closer, err := openConfiguredBackend(cmd.Context())
			if err != nil {
				return err
			}
			defer closer()

			return printObject(cmd, b, kind, oid)
		},
	})
}

func printObject(cmd *cobra.Command, b backend.Backend, kind backend.RefKind, oid objdb.OID) error {
	ctx := cmd.Context()
	switch kind {
	case backend.RefContent:
		data, err := b.ReadContent(ctx, oid)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	case backend.RefRegister:
		reg, err := b.ReadRegister(ctx, oid)
		if err != nil {
			return err
		}
		for _, pair := range reg.Entries() {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", pair.Key, pair.Entry.Kind, pair.Entry.Target)
		}
		return nil
	case backend.RefSaveRegister:
		sr, err := b.ReadSaveRegister(ctx, oid)
		if err != nil {
			return err
		}
		for _, pair := range sr.Entries() {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", pair.Key, pair.Save)
		}
		return nil
	case backend.RefSave:
		save, err := b.ReadSave(ctx, oid)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%+v\n", save)
		return nil
	case backend.RefCommit:
		commit, err := b.ReadCommit(ctx, oid)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%+v\n", commit)
		return nil
	default:
		return fmt.Errorf("braidctl read: unreachable kind %v", kind)
	}
}
