package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/satchel/pkg/store"
	"github.com/mesh-intelligence/satchel/pkg/types"
)

func newNewCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "new [property=value ...]",
		Short: "Create a record",
		Long: `Create a record holding every declared property. Properties not given
on the command line start at their defaults. Values use the encoded form.

Example:
  satchel new title=groceries "tags=food<|weekly"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			values := make(map[string]any, len(args))
			for _, arg := range args {
				name, encoded, ok := strings.Cut(arg, "=")
				if !ok {
					return userError(fmt.Errorf("expected property=value, got %q", arg))
				}
				d, err := a.property(name)
				if err != nil {
					return err
				}
				values[d.Name()] = d.Decode(encoded)
			}
			data := store.Encode(a.descs, values)

			return a.withRecords(func(table types.RecordTable) error {
				id, err := table.Set("", data)
				if err != nil {
					return sysError(fmt.Errorf("create record: %w", err))
				}
				a.logger.Info("record created", "record", id)
				return a.emit(cmd.OutOrStdout(), map[string]string{"record_id": id}, func(w io.Writer) error {
					_, err := fmt.Fprintln(w, id)
					return err
				})
			})
		},
	}
}
