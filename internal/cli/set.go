package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/satchel/pkg/types"
)

func newSetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "set <record> <property> <value>",
		Short: "Set one property of a record",
		Long: `Set one property of a record. The value uses the encoded form and is
normalized by the property's kind, so out-of-range numbers are clamped.
The stored value is printed.

Example:
  satchel set 0194... tags "urgent<|home"`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.property(args[1])
			if err != nil {
				return err
			}
			return a.withRecords(func(table types.RecordTable) error {
				s, err := a.openStore(table, args[0])
				if err != nil {
					return err
				}
				if err := s.SetValue(d, d.Decode(args[2])); err != nil {
					return storeError(err)
				}
				v, err := s.Value(d)
				if err != nil {
					return storeError(err)
				}
				view := viewOf(d, v)
				return a.emit(cmd.OutOrStdout(), view, func(w io.Writer) error {
					_, err := fmt.Fprintln(w, view.Encoded)
					return err
				})
			})
		},
	}
}
