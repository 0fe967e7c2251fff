package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/satchel/pkg/types"
)

func newGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get <record> <property>",
		Short: "Print one property of a record",
		Args:  cobra.ExactArgs(2),
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
