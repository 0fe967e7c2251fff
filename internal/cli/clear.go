package cli

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/satchel/pkg/types"
)

func newClearCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "clear <record> <property>",
		Short: "Reset one property of a record to its default",
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
				if err := s.Clear(d); err != nil {
					return storeError(err)
				}
				return nil
			})
		},
	}
}
