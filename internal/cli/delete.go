package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/satchel/pkg/types"
)

func newDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <record>",
		Short: "Delete a record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withRecords(func(table types.RecordTable) error {
				err := table.Delete(args[0])
				if errors.Is(err, types.ErrNotFound) || errors.Is(err, types.ErrInvalidID) {
					return userError(fmt.Errorf("record %q not found", args[0]))
				}
				if err != nil {
					return sysError(fmt.Errorf("delete record: %w", err))
				}
				a.logger.Info("record deleted", "record", args[0])
				return nil
			})
		},
	}
}
