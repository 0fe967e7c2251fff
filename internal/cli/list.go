package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/satchel/pkg/types"
)

func newListCmd(a *app) *cobra.Command {
	var (
		contains string
		limit    int
		offset   int
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List records",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			filter := types.Filter{}
			if contains != "" {
				filter["contains"] = contains
			}
			if limit > 0 {
				filter["limit"] = limit
			}
			if offset > 0 {
				filter["offset"] = offset
			}
			return a.withRecords(func(table types.RecordTable) error {
				recs, err := table.Fetch(filter)
				if err != nil {
					return sysError(fmt.Errorf("fetch records: %w", err))
				}
				return a.emit(cmd.OutOrStdout(), recs, func(w io.Writer) error {
					for _, r := range recs {
						fmt.Fprintf(w, "%s  %s  %d bytes\n", r.RecordID, r.UpdatedAt.Format("2006-01-02 15:04:05"), len(r.Data))
					}
					return nil
				})
			})
		},
	}
	cmd.Flags().StringVar(&contains, "contains", "", "only records whose encoded data contains this text")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of records")
	cmd.Flags().IntVar(&offset, "offset", 0, "number of records to skip")
	return cmd
}
