package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/satchel/pkg/types"
)

// recordView is a record with its decoded properties.
type recordView struct {
	RecordID   string         `json:"record_id" yaml:"record_id"`
	UpdatedAt  string         `json:"updated_at" yaml:"updated_at"`
	Properties []propertyView `json:"properties" yaml:"properties"`
}

func newShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <record>",
		Short: "Print every property of a record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withRecords(func(table types.RecordTable) error {
				s, err := a.openStore(table, args[0])
				if err != nil {
					return err
				}
				rec, err := table.Get(args[0])
				if err != nil {
					return sysError(err)
				}
				values, err := s.Values()
				if err != nil {
					return storeError(err)
				}

				view := recordView{
					RecordID:  rec.RecordID,
					UpdatedAt: rec.UpdatedAt.Format("2006-01-02 15:04:05"),
				}
				for _, d := range a.descs {
					view.Properties = append(view.Properties, viewOf(d, values[d.Name()]))
				}
				return a.emit(cmd.OutOrStdout(), view, func(w io.Writer) error {
					fmt.Fprintf(w, "ID:       %s\n", view.RecordID)
					fmt.Fprintf(w, "Updated:  %s\n\n", view.UpdatedAt)
					return writeViews(w, view.Properties)
				})
			})
		},
	}
}
