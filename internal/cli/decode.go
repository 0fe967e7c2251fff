package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/satchel/pkg/store"
)

// decodeView is the result of decoding a blob without storing it.
type decodeView struct {
	Properties []propertyView `json:"properties" yaml:"properties"`
	Unknown    []string       `json:"unknown,omitempty" yaml:"unknown,omitempty"`
}

func newDecodeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "decode <blob>",
		Short: "Decode a persisted blob against the declared properties",
		Long: `Decode a persisted blob against the declared properties without
touching storage. Names the blob holds that no property declares are
listed as unknown.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, unknown := store.Decode(a.descs, args[0])
			view := decodeView{Unknown: unknown}
			for _, d := range a.descs {
				view.Properties = append(view.Properties, viewOf(d, values[d.Name()]))
			}
			return a.emit(cmd.OutOrStdout(), view, func(w io.Writer) error {
				if err := writeViews(w, view.Properties); err != nil {
					return err
				}
				for _, name := range view.Unknown {
					fmt.Fprintf(w, "unknown: %s\n", name)
				}
				return nil
			})
		},
	}
}
