package cli

import (
	"github.com/AndersonLongara/AltraFitness-sub001/internal/bodycomp"
	"github.com/spf13/cobra"
)

func newProtocolsCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "protocols",
		Short: "List supported protocols and the skinfold sites each one sums",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			views := make([]protocolView, 0, len(bodycomp.Protocols()))
			for _, protocol := range bodycomp.Protocols() {
				views = append(views, newProtocolView(protocol))
			}
			return a.write(cmd, views)
		},
	}
}
