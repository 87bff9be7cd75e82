package cli

import (
	"github.com/spf13/cobra"
)

func newCompareCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "compare PREV NEXT",
		Short: "Show the change between two stored assessments",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			prev, err := loadStored(cmd, args[0])
			if err != nil {
				return err
			}
			next, err := loadStored(cmd, args[1])
			if err != nil {
				return err
			}

			progress := a.service.Compare(prev, next)
			return a.write(cmd, progressView{
				FromID:         prev.ID,
				ToID:           next.ID,
				WeightKg:       progress.WeightKg,
				BodyFatPercent: progress.BodyFatPercent,
				LeanMassKg:     progress.LeanMassKg,
				FatMassKg:      progress.FatMassKg,
				BMI:            progress.BMI,
			})
		},
	}
}
