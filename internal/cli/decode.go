package cli

import (
	"encoding/json"
	"fmt"

	"github.com/AndersonLongara/AltraFitness-sub001/internal/models"
	"github.com/spf13/cobra"
)

func newDecodeCommand(a *app) *cobra.Command {
	var inputPath string

	cmd := &cobra.Command{
		Use:   "decode",
		Short: "Decode a stored assessment back to real units",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			stored, err := loadStored(cmd, inputPath)
			if err != nil {
				return err
			}
			return a.write(cmd, newAssessmentView(stored.ID, a.service.Restore(stored)))
		},
	}

	cmd.Flags().StringVarP(&inputPath, "input", "i", "-", "stored assessment JSON file, - for stdin")
	return cmd
}

func loadStored(cmd *cobra.Command, path string) (models.StoredAssessment, error) {
	body, err := readInput(cmd, path)
	if err != nil {
		return models.StoredAssessment{}, err
	}
	var stored models.StoredAssessment
	if err := json.Unmarshal(body, &stored); err != nil {
		return models.StoredAssessment{}, fmt.Errorf("decode stored assessment: %w", err)
	}
	return stored, nil
}
