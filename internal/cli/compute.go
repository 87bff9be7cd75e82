package cli

import (
	"fmt"
	"strings"

	"github.com/AndersonLongara/AltraFitness-sub001/internal/bodycomp"
	"github.com/AndersonLongara/AltraFitness-sub001/internal/measurement"
	"github.com/AndersonLongara/AltraFitness-sub001/internal/services"
	"github.com/spf13/cobra"
)

func newComputeCommand(a *app) *cobra.Command {
	var (
		protocolName string
		inputPath    string
		stored       bool
	)

	cmd := &cobra.Command{
		Use:   "compute",
		Short: "Compute body composition for one measurement bundle",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := readInput(cmd, inputPath)
			if err != nil {
				return err
			}
			req, err := measurement.Parse(body)
			if err != nil {
				return err
			}

			protocol, err := resolveProtocol(protocolName, req.Protocol, a.cfg.DefaultProtocol)
			if err != nil {
				return err
			}
			if msg := measurement.Validate(req, protocol); msg != "" {
				return fmt.Errorf("%w: %s", services.ErrInvalidInput, msg)
			}

			record, err := a.service.Assess(protocol, req.Input())
			if err != nil {
				return err
			}
			if stored {
				return a.write(cmd, record.Stored)
			}
			return a.write(cmd, newAssessmentView(record.Stored.ID, record.Assessment))
		},
	}

	cmd.Flags().StringVarP(&protocolName, "protocol", "p", "", "protocol to apply (overrides the bundle and DEFAULT_PROTOCOL)")
	cmd.Flags().StringVarP(&inputPath, "input", "i", "-", "measurement bundle JSON file, - for stdin")
	cmd.Flags().BoolVar(&stored, "stored", false, "print the scaled-integer stored record")
	return cmd
}

// resolveProtocol picks the flag value, then the bundle's own protocol, then the configured default.
func resolveProtocol(flag, bundle string, fallback bodycomp.Protocol) (bodycomp.Protocol, error) {
	for _, candidate := range []string{flag, bundle} {
		if strings.TrimSpace(candidate) == "" {
			continue
		}
		protocol, err := bodycomp.ParseProtocol(candidate)
		if err != nil {
			return 0, fmt.Errorf("%w: %v", services.ErrInvalidInput, err)
		}
		return protocol, nil
	}
	return fallback, nil
}
