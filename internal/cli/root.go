package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/AndersonLongara/AltraFitness-sub001/internal/config"
	"github.com/AndersonLongara/AltraFitness-sub001/internal/logging"
	"github.com/AndersonLongara/AltraFitness-sub001/internal/services"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type options struct {
	configFile string
	logLevel   string
}

// app holds what every subcommand needs once flags are parsed.
type app struct {
	cfg     *config.Config
	logger  *zap.Logger
	service *services.AssessmentService
}

// NewRootCommand builds the bodycomp command tree.
func NewRootCommand() *cobra.Command {
	opts := &options{}
	a := &app{}

	root := &cobra.Command{
		Use:   "bodycomp",
		Short: "Anthropometric body-composition calculator",
		Long: `bodycomp estimates body density, body-fat percentage, lean and fat mass, BMI and
basal metabolic rate from skinfold or bioimpedance measurements, and converts
assessments to and from their scaled-integer stored form.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(opts)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&opts.configFile, "config", "", "config file (default is $HOME/.bodycomp.yaml)")
	root.PersistentFlags().StringVarP(&opts.logLevel, "loglevel", "l", "", "Set log level. Available: debug, info, warn, error")

	root.AddCommand(
		newComputeCommand(a),
		newDecodeCommand(a),
		newCompareCommand(a),
		newProtocolsCommand(a),
	)
	return root
}

// Execute runs the command tree against the process arguments.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func (a *app) setup(opts *options) error {
	cfg, err := config.LoadConfig(opts.configFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.logLevel != "" {
		cfg.LogLevel = opts.logLevel
	}

	logger, err := logging.NewLogger(cfg.ServiceName, cfg.LogLevel)
	if err != nil {
		return err
	}
	logger.Debug("configuration loaded",
		zap.String("app_env", cfg.AppEnv),
		zap.String("config_file", cfg.ConfigFile),
		zap.String("default_protocol", cfg.DefaultProtocol.String()),
	)

	a.cfg = cfg
	a.logger = logger
	a.service = services.NewAssessmentService(logger, nil, nil)
	return nil
}

func (a *app) write(cmd *cobra.Command, value interface{}) error {
	encoder := json.NewEncoder(cmd.OutOrStdout())
	if a.cfg != nil && a.cfg.PrettyOutput {
		encoder.SetIndent("", "  ")
	}
	return encoder.Encode(value)
}

// readInput reads a file, or stdin when path is empty or "-".
func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	path = strings.TrimSpace(path)
	if path == "" || path == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	body, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return body, nil
}
