package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"tfanalyze/internal/analyzer"
	"tfanalyze/internal/config"
	apperrors "tfanalyze/internal/errors"
	"tfanalyze/internal/ui"
	"tfanalyze/internal/version"
)

var (
	// Global flags
	inputFile  string
	outputFile string
	planID     string
	pretty     bool
	noColor    bool
	verbose    bool

	// Logger
	logger *zap.Logger
)

// rootCmd analyzes terraform plan output from a file or stdin and writes
// the JSON report to a file or stdout.
var rootCmd = &cobra.Command{
	Use:   "tfanalyze",
	Short: "Analyze terraform plan output and suggest fixes",
	Long: `tfanalyze reads the raw text output of "terraform plan", extracts
resource counts and error blocks, classifies each error into a fixed
taxonomy and attaches remediation recommendations.

The result is a single JSON report on stdout (or a file with -o). Plan
text is read from stdin unless -f is given.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := zap.NewProductionConfig()
		if verbose {
			cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = cfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runAnalyze,
}

// versionCmd prints version information.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.Info())
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.Flags().StringVarP(&inputFile, "file", "f", "", "Path to a file containing terraform plan output (default: stdin)")
	rootCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Path to the output JSON file (default: stdout)")
	rootCmd.Flags().StringVar(&planID, "plan-id", "", "Optional identifier recorded in the report metadata")
	rootCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty print the JSON output")
	rootCmd.Flags().BoolVar(&noColor, "no-color", false, "Disable the colored status banner")

	rootCmd.AddCommand(versionCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, created, err := config.LoadConfig()
	if err != nil {
		return apperrors.NewConfigurationError("config", "failed to load configuration", err)
	}
	ui.InitColors(cfg)
	if created {
		logger.Debug("created default configuration file")
	}

	planText, err := readPlanText()
	if err != nil {
		return err
	}
	logger.Debug("read plan output", zap.Int("bytes", len(planText)))

	report := analyzer.Analyze(planText, analyzer.Options{PlanID: planID})
	logger.Debug("analysis complete",
		zap.String("status", string(report.Status)),
		zap.Int("errors", len(report.Errors)))

	data, err := marshalReport(report, pretty || cfg.Output.Pretty)
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}

	if err := writeReport(data); err != nil {
		return err
	}

	// Banner goes to stderr so piped stdout stays valid JSON.
	if cfg.Output.Color && !noColor {
		fmt.Fprintln(os.Stderr, ui.StatusBanner(report.Status, report.Summary))
	}

	return nil
}

func readPlanText() (string, error) {
	if inputFile == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", apperrors.NewInputError("stdin", "failed to read plan output", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(inputFile)
	if err != nil {
		return "", apperrors.NewInputError(inputFile, "failed to read plan output", err)
	}
	return string(data), nil
}

func marshalReport(report interface{}, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(report, "", "  ")
	}
	return json.Marshal(report)
}

func writeReport(data []byte) error {
	if outputFile == "" {
		fmt.Println(string(data))
		return nil
	}

	if err := os.WriteFile(outputFile, append(data, '\n'), 0644); err != nil {
		return apperrors.NewInputError(outputFile, "failed to write report", err)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		apperrors.ExitWithError(err, 1)
	}
}
