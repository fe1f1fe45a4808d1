package cmd

import (
	"errors"
	"os"

	"github.com/cesarferreira/bluepods/internal/bluetooth"
	"github.com/cesarferreira/bluepods/internal/output"
	"github.com/cesarferreira/bluepods/pkg/logging"

	"github.com/spf13/cobra"
)

// Exit codes for CLI commands.
// These provide semantic exit codes for scripting and automation.
const (
	// ExitCodeSuccess indicates successful execution.
	ExitCodeSuccess = 0
	// ExitCodeError indicates a general error (failed query or action, invalid arguments).
	ExitCodeError = 1
	// ExitCodeAdapterUnavailable indicates the external Bluetooth tool is not installed.
	ExitCodeAdapterUnavailable = 2
	// ExitCodeNoMatch indicates the search string matched no paired device.
	ExitCodeNoMatch = 3
	// ExitCodeInvalidSelection indicates the disambiguation prompt received invalid input.
	ExitCodeInvalidSelection = 4
)

// Global flags shared by all subcommands.
var (
	flagDebug   bool
	flagNoColor bool
	flagQuiet   bool
)

// rootCmd represents the base command for the bluepods application.
// It is the entry point when the application is called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "bluepods",
	Short: "Query and control paired Bluetooth devices",
	Long: `bluepods wraps the blueutil command-line tool and adds fuzzy
device-name matching, interactive disambiguation when a name is
ambiguous, and colorized status output.`,
	// SilenceUsage prevents Cobra from printing the usage message on errors
	// that are handled by the application.
	SilenceUsage: true,
	// SilenceErrors lets Execute render errors itself as colored text.
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := logging.LevelWarn
		if flagDebug {
			level = logging.LevelDebug
		}
		logging.Init(level, os.Stderr)
		if flagNoColor {
			output.DisableColors()
		}
	},
}

// SetVersion sets the version for the root command.
// This function is typically called from the main package to inject the application version at build time.
func SetVersion(v string) {
	rootCmd.Version = v
}

// GetVersion returns the current version of the application.
func GetVersion() string {
	return rootCmd.Version
}

// Execute is the main entry point for the CLI application.
// It initializes and executes the root command, which in turn handles
// subcommands and flags. This function is called by main.main().
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "bluepods version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		output.Errorf(os.Stderr, "Error: %v", err)
		os.Exit(getExitCode(err))
	}
}

// getExitCode determines the appropriate exit code based on the error type.
func getExitCode(err error) int {
	var unavailable *bluetooth.UnavailableError
	if errors.As(err, &unavailable) {
		return ExitCodeAdapterUnavailable
	}

	var noMatch *bluetooth.NoMatchError
	if errors.As(err, &noMatch) {
		return ExitCodeNoMatch
	}

	var invalidSelection *bluetooth.InvalidSelectionError
	if errors.As(err, &invalidSelection) {
		return ExitCodeInvalidSelection
	}

	// QueryError, ActionError and anything unexpected map to the general code.
	return ExitCodeError
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging to stderr")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colorized output")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress progress spinners")

	rootCmd.AddCommand(newStatusCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newConnectCmd())
	rootCmd.AddCommand(newDisconnectCmd())
	rootCmd.AddCommand(newToggleCmd())
	rootCmd.AddCommand(newPowerCmd())
	rootCmd.AddCommand(newVersionCmd())
}
