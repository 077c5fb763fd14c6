package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/philipparndt/windpath/internal/config"
	"github.com/philipparndt/windpath/internal/logging"
	"github.com/philipparndt/windpath/version"
	"github.com/spf13/cobra"
)

var (
	configPath string
	logLevel   string
	logFormat  string

	cfg    config.Config
	logger = logging.Discard()
)

var rootCmd = &cobra.Command{
	Use:   "windpath",
	Short: "Place wind-turbine waypoints and plan a visiting order",
	Long: `windpath manages 3D waypoints for wind-turbine positions and computes a
visiting order through them with a nearest-neighbor heuristic.

Positions are read from a JSON seed file of the form
[{"position": [x, y, z]}, ...].`,
	Version:           version.GetFullVersion(),
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default "+config.DefaultPath()+")")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format: text or json")
}

func setup(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load(configPath)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("log-level") {
		loaded.Log.Level = logLevel
	}
	if cmd.Flags().Changed("log-format") {
		loaded.Log.Format = logFormat
	}
	if err := loaded.Validate(); err != nil {
		return err
	}

	l, err := logging.New(os.Stderr, loaded.Log.Format, loaded.Log.Level)
	if err != nil {
		return err
	}

	cfg = loaded
	logger = l
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", color.RedString("Error:"), err)
		os.Exit(1)
	}
}
