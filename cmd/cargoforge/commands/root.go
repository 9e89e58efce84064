// Package commands wires the cargoforge CLI: manifest loading, the
// placement engine, stability analysis and the output formatters.
package commands

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Version is stamped at build time via -ldflags.
var Version = "dev"

var (
	cfgFile     string
	flagFormat  string
	flagOutput  string
	flagVerbose bool
	flagQuiet   bool
	flagNoColor bool
)

var rootCmd = &cobra.Command{
	Use:   "cargoforge",
	Short: "Cargo ship load planning and stability analysis",
	Long: `CargoForge computes stowage plans for cargo ships.

It places manifest items into the ship's holds and deck using 3D
bin packing, enforces point-load, hazmat-separation and deck-weight
constraints, and reports the resulting center of gravity and
metacentric height.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ~/.cargoforge.yaml)")
	rootCmd.PersistentFlags().StringVarP(&flagFormat, "format", "f", "human", "output format: human, table, json, csv, markdown")
	rootCmd.PersistentFlags().StringVarP(&flagOutput, "output", "o", "", "write report to file instead of stdout")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "suppress warnings, log errors only")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable colored output")

	viper.BindPFlag("format", rootCmd.PersistentFlags().Lookup("format"))
	viper.BindPFlag("no-color", rootCmd.PersistentFlags().Lookup("no-color"))

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		initLogging()
	}
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.SetConfigFile(filepath.Join(home, ".cargoforge.yaml"))
			viper.SetConfigType("yaml")
		}
	}
	viper.SetEnvPrefix("CARGOFORGE")
	viper.AutomaticEnv()
	viper.ReadInConfig()
}

// initLogging configures the process-wide logger. Warnings from the
// engine and parser go to stderr so machine-readable stdout stays clean.
func initLogging() {
	level := slog.LevelWarn
	if flagVerbose {
		level = slog.LevelDebug
	} else if flagQuiet {
		level = slog.LevelError
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

// useColor reports whether styled terminal output is wanted.
func useColor() bool {
	if flagNoColor || viper.GetBool("no-color") {
		return false
	}
	if flagOutput != "" {
		return false
	}
	return true
}

// outputFormat resolves the effective format, config file included.
func outputFormat() string {
	if rootCmd.PersistentFlags().Changed("format") {
		return flagFormat
	}
	if f := viper.GetString("format"); f != "" {
		return f
	}
	return flagFormat
}

// openOutput returns the report destination and a close function.
func openOutput() (*os.File, func(), error) {
	if flagOutput == "" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(flagOutput)
	if err != nil {
		return nil, nil, fmt.Errorf("creating output file: %w", err)
	}
	return f, func() { f.Close() }, nil
}
