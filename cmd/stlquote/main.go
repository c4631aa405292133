package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/philipparndt/stlquote/internal/config"
	"github.com/philipparndt/stlquote/internal/logging"
	"github.com/philipparndt/stlquote/version"
	"github.com/spf13/cobra"
)

var (
	configPath string
	logLevel   string
	logFormat  string

	cfg    config.Config
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "stlquote",
	Short: "Instant 3D print quotes from STL files",
	Long: `stlquote summarizes STL (Stereolithography) files and prices them for 3D printing.
It reads both ASCII and binary STL, reports triangle count, bounding-box dimensions
and an estimated print volume, and turns that estimate into a quote per material.`,
	Version:           version.GetFullVersion(),
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "Log format (text, json)")
}

func loadConfig(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if logLevel != "" {
		loaded.LogLevel = logLevel
	}
	if logFormat != "" {
		loaded.LogFormat = logFormat
	}

	cfg = loaded
	logger = logging.New("stlquote", cfg.LogLevel, cfg.LogFormat, cmd.ErrOrStderr())
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
