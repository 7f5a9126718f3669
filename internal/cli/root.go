package cli

import (
	"os"

	"github.com/ksyq12/phpdbg/internal/logger"
	"github.com/spf13/cobra"
)

var (
	jsonOutput bool
	verbose    bool
	version    = "dev"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "phpdbg",
	Short: "PHP debugging extension manager",
	Long: `phpdbg is a CLI tool for installing, enabling and configuring PHP
debugging extensions (Xdebug, Pcov) through the live php.ini.

It provides commands to report extension status, enable or disable the
load directive, write an extension's settings block, run the install
workflow, and generate IDE debug configurations.`,
}

// Execute runs the root command
func Execute() {
	// Initialize logger based on verbose flag (parsed by cobra)
	cobra.OnInitialize(func() {
		logger.Init(verbose)
	})

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// SetVersion sets the version string for the CLI
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging for debugging")
}
