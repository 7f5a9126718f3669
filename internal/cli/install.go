package cli

import (
	"fmt"

	"github.com/ksyq12/phpdbg/internal/output"
	"github.com/spf13/cobra"
)

var installCmd = &cobra.Command{
	Use:   "install [extension]",
	Short: "Install or enable a debugging extension",
	Long: `Run the readiness workflow for an extension: report it as ready when
the runtime already loads it, offer to enable a present-but-disabled
directive, and otherwise offer to run the platform's install command
(streaming its output). Unattended installation is skipped on Windows
and inside containers that are not official PHP images; instructions
are printed instead.

Examples:
  phpdbg install xdebug
  phpdbg install pcov`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInstall,
}

func init() {
	rootCmd.AddCommand(installCmd)
}

func runInstall(cmd *cobra.Command, args []string) error {
	cfg, engine, err := loadEngine()
	if err != nil {
		return err
	}

	name := ""
	if len(args) > 0 {
		name = args[0]
	}
	drv, err := resolveDebugger(engine, cfg, name)
	if err != nil {
		return err
	}

	outcome := engine.Service.Ensure(drv, newConsoleUI())
	if jsonOutput {
		if err := output.JSON(outcome); err != nil {
			return err
		}
		if !outcome.Success {
			return fmt.Errorf("%s", outcome.Message)
		}
		return nil
	}

	if !outcome.Success {
		return fmt.Errorf("%s", outcome.Message)
	}
	output.Success("%s", outcome.Message)
	if outcome.RequiresRestart {
		restartNote()
	}
	return nil
}
