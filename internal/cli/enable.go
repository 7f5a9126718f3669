package cli

import (
	"github.com/spf13/cobra"
)

var enableCmd = &cobra.Command{
	Use:   "enable [extension]",
	Short: "Enable a debugging extension in php.ini",
	Long: `Enable an extension's load directive in php.ini.

An existing commented directive is uncommented; when no directive exists
a fresh one is appended with the extension's prefix (extension= or
zend_extension=).

Examples:
  phpdbg enable xdebug
  phpdbg enable pcov`,
	Args: cobra.MaximumNArgs(1),
	RunE: runEnable,
}

var disableCmd = &cobra.Command{
	Use:   "disable [extension]",
	Short: "Disable a debugging extension in php.ini",
	Long: `Comment out an extension's load directive in php.ini.

Examples:
  phpdbg disable xdebug`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDisable,
}

func init() {
	rootCmd.AddCommand(enableCmd)
	rootCmd.AddCommand(disableCmd)
}

func runEnable(cmd *cobra.Command, args []string) error {
	return setEnabled(args, true, "enable")
}

func runDisable(cmd *cobra.Command, args []string) error {
	return setEnabled(args, false, "disable")
}

func setEnabled(args []string, enabled bool, action string) error {
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

	if err := drv.SetEnabled(enabled); err != nil {
		return err
	}

	if err := outputResult(newSuccessResult(drv.Name(), action), "%sd %s", action, drv.Name()); err != nil {
		return err
	}
	if !jsonOutput {
		restartNote()
	}
	return nil
}
