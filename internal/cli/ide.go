package cli

import (
	"fmt"

	"github.com/ksyq12/phpdbg/internal/output"
	"github.com/spf13/cobra"
)

var ideFlags struct {
	projectPath string
}

var ideCmd = &cobra.Command{
	Use:   "ide [name]",
	Short: "Generate an IDE debug configuration",
	Long: `Write the debug configuration file for an IDE into the project.

Without a name the project is inspected and the first matching IDE is
used (.vscode, .idea, or a sublime-project file).

Examples:
  phpdbg ide
  phpdbg ide vscode --path ./my-project
  phpdbg ide phpstorm`,
	Args: cobra.MaximumNArgs(1),
	RunE: runIde,
}

func init() {
	ideCmd.Flags().StringVar(&ideFlags.projectPath, "path", ".", "project directory")
	rootCmd.AddCommand(ideCmd)
}

func runIde(cmd *cobra.Command, args []string) error {
	cfg, engine, err := loadEngine()
	if err != nil {
		return err
	}

	drv, err := resolveDebugger(engine, cfg, "")
	if err != nil {
		return err
	}

	var integrator = engine.Manager.DetectIDE(ideFlags.projectPath)
	if len(args) > 0 {
		integrator, err = engine.Manager.Integrator(args[0])
		if err != nil {
			return err
		}
	} else if integrator == nil {
		return fmt.Errorf("no IDE detected in %s (known: %v)", ideFlags.projectPath, engine.Manager.IntegratorNames())
	}

	if err := integrator.Generate(drv, ideFlags.projectPath, settingsFromConfig(cfg)); err != nil {
		return err
	}

	if jsonOutput {
		return output.JSON(CommandResult{Success: true, Extension: drv.Name(), Action: "ide:" + integrator.Name()})
	}
	output.Success("generated %s debug configuration for %s", integrator.Name(), drv.Name())
	return nil
}
