package cli

import (
	"fmt"

	"github.com/ksyq12/phpdbg/internal/logger"
	"github.com/ksyq12/phpdbg/internal/output"
	"github.com/spf13/cobra"
)

var configureFlags struct {
	iniPath    string
	clientHost string
	clientPort int
	ideKey     string
	mode       string
	skipReady  bool
}

var configureCmd = &cobra.Command{
	Use:   "configure [extension]",
	Short: "Write an extension's settings block to php.ini",
	Long: `Make an extension ready (installing or enabling it when needed, with
confirmation) and write its settings block to php.ini. Any prior block
owned by the extension is replaced wholesale, so the command is safe to
re-run.

A client host of "auto" resolves to localhost outside Docker and to the
container gateway (or host.docker.internal) inside it.

Examples:
  phpdbg configure xdebug
  phpdbg configure xdebug --mode debug,develop --client-port 9003
  phpdbg configure pcov --ini /usr/local/etc/php/php.ini`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfigure,
}

func init() {
	configureCmd.Flags().StringVar(&configureFlags.iniPath, "ini", "", "php.ini path (default: auto-detect)")
	configureCmd.Flags().StringVar(&configureFlags.clientHost, "client-host", "", `debugger client host ("auto" for Docker-aware detection)`)
	configureCmd.Flags().IntVar(&configureFlags.clientPort, "client-port", 0, "debugger client port")
	configureCmd.Flags().StringVar(&configureFlags.ideKey, "ide-key", "", "IDE session key")
	configureCmd.Flags().StringVar(&configureFlags.mode, "mode", "", "xdebug.mode value")
	configureCmd.Flags().BoolVar(&configureFlags.skipReady, "skip-install", false, "skip the install/enable readiness check")
	rootCmd.AddCommand(configureCmd)
}

func runConfigure(cmd *cobra.Command, args []string) error {
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

	if !configureFlags.skipReady {
		outcome := engine.Service.Ensure(drv, newConsoleUI())
		if !outcome.Success {
			return fmt.Errorf("%s", outcome.Message)
		}
		logger.Debug("readiness: %s", outcome.Message)
		if outcome.RequiresRestart && !jsonOutput {
			restartNote()
		}
	}

	settings := settingsFromConfig(cfg)
	if configureFlags.iniPath != "" {
		settings.PhpIniPath = configureFlags.iniPath
	}
	if configureFlags.clientHost != "" {
		settings.ClientHost = configureFlags.clientHost
	}
	if configureFlags.clientPort != 0 {
		settings.ClientPort = configureFlags.clientPort
	}
	if configureFlags.ideKey != "" {
		settings.IdeKey = configureFlags.ideKey
	}
	if configureFlags.mode != "" {
		settings.Mode = configureFlags.mode
	}

	if err := drv.Configure(settings); err != nil {
		return err
	}

	// Persist the effective settings as the new defaults.
	cfg.Extension = drv.Name()
	cfg.ClientHost = settings.ClientHost
	cfg.ClientPort = settings.ClientPort
	cfg.IdeKey = settings.IdeKey
	cfg.Mode = settings.Mode
	cfg.PhpIni = configureFlags.iniPath
	if err := deps.ConfigLoader.Save(cfg); err != nil {
		logger.LogError(err, "failed to save config")
	}

	hc := drv.Verify()
	if jsonOutput {
		return output.JSON(struct {
			CommandResult
			Health interface{} `json:"health"`
		}{newSuccessResult(drv.Name(), "configure"), hc})
	}

	output.Success("wrote %s settings block", drv.Name())
	renderHealth(drv.Name(), hc)
	return nil
}
