package commands

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/TALS/config"
	"github.com/teranos/TALS/errors"
	"github.com/teranos/TALS/logger"
	"github.com/teranos/TALS/nta"
	"github.com/teranos/TALS/server"
)

// ServerCmd starts the TALS completion server
var ServerCmd = &cobra.Command{
	Use:     "server",
	Aliases: []string{"serve"},
	Short:   "Start the TALS completion server",
	Long: `Launch the TALS server. Editors connect over WebSocket (or POST to
/api/autocomplete) and receive context-aware identifier completions for the
loaded NTA model document.`,
	RunE: runServer,
}

var (
	serverModelPath string
	serverPort      int
	serverNoWatch   bool
)

func init() {
	ServerCmd.Flags().StringVar(&serverModelPath, "model", "", "NTA model document to serve (overrides config)")
	ServerCmd.Flags().IntVar(&serverPort, "port", 0, "Listen port (overrides config)")
	ServerCmd.Flags().BoolVar(&serverNoWatch, "no-watch", false, "Disable model file watching")
}

// makeModelReloadCallback swaps the served model document when a config
// reload points [model] path somewhere new. The --model flag pins the
// document, in which case config changes leave it alone.
func makeModelReloadCallback(repo *nta.Repository, initialPath string) config.ReloadCallback {
	activeModel := initialPath
	return func(newCfg *config.Config) error {
		if serverModelPath != "" {
			return nil
		}
		if newCfg.Model.Path == "" || newCfg.Model.Path == activeModel {
			return nil
		}

		diags, err := repo.Load(newCfg.Model.Path)
		if err != nil {
			return errors.Wrapf(err, "failed to load model document %s", newCfg.Model.Path)
		}
		activeModel = newCfg.Model.Path
		if len(diags) > 0 {
			logger.Warnw("Model loaded with parse diagnostics",
				"path", activeModel,
				"diagnostics", len(diags))
		}
		if newCfg.Model.Watch && !serverNoWatch {
			if err := repo.Watch(); err != nil {
				logger.Warnw("Model watching unavailable",
					"path", activeModel,
					"error", err)
			}
		}
		return nil
	}
}

func runServer(cmd *cobra.Command, args []string) error {
	verbosity, _ := cmd.Flags().GetCount("verbose")
	if verbosity == 0 {
		verbosity = 1
	}

	cfg, err := config.Load()
	if err != nil {
		return errors.Wrap(err, "failed to load configuration")
	}

	modelPath := cfg.Model.Path
	if serverModelPath != "" {
		modelPath = serverModelPath
	}
	port := cfg.Server.Port
	if serverPort != 0 {
		port = serverPort
	}

	repo := nta.NewRepository()
	defer repo.Close()

	if modelPath != "" {
		diags, err := repo.Load(modelPath)
		if err != nil {
			return errors.Wrap(err, "failed to load model document")
		}
		if len(diags) > 0 {
			pterm.Warning.Printf("Model loaded with %d parse diagnostics (run 'tals check %s' for details)\n",
				len(diags), modelPath)
		}
		if cfg.Model.Watch && !serverNoWatch {
			if err := repo.Watch(); err != nil {
				pterm.Warning.Printf("Model watching unavailable: %v\n", err)
			}
		}
	} else {
		pterm.Warning.Println("No model document configured; completions unavailable until one is loaded")
	}

	if configFile := config.ActiveConfigFile(); configFile != "" {
		cw, err := config.NewConfigWatcher(configFile)
		if err != nil {
			pterm.Warning.Printf("Config watching unavailable: %v\n", err)
		} else {
			cw.OnReload(makeModelReloadCallback(repo, modelPath))
			cw.Start()
			defer cw.Stop()
		}
	}

	printStartupBanner(verbosity, modelPath, port)

	srv, err := server.NewTALSServer(cfg, repo)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start(port)
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errChan:
		return errors.Wrap(err, "server failed to start")
	case <-sigChan:
		// First Ctrl+C - graceful shutdown
		pterm.Info.Println("\nShutting down gracefully (press Ctrl+C again to force)...")

		shutdownDone := make(chan error, 1)
		go func() {
			shutdownDone <- srv.Stop()
		}()

		select {
		case err := <-shutdownDone:
			if err != nil {
				return fmt.Errorf("shutdown error: %w", err)
			}
			pterm.Success.Println("Server stopped cleanly")
			return nil
		case <-sigChan:
			// Second Ctrl+C - force immediate exit
			pterm.Warning.Println("\nForce shutdown - exiting immediately")
			os.Exit(1)
			return nil // unreachable
		}
	}
}
