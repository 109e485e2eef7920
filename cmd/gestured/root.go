package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/gestured/internal/version"
	"github.com/arthur-debert/gestured/pkg/config"
	"github.com/arthur-debert/gestured/pkg/logging"
	"github.com/arthur-debert/gestured/pkg/settings"
	"github.com/arthur-debert/gestured/pkg/store"
)

var (
	verbosity int

	rootCmd = &cobra.Command{
		Use:   "gestured",
		Short: "A multi-touch gesture daemon",
		Long: `gestured turns touchpad and touchscreen gestures into configurable
actions. Gesture bindings live in ~/.config/gestured/gestured.conf and are
reloaded automatically whenever the file changes.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runDaemon,
	}
)

// Execute runs the root command. Called once from main.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")

	rootCmd.AddCommand(versionCmd)
}

func runDaemon(cmd *cobra.Command, args []string) error {
	daemonSettings, err := settings.Load()
	if err != nil {
		pterm.Error.Println(err)
		return err
	}

	// The flag wins over the settings file
	if verbosity == 0 {
		verbosity = daemonSettings.Verbosity
	}
	logging.SetupLogger(verbosity)

	st := store.NewMemory()
	loader, err := config.NewLoader(st)
	if err != nil {
		pterm.Error.Println(err)
		return err
	}
	defer loader.Close()
	loader.SetWatchEnabled(daemonSettings.LiveReload)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := loader.Load(ctx); err != nil {
		pterm.Error.Println(err)
		return err
	}

	switch {
	case loader.Watching():
		pterm.Info.Println("Configuration loaded, watching for changes")
	case daemonSettings.LiveReload:
		pterm.Warning.Println("Configuration loaded, but it cannot be monitored for changes; " +
			"restart gestured to apply configuration edits")
	default:
		pterm.Info.Println("Configuration loaded, live reload disabled")
	}

	<-ctx.Done()
	log.Info().Msg("Shutting down")
	return nil
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gestured version %s\n", version.Version)
		fmt.Printf("  commit: %s\n", version.Commit)
		fmt.Printf("  built:  %s\n", version.Date)
	},
}
