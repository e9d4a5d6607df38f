package main

import (
	"fmt"

	"github.com/MKhiriev/go-letters-client/internal/client"
	"github.com/MKhiriev/go-letters-client/internal/tui"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Открыть терминальный интерфейс",
	Args:  cobra.NoArgs,
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}

	deps, err := client.NewDeps(cmd.Context(), cfg, log)
	if err != nil {
		log.Error().Err(err).Msg("init client dependencies")
		return err
	}
	defer deps.Close()

	ui := tui.New(deps.Services.LettersService, buildInfo(), log)

	app, err := client.NewApp(deps.Services, ui, cfg.Workers, log)
	if err != nil {
		return fmt.Errorf("init client app: %w", err)
	}

	return app.Run(cmd.Context())
}
