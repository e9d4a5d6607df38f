package main

import (
	"encoding/json"
	"fmt"
	"os"

	stub "github.com/MKhiriev/go-letters-client/internal/handler/http"
	"github.com/MKhiriev/go-letters-client/internal/logger"
	"github.com/MKhiriev/go-letters-client/internal/server"
	"github.com/MKhiriev/go-letters-client/models"
	"github.com/spf13/cobra"
)

var (
	stubListen   string
	stubFixtures string
)

var stubCmd = &cobra.Command{
	Use:   "stub",
	Short: "Запустить локальную заглушку сервиса писем",
	Long: "Поднимает HTTP сервер с тем же API, что и сервис писем, и отдает " +
		"сгенерированные по фикстурам документы. Нужен для ручной проверки клиента без сервера.",
	Args: cobra.NoArgs,
	RunE: runStub,
}

func init() {
	stubCmd.Flags().StringVar(&stubListen, "listen", "localhost:5000", "Address the stub listens on")
	stubCmd.Flags().StringVar(&stubFixtures, "fixtures", "", "JSON file with letter summaries returned by process")

	rootCmd.AddCommand(stubCmd)
}

func runStub(cmd *cobra.Command, _ []string) error {
	log := logger.NewLogger("letters-stub")

	fixtures := stub.DefaultFixtures()
	if stubFixtures != "" {
		loaded, err := loadFixtures(stubFixtures)
		if err != nil {
			return err
		}
		fixtures = loaded
	}
	log.Info().Int("fixtures", len(fixtures)).Msg("stub fixtures loaded")

	handler := stub.NewHandler(stub.NewBackend(fixtures), log)

	srv, err := server.NewServer(handler.Init(), stubListen, log)
	if err != nil {
		return fmt.Errorf("create stub server: %w", err)
	}

	return srv.Run(cmd.Context())
}

func loadFixtures(path string) ([]models.LetterSummary, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixtures file: %w", err)
	}

	var letters []models.LetterSummary
	if err := json.Unmarshal(content, &letters); err != nil {
		return nil, fmt.Errorf("failed to unmarshal fixtures JSON: %w", err)
	}
	return letters, nil
}
