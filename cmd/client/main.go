package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-letters-client/internal/config"
	"github.com/MKhiriev/go-letters-client/models"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

var flagCfg *config.StructuredConfig

var rootCmd = &cobra.Command{
	Use:   "letters-client",
	Short: "Клиент сервиса генерации писем о просрочке",
	Long: "Загружает файлы отчетности и СЭД в сервис писем, запускает генерацию " +
		"и скачивает готовые письма и приложения. Без подкоманды открывает терминальный интерфейс.",
	SilenceUsage: true,
	RunE:         runTUI,
}

func init() {
	flagCfg = config.RegisterFlags(rootCmd.PersistentFlags())
}

func buildInfo() models.AppBuildInfo {
	return models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
}

func main() {
	// .env is optional
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Ошибка: %v\n", err)
		stop()
		os.Exit(1)
	}
}
