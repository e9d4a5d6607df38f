package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/MKhiriev/go-letters-client/internal/client"
	"github.com/spf13/cobra"
)

var (
	uploadReporting string
	uploadSed       string
	historyLimit    int
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Показать состояние загрузки и обработки на сервере",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withDeps(cmd, func(ctx context.Context, deps *client.Deps) error {
			state, err := deps.Services.LettersService.RefreshStatus(ctx)
			if err != nil {
				return err
			}
			printState(cmd.OutOrStdout(), state)
			return nil
		})
	},
}

var uploadCmd = &cobra.Command{
	Use:   "upload",
	Short: "Загрузить файлы отчетности и СЭД",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withDeps(cmd, func(ctx context.Context, deps *client.Deps) error {
			svc := deps.Services.LettersService
			if _, err := svc.SelectReportingFile(uploadReporting); err != nil {
				return err
			}
			if _, err := svc.SelectSedFile(uploadSed); err != nil {
				return err
			}

			state, err := svc.Upload(ctx)
			if err != nil {
				return err
			}
			printState(cmd.OutOrStdout(), state)
			return nil
		})
	},
}

var processCmd = &cobra.Command{
	Use:   "process",
	Short: "Сгенерировать письма по загруженным файлам",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withDeps(cmd, func(ctx context.Context, deps *client.Deps) error {
			state, err := deps.Services.LettersService.Process(ctx)
			if err != nil {
				return err
			}
			printState(cmd.OutOrStdout(), state)
			printLetters(cmd.OutOrStdout(), state.Letters)
			return nil
		})
	},
}

var downloadAllCmd = &cobra.Command{
	Use:   "download-all",
	Short: "Скачать архив всех писем",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withDeps(cmd, func(ctx context.Context, deps *client.Deps) error {
			saved, err := deps.Services.LettersService.DownloadAll(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", saved.Path)
			return nil
		})
	},
}

var downloadCmd = &cobra.Command{
	Use:   "download <filename>",
	Short: "Скачать один документ по имени",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDeps(cmd, func(ctx context.Context, deps *client.Deps) error {
			saved, err := deps.Services.LettersService.DownloadOne(ctx, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", saved.Path)
			return nil
		})
	},
}

var downloadPairCmd = &cobra.Command{
	Use:   "download-letter <number>",
	Short: "Скачать письмо и приложение по номеру в списке",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		number, err := strconv.Atoi(args[0])
		if err != nil || number < 1 {
			return fmt.Errorf("номер письма должен быть положительным числом: %q", args[0])
		}

		return withDeps(cmd, func(ctx context.Context, deps *client.Deps) error {
			svc := deps.Services.LettersService
			// восстанавливает список писем из локального кэша
			if _, err := svc.RefreshStatus(ctx); err != nil {
				return err
			}

			saved, err := svc.DownloadLetterPair(ctx, number-1)
			if err != nil {
				return err
			}
			for _, f := range saved {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\n", f.Path)
			}
			return nil
		})
	},
}

var lettersCmd = &cobra.Command{
	Use:   "letters",
	Short: "Показать письма последней обработки из локального кэша",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withDeps(cmd, func(ctx context.Context, deps *client.Deps) error {
			letters, err := deps.Services.LettersService.CachedLetters(ctx)
			if err != nil {
				return err
			}
			printLetters(cmd.OutOrStdout(), letters)
			return nil
		})
	},
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Показать историю скачанных документов",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withDeps(cmd, func(ctx context.Context, deps *client.Deps) error {
			records, err := deps.Services.LettersService.History(ctx, historyLimit)
			if err != nil {
				return err
			}
			printHistory(cmd.OutOrStdout(), records)
			return nil
		})
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Показать версию сборки",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprint(cmd.OutOrStdout(), buildInfo().String())
	},
}

func init() {
	uploadCmd.Flags().StringVar(&uploadReporting, "reporting", "", "Path to the reporting workbook (required)")
	uploadCmd.Flags().StringVar(&uploadSed, "sed", "", "Path to the SED workbook (required)")
	if err := uploadCmd.MarkFlagRequired("reporting"); err != nil {
		panic(fmt.Sprintf("failed to mark reporting flag as required: %v", err))
	}
	if err := uploadCmd.MarkFlagRequired("sed"); err != nil {
		panic(fmt.Sprintf("failed to mark sed flag as required: %v", err))
	}

	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Number of records to show, 0 shows all")

	rootCmd.AddCommand(
		statusCmd,
		uploadCmd,
		processCmd,
		downloadAllCmd,
		downloadCmd,
		downloadPairCmd,
		lettersCmd,
		historyCmd,
		versionCmd,
	)
}
