// Package root contains the root command for the application
package root

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/abhaysalunke711/bank-statement-analyzer/internal/config"
	"github.com/abhaysalunke711/bank-statement-analyzer/internal/logging"
	"github.com/abhaysalunke711/bank-statement-analyzer/internal/models"
	"github.com/abhaysalunke711/bank-statement-analyzer/internal/report"
	"github.com/abhaysalunke711/bank-statement-analyzer/internal/store"
)

var (
	// Log is the shared logger instance for commands. PersistentPreRun
	// replaces it with a logger built from the loaded configuration.
	Log = logging.GetLogger()

	// AppConfig is the loaded application configuration, available to all
	// subcommands after PersistentPreRun.
	AppConfig *config.Config

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "bank-statement-analyzer",
		Short: "A CLI tool to extract, categorize and classify bank statement transactions.",
		Long: `bank-statement-analyzer extracts transactions from bank statement text,
assigns spending categories from a configurable keyword table, and classifies
each transaction as income or expense with a confidence score.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to bank-statement-analyzer!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()

			cfg, err := config.InitializeConfig()
			if err != nil {
				Log.WithError(err).Error("Invalid configuration")
				os.Exit(1)
			}
			AppConfig = cfg
			Log = config.ConfigureLoggingFromConfig(cfg)

			report.SetDelimiter([]rune(cfg.CSV.Delimiter)[0])

			if KeywordsFile == "" {
				KeywordsFile = cfg.Keywords.File
			}
		},
	}

	// KeywordsFile is the keyword table path shared by all commands.
	KeywordsFile string

	// Output is the report output path shared by all commands.
	Output string
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&Output, "output", "o", "", "Output file")
	Cmd.PersistentFlags().StringVarP(&KeywordsFile, "keywords", "k", "", "Keyword table YAML file")
}

// LoadKeywordTable loads the configured keyword table. A missing table on a
// fresh install is not fatal: the built-in template is exported next to the
// other config files and the default table is used for this run. An
// explicitly configured file that fails to load is a hard error.
func LoadKeywordTable(logger logging.Logger) (*models.KeywordTable, error) {
	s := store.NewKeywordStore(KeywordsFile, logger)

	table, err := s.LoadTable()
	if err == nil {
		return table, nil
	}
	if KeywordsFile != "" {
		return nil, err
	}

	logger.WithError(err).Warn("No keyword table found, using built-in defaults")
	templatePath := "config/keywords.yaml"
	if exportErr := s.ExportTemplate(templatePath); exportErr != nil {
		logger.WithError(exportErr).Warn("Could not export keyword template")
	}
	return store.DefaultTable(), nil
}
