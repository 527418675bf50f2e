package export

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Alyxx-The-Sniper/newsly-ai-reporter/internal/app/export"
	"github.com/Alyxx-The-Sniper/newsly-ai-reporter/internal/app/repository"
	"github.com/Alyxx-The-Sniper/newsly-ai-reporter/internal/app/repository/pg"
	"github.com/Alyxx-The-Sniper/newsly-ai-reporter/internal/app/repository/sqlite"
	"github.com/Alyxx-The-Sniper/newsly-ai-reporter/internal/config"
)

var outputFilePath string

func init() {
	Cmd.Flags().StringVarP(&outputFilePath, "outputFilePath", "o", "", "set outputFilePath")

	Cmd.MarkFlagRequired("outputFilePath")
}

// Cmd represents the export command
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Export the stored reports to excel",
	Long: `Export the stored reports to excel

- Exports every stored report, newest first, from the configured database`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		var dao repository.ReportDAO
		if cfg.IsPostgres() {
			dao, err = pg.NewPostgresDB(cfg.DatabaseURL)
		} else {
			dao, err = sqlite.NewSQLiteDB(cfg.SQLitePath())
		}
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer dao.Close()

		records, err := dao.GetAll(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to load reports: %w", err)
		}

		if err := export.ToExcel(records, outputFilePath); err != nil {
			return err
		}

		fmt.Printf("export finished, exported %d reports to: %v\n", len(records), outputFilePath)
		return nil
	},
}
