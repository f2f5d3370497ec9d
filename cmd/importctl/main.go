// importctl runs case imports from the shell, against a live database or as
// a dry run against an in-memory store.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"caseimport-service/internal/config"
	"caseimport-service/internal/importer/model"
	impSvc "caseimport-service/internal/importer/service"
	"caseimport-service/internal/store"
	"caseimport-service/internal/store/memory"
	"caseimport-service/internal/store/postgres"
)

var (
	flagFile      string
	flagUser      string
	flagDSN       string
	flagBatchSize int
	flagDelay     time.Duration
	flagHeaderRow int
	flagDryRun    bool
	flagReport    string
)

var rootCmd = &cobra.Command{
	Use:   "importctl",
	Short: "Bulk case import for the case-management backend",
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Import a spreadsheet of cases",
	RunE: func(cmd *cobra.Command, _ []string) error {
		imp, cleanup, err := buildImporter()
		if err != nil {
			return err
		}
		defer cleanup()

		f, err := os.Open(flagFile)
		if err != nil {
			return err
		}
		defer f.Close()

		imp.OnProgress = func(p model.Progress) {
			fmt.Fprintf(os.Stderr, "batch %d/%d (%d/%d rows)\n", p.CurrentBatch, p.TotalBatches, p.Current, p.Total)
		}

		res, err := imp.RunFile(cmd.Context(), flagUser, f, flagFile)
		if err != nil {
			return err
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(res); err != nil {
			return err
		}

		if flagReport != "" {
			out, err := os.Create(flagReport)
			if err != nil {
				return err
			}
			defer out.Close()
			if err := impSvc.WriteReportXLSX(out, impSvc.BuildReport(res)); err != nil {
				return err
			}
			fmt.Fprintf(os.Stderr, "report written to %s\n", flagReport)
		}
		return nil
	},
}

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Validate the first rows of a spreadsheet without importing",
	RunE: func(cmd *cobra.Command, _ []string) error {
		imp, cleanup, err := buildImporter()
		if err != nil {
			return err
		}
		defer cleanup()

		f, err := os.Open(flagFile)
		if err != nil {
			return err
		}
		defer f.Close()

		preview, err := imp.PreviewFile(cmd.Context(), flagUser, f, flagFile)
		if err != nil {
			return err
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(preview)
	},
}

func buildImporter() (*impSvc.Importer, func(), error) {
	cfg := config.Load()
	logger := config.SetupLogger(cfg)

	aliases, err := config.LoadAliases(cfg.AliasFile)
	if err != nil {
		logger.Warn().Err(err).Msg("alias file unusable, using defaults")
	}

	var st store.RecordStore
	cleanup := func() {}
	if flagDryRun {
		mem := memory.New()
		// dry runs have no team directory; fabricate one so the firm
		// lookup succeeds
		mem.AddTeamMember(flagUser, "dry-run-firm")
		st = mem
	} else {
		dsn := flagDSN
		if dsn == "" {
			dsn = cfg.DatabaseURL
		}
		pg, err := postgres.New(dsn)
		if err != nil {
			return nil, nil, err
		}
		st = pg
		cleanup = func() { _ = pg.Close() }
	}

	opts := model.Options{
		BatchSize:   flagBatchSize,
		BatchDelay:  flagDelay,
		PreviewRows: cfg.PreviewRows,
		HeaderRow:   flagHeaderRow,
	}
	imp := impSvc.New(st, aliases, opts, logger)
	if flagDryRun {
		imp.SetThrottler(impSvc.NoDelay{})
	}
	return imp, cleanup, nil
}

func init() {
	for _, c := range []*cobra.Command{runCmd, previewCmd} {
		c.Flags().StringVar(&flagFile, "file", "", "spreadsheet to import (.xlsx/.xls/.csv)")
		c.Flags().StringVar(&flagUser, "user", "", "importing user id")
		c.Flags().StringVar(&flagDSN, "dsn", "", "database URL (defaults to DATABASE_URL)")
		c.Flags().IntVar(&flagHeaderRow, "header-row", 1, "1-based header line")
		_ = c.MarkFlagRequired("file")
		_ = c.MarkFlagRequired("user")
	}
	runCmd.Flags().IntVar(&flagBatchSize, "batch-size", 10, "rows per batch")
	runCmd.Flags().DurationVar(&flagDelay, "delay", 800*time.Millisecond, "pause between batches")
	runCmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "import into an in-memory store")
	runCmd.Flags().StringVar(&flagReport, "report", "", "write an .xlsx report to this path")

	rootCmd.AddCommand(runCmd, previewCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
