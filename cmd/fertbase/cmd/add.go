package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hydrotools/fertbase/pkg/config"
	"github.com/hydrotools/fertbase/pkg/fertilizer"
	"github.com/hydrotools/fertbase/pkg/table"
	"github.com/hydrotools/fertbase/pkg/updater"
)

var (
	flagCSV    string
	flagStrict bool
)

// addCmd represents the add command
var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add fertilizers to the substances table",
	Long: `Add fertilizer records to the substances table. Without flags the
builtin catalog (Jack's Nutrients and calcium sulfate) is applied; with
--csv candidates are read from a delimited text file instead.

Candidates whose name already exists in the table (case-insensitive) are
skipped. The file is rewritten at most once per invocation, with the
original preserved as a timestamped backup.

Example:
  fertbase add --base-dir /Applications/HydroBuddy
  fertbase add --base-dir ~/hydrobuddy --csv my-ferts.csv`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		dbPath, err := config.ResolveDatabasePath(cfg.BaseDir)
		if err != nil {
			return err
		}

		candidates := fertilizer.Catalog()
		if flagCSV != "" {
			file, err := os.Open(flagCSV)
			if err != nil {
				return fmt.Errorf("open csv: %w", err)
			}
			defer file.Close()

			candidates, err = fertilizer.ParseCSV(file)
			if err != nil {
				return err
			}
		}

		tbl, err := table.Load(dbPath)
		if err != nil {
			return err
		}

		result, err := updater.Apply(tbl, dbPath, candidates, updater.Options{
			StrictOverflow: flagStrict || cfg.StrictOverflow,
		})
		if err != nil {
			return err
		}

		for _, name := range result.Skipped {
			fmt.Printf("  = %s (already exists)\n", name)
		}
		for _, name := range result.AddedNames {
			fmt.Printf("  + %s\n", name)
		}
		if result.Committed {
			fmt.Printf("%d record(s) added to %s\n", result.Added, dbPath)
			fmt.Printf("Backup created: %s\n", result.BackupPath)
		} else {
			fmt.Println("No new records, file untouched")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().StringVar(&flagCSV, "csv", "", "Read candidates from a CSV file instead of the builtin catalog")
	addCmd.Flags().BoolVar(&flagStrict, "strict", false, "Reject numeric values wider than their field instead of truncating")
}
