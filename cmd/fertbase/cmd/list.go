package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hydrotools/fertbase/pkg/config"
	"github.com/hydrotools/fertbase/pkg/table"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List active substances in the table",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		dbPath, err := config.ResolveDatabasePath(cfg.BaseDir)
		if err != nil {
			return err
		}

		tbl, err := table.Load(dbPath)
		if err != nil {
			return err
		}

		names := tbl.ActiveNames()
		for _, name := range names {
			fmt.Println(name)
		}
		fmt.Printf("%d active substance(s)\n", len(names))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
