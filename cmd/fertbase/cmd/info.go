package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hydrotools/fertbase/pkg/config"
	"github.com/hydrotools/fertbase/pkg/table"
)

// infoCmd represents the info command
var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show table header and schema",
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

		fmt.Printf("File:           %s\n", dbPath)
		fmt.Printf("Version:        0x%02X\n", tbl.Header.Version)
		fmt.Printf("Last modified:  %s\n", tbl.Header.LastModified().Format("2006-01-02"))
		fmt.Printf("Records:        %d (%d deleted)\n", tbl.RecordCount(), tbl.DeletedCount())
		fmt.Printf("Header length:  %d\n", tbl.Header.HeaderLength)
		fmt.Printf("Record length:  %d\n", tbl.Header.RecordLength)
		fmt.Printf("Fields:         %d\n", len(tbl.Fields))
		for _, fd := range tbl.Fields {
			if fd.Type == 'N' && fd.Decimals > 0 {
				fmt.Printf("  %-11s %-10s %3d.%d\n", fd.Name, fd.Type, fd.Length, fd.Decimals)
				continue
			}
			fmt.Printf("  %-11s %-10s %3d\n", fd.Name, fd.Type, fd.Length)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
