package cmd

import (
	"github.com/spf13/cobra"

	"github.com/hydrotools/fertbase/pkg/api"
	"github.com/hydrotools/fertbase/pkg/config"
)

var (
	flagBind string
	flagPort int
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the read-only inspection server",
	Long: `Serve table stats and substance listings over HTTP, with Prometheus
metrics at /metrics. The server never writes to the table.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		dbPath, err := config.ResolveDatabasePath(cfg.BaseDir)
		if err != nil {
			return err
		}

		bind := cfg.Bind
		if cmd.Flags().Changed("bind") {
			bind = flagBind
		}
		port := cfg.Port
		if cmd.Flags().Changed("port") {
			port = flagPort
		}

		return api.StartServer(api.ServerConfig{
			Bind:         bind,
			Port:         port,
			DatabasePath: dbPath,
		})
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&flagBind, "bind", "127.0.0.1", "Address to bind")
	serveCmd.Flags().IntVar(&flagPort, "port", 8080, "Port to listen on")
}
