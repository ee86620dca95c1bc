package commands

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"gestor/internal/config"
	"gestor/internal/logging"
	"gestor/internal/server"
)

var (
	// Version, Commit, and BuildDate are set at build time via ldflags.
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"

	verbose bool
	cfg     *config.AppConfig
)

var rootCmd = &cobra.Command{
	Use:   "gestor",
	Short: "Gestor is a ticket-export analytics tool server",
	Long: `A stdio tool server that normalizes loosely-structured ticket exports (CSV or XLSX)
and serves portfolio analytics: lifecycle dashboards, epic health, resource workload,
monthly trend, risk flags and prioritization scoring.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Init(verbose)

		var err error
		cfg, err = config.Load()
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to load configuration")
		}

		log.Info().
			Str("version", Version).
			Str("commit", Commit).
			Str("buildDate", BuildDate).
			Msg("Gestor starting")
	},
	Run: func(cmd *cobra.Command, args []string) {
		log.Info().Msg("Tool server starting Stdio loop")
		srv := server.NewServer(cfg)
		if err := srv.Serve(); err != nil {
			log.Fatal().Err(err).Msg("Tool server failed")
		}
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}
