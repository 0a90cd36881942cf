package commands

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"aropt-mcp/internal/config"
	"aropt-mcp/internal/logging"
	"aropt-mcp/internal/mcp"
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
	Use:   "aropt-mcp",
	Short: "AROPT-MCP is an accounts-receivable collection-plan MCP server",
	Long: `A specialized MCP Server that computes minimum-effort collection plans for
ageing accounts-receivable portfolios (linear-programming optimisation per period)
and projects portfolio evolution over multi-period horizons under a roll-forward
ageing model.`,
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
			Msg("AROPT-MCP starting")
	},
	Run: func(cmd *cobra.Command, args []string) {
		log.Info().Msg("MCP Server starting Stdio loop")
		server := mcp.NewServer(cfg)
		if err := server.Start(); err != nil {
			log.Fatal().Err(err).Msg("Server terminated abnormally")
		}
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}
