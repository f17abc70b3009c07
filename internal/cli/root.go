package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	cfg    *Config
	client *Client
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "geoquiz",
		Short: "Geography quiz CLI",
		Long: `geoquiz plays the country naming quiz in the terminal and talks to a
geoquiz server.

Local commands (play, check, catalog, suggest) use the built-in world
catalog or a JSON feed given with --catalog. Remote commands (session,
events, health) call the server's JSON API.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			client = NewClient(cfg.ServerURL)
			return nil
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.ServerURL, "server", cfg.ServerURL, "Server URL (env: GEOQUIZ_SERVER)")
	rootCmd.PersistentFlags().StringVar(&cfg.CatalogPath, "catalog", cfg.CatalogPath, "JSON catalog feed for local commands (env: GEOQUIZ_CATALOG_PATH)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json")

	// Local commands
	rootCmd.AddCommand(newPlayCmd())
	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newCatalogCmd())
	rootCmd.AddCommand(newSuggestCmd())

	// Remote commands
	rootCmd.AddCommand(newSessionCmd())
	rootCmd.AddCommand(newEventsCmd())
	rootCmd.AddCommand(newHealthCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
