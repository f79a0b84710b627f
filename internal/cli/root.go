package cli

import (
	"CatalogEngine/internal/shared/config"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Debug        bool
	DatabasePath string
}

// NewRootCommand creates the root command. Flag defaults come from cfg.
func NewRootCommand(cfg *config.Config, baseLogger *zerolog.Logger) *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           "catalog",
		Short:         "Catalog engine for continents, countries and regions",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVar(&opts.Debug, "debug", cfg.Debug, "record every request and response in the log")
	cmd.PersistentFlags().StringVar(&opts.DatabasePath, "db", cfg.DatabasePath, "catalog store to open before the first request")

	cmd.AddCommand(NewRunCommand(opts, baseLogger))

	return cmd
}
