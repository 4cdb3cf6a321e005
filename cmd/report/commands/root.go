// Package commands implements the report command line: the reports served by
// the HTTP API, printed as tables straight from the database.
package commands

import (
	"context"
	"time"

	"deliveryquery/cmd"
	"deliveryquery/internal/adapters/out/postgres"

	"github.com/spf13/cobra"
)

var (
	envFile string
	timeout time.Duration
	appCtx  *cmd.CompositionRoot
)

func Execute() error {
	root := &cobra.Command{
		Use:          "report",
		Short:        "Print delivery reports",
		SilenceUsage: true,
		PersistentPreRunE: func(c *cobra.Command, _ []string) error {
			config, err := cmd.LoadConfig(envFile)
			if err != nil {
				return err
			}
			db, err := postgres.Open(config.Database().DSN())
			if err != nil {
				return err
			}
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			cobra.OnFinalize(func() { _ = sqlDB.Close() })
			app := cmd.NewCompositionRoot(config, db, config.Logger())
			appCtx = &app

			ctx, cancel := context.WithTimeout(c.Context(), timeout)
			cobra.OnFinalize(cancel)
			c.SetContext(ctx)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&envFile, "env", ".env", "dotenv file with the database settings")
	root.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "query timeout")

	root.AddCommand(statisticsCmd(), gapsCmd(), deliveriesCmd(), clientCmd(), searchCmd())
	return root.ExecuteContext(context.Background())
}
