package main

import (
	"context"
	"fmt"
	"lumen/config"
	"lumen/di"
	"lumen/helper"
	"lumen/shared/logger"
	"lumen/shared/timezone"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var databaseURL string

func migrator(cfg *config.Config) *helper.Migrator {
	if databaseURL != "" {
		return helper.NewMigrator(databaseURL)
	}

	return helper.NewMigratorFromConfig(cfg)
}

func migrationCommand(action, short string) *cobra.Command {
	return &cobra.Command{
		Use:   action,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return migrator(config.Get()).Run(cmd.Context(), action)
		},
	}
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Apply migrations, then create the admin account and the map catalog if missing",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := timezone.Init(config.Get().App.Timezone); err != nil {
			return fmt.Errorf("loading timezone: %w", err)
		}

		seeder, err := di.InitializeSeeder()
		if err != nil {
			return fmt.Errorf("wiring seeder: %w", err)
		}

		res, err := seeder.Run(cmd.Context())
		if err != nil {
			return fmt.Errorf("seeding: %w", err)
		}

		log.Info().
			Bool("role_created", res.RoleCreated).
			Bool("user_created", res.UserCreated).
			Int("locations_inserted", res.LocationsInserted).
			Msg("Seed completed")

		return nil
	},
}

func main() {
	cfg := config.Get()

	logger.InitLogger(cfg)

	logger.SetLogLevel(cfg)

	rootCmd := &cobra.Command{
		Use:           "migrate",
		Short:         "Manage the lumen database schema",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&databaseURL, "database-url", "", "Override the migration URL built from DB_POSTGRES_WRITE_*")

	rootCmd.AddCommand(
		migrationCommand(helper.ActionUp, "Apply all pending migrations"),
		migrationCommand(helper.ActionDown, "Roll back every migration"),
		migrationCommand(helper.ActionStepUp, "Apply the next pending migration"),
		migrationCommand(helper.ActionDrop, "Drop everything in the database"),
		seedCmd,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		log.Fatal().Err(err).Msg("Migration failed")
	}
}
