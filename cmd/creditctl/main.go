// Command creditctl runs operator tasks against the credit engine store.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/amirhossein-jamali/credit-engine/internal/app"
	"github.com/amirhossein-jamali/credit-engine/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/credit-engine/internal/infrastructure/config"
)

var Version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:           "creditctl",
		Short:         "Operate the payment order and credit store",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().Bool("verbose", false, "Log at debug level")

	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(seedCmd())
	rootCmd.AddCommand(userCmd())
	rootCmd.AddCommand(orderCmd())
	rootCmd.AddCommand(historyCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// withEngine loads the configuration, assembles the engine and runs fn against it
func withEngine(cmd *cobra.Command, fn func(ctx context.Context, engine *app.App) error) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	cfg.Metrics.Enabled = false
	cfg.User.SeedDefaultUsers = false

	level := "warn"
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = "debug"
	}
	log := logger.NewZapLogger(logger.Options{Level: level, Format: "console"})
	defer func() { _ = log.Flush() }()

	ctx := cmd.Context()
	engine, err := app.New(ctx, cfg, log, app.Options{})
	if err != nil {
		return err
	}
	defer engine.Close()

	return fn(ctx, engine)
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Bring the database schema to the current version",
		RunE: func(cmd *cobra.Command, args []string) error {
			// assembling the engine applies pending migrations
			return withEngine(cmd, func(ctx context.Context, engine *app.App) error {
				version, err := engine.Database.SchemaVersion(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "schema is at version %s\n", version)
				return nil
			})
		},
	}
}

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Create the development users",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEngine(cmd, func(ctx context.Context, engine *app.App) error {
				if err := engine.Users.CreateDefaultUsers(ctx); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "default users created")
				return nil
			})
		},
	}
}
