package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/geocoder89/alumnihub/internal/db"
	"github.com/geocoder89/alumnihub/internal/observability"
	"github.com/geocoder89/alumnihub/internal/repo/mongodb"
	"github.com/geocoder89/alumnihub/internal/seed"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	mongoURI string
	mongoDB  string
	timeout  time.Duration

	rootCmd = &cobra.Command{
		Use:   "seed",
		Short: "Load demo accounts and sample content into MongoDB",
		Long: `seed writes the demo data used for local development.

Examples:
  # Demo accounts, then sample jobs
  seed all

  # Only reset the demo accounts
  seed users --mongo-uri mongodb://localhost:27017`,
		SilenceUsage: true,
	}
)

// Execute runs the root command. It is called once by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	// a missing .env is fine
	_ = godotenv.Load()

	rootCmd.PersistentFlags().StringVar(&mongoURI, "mongo-uri", os.Getenv("MONGO_URI"), "MongoDB connection string (default: $MONGO_URI)")
	rootCmd.PersistentFlags().StringVar(&mongoDB, "mongo-db", envOr("MONGO_DB", "alumni-db"), "database name (default: $MONGO_DB)")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "overall deadline for the seed run")

	rootCmd.AddCommand(usersCmd)
	rootCmd.AddCommand(jobsCmd)
	rootCmd.AddCommand(photosCmd)
	rootCmd.AddCommand(allCmd)
}

// withSeeder connects to MongoDB, hands fn a seeder and disconnects after.
func withSeeder(cmd *cobra.Command, fn func(ctx context.Context, s *seed.Seeder) error) error {
	if mongoURI == "" {
		return fmt.Errorf("MONGO_URI is not set, pass --mongo-uri")
	}

	log := observability.NewLogger(envOr("APP_ENV", "dev"))

	client, err := db.NewClient(mongoURI)
	if err != nil {
		return fmt.Errorf("connect mongo: %w", err)
	}
	defer func() {
		if err := db.Disconnect(client, 5*time.Second); err != nil {
			log.Error("mongo disconnect failed", "err", err)
		}
	}()

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	store, err := mongodb.NewStore(ctx, client.Database(mongoDB), nil)
	if err != nil {
		return fmt.Errorf("prepare store: %w", err)
	}

	s := seed.New(mongodb.NewUsersRepo(store), mongodb.NewJobsRepo(store), log)

	return fn(ctx, s)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func logDone(ctx context.Context, msg string, args ...any) {
	slog.Default().InfoContext(ctx, msg, args...)
}
