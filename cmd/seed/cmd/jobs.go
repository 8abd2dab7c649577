package cmd

import (
	"context"

	"github.com/geocoder89/alumnihub/internal/seed"
	"github.com/spf13/cobra"
)

var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "Insert the sample job postings owned by the admin account",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSeeder(cmd, func(ctx context.Context, s *seed.Seeder) error {
			created, err := s.Jobs(ctx)
			if err != nil {
				return err
			}

			logDone(ctx, "seed_jobs_done", "created", created)
			return nil
		})
	},
}

var allCmd = &cobra.Command{
	Use:   "all",
	Short: "Run the users seed, then the jobs seed",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSeeder(cmd, func(ctx context.Context, s *seed.Seeder) error {
			if err := s.All(ctx); err != nil {
				return err
			}

			logDone(ctx, "seed_all_done")
			return nil
		})
	},
}
