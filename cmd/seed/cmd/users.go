package cmd

import (
	"context"

	"github.com/geocoder89/alumnihub/internal/seed"
	"github.com/spf13/cobra"
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Create or reset the admin, approved alumni and pending alumni accounts",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSeeder(cmd, func(ctx context.Context, s *seed.Seeder) error {
			if err := s.Users(ctx); err != nil {
				return err
			}

			logDone(ctx, "seed_users_done", "accounts", len(seed.Accounts))
			return nil
		})
	},
}
