package cmd

import (
	"context"

	"github.com/geocoder89/alumnihub/internal/seed"
	"github.com/spf13/cobra"
)

var photosCmd = &cobra.Command{
	Use:   "photos",
	Short: "Give approved alumni without a profile photo a generated avatar",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSeeder(cmd, func(ctx context.Context, s *seed.Seeder) error {
			updated, err := s.Photos(ctx)
			if err != nil {
				return err
			}

			if updated == 0 {
				logDone(ctx, "seed_photos_none_needed")
				return nil
			}

			logDone(ctx, "seed_photos_done", "updated", updated)
			return nil
		})
	},
}
