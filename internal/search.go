package internal

import (
	"github.com/swiftup/swiftup/internal/globalconfig"
	"github.com/swiftup/swiftup/internal/middleware"
	"github.com/swiftup/swiftup/internal/search"

	"github.com/spf13/cobra"
)

func NewSearchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search [pattern]",
		Short: "Search toolchains on the remote index",
		Example: `swiftup search 5.7
swiftup search --snapshots 2022-09`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := middleware.Get[*globalconfig.PersistentConfig](cmd, middleware.CtxKeyConfig)
			if err != nil {
				return err
			}

			pattern := ""
			if len(args) > 0 {
				pattern = args[0]
			}

			snapshots, err := cmd.Flags().GetBool("snapshots")
			if err != nil {
				return err
			}
			limit, err := cmd.Flags().GetInt("limit")
			if err != nil {
				return err
			}

			return search.New(cfg, nil).Execute(cmd.Context(), pattern, snapshots, limit)
		},
	}

	cmd.Flags().Bool("snapshots", false, "Search snapshots instead of releases")
	cmd.Flags().IntP("limit", "n", 20, "Maximum number of matches")

	return cmd
}
