package internal

import (
	"github.com/swiftup/swiftup/internal/globalconfig"
	"github.com/swiftup/swiftup/internal/list"
	"github.com/swiftup/swiftup/internal/middleware"

	"github.com/spf13/cobra"
)

func NewListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List toolchains",
		Long: `Lists installed toolchains. With --available, lists the newest stable
releases published on the remote index instead, marking installed ones.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := middleware.Get[*globalconfig.PersistentConfig](cmd, middleware.CtxKeyConfig)
			if err != nil {
				return err
			}

			available, err := cmd.Flags().GetBool("available")
			if err != nil {
				return err
			}
			limit, err := cmd.Flags().GetInt("limit")
			if err != nil {
				return err
			}

			return list.New(cfg, nil).Execute(cmd.Context(), available, limit)
		},
	}

	cmd.Flags().BoolP("available", "a", false, "List toolchains published on the remote index")
	cmd.Flags().IntP("limit", "n", 20, "Maximum number of remote entries with --available")

	return cmd
}
