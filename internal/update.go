package internal

import (
	"github.com/swiftup/swiftup/internal/errs"
	"github.com/swiftup/swiftup/internal/globalconfig"
	"github.com/swiftup/swiftup/internal/middleware"
	"github.com/swiftup/swiftup/internal/update"

	"github.com/spf13/cobra"
)

func NewUpdateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "update [version]",
		Short: "Update a toolchain to the newest build on its track",
		Long: `Updates an installed toolchain to the newest published build on its
track: the latest patch for a stable release, the latest date for a snapshot
branch. Without an argument, updates the in-use toolchain.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 1 {
				return middleware.FlagComboError(errs.SingleVersionOnly, "update")
			}

			cfg, err := middleware.Get[*globalconfig.PersistentConfig](cmd, middleware.CtxKeyConfig)
			if err != nil {
				return err
			}

			name := ""
			if len(args) == 1 {
				name = args[0]
			}

			return update.New(cfg, nil, nil).Execute(cmd.Context(), name)
		},
	}
}
