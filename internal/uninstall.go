package internal

import (
	"github.com/swiftup/swiftup/internal/errs"
	"github.com/swiftup/swiftup/internal/globalconfig"
	"github.com/swiftup/swiftup/internal/middleware"
	"github.com/swiftup/swiftup/internal/uninstall"

	"github.com/spf13/cobra"
)

func NewUninstallCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "uninstall <version>",
		Short:   "Remove an installed toolchain",
		Example: `swiftup uninstall 5.6.3`,
		RunE: func(cmd *cobra.Command, args []string) error {
			switch {
			case len(args) == 0:
				return middleware.FlagComboError(errs.VersionArgRequired, "uninstall")
			case len(args) > 1:
				return middleware.FlagComboError(errs.SingleVersionOnly, "uninstall")
			}

			cfg, err := middleware.Get[*globalconfig.PersistentConfig](cmd, middleware.CtxKeyConfig)
			if err != nil {
				return err
			}

			force, err := cmd.Flags().GetBool("yes")
			if err != nil {
				return err
			}

			return uninstall.New(cfg, nil).Execute(args[0], force)
		},
	}

	cmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")

	return cmd
}
