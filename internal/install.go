package internal

import (
	"github.com/swiftup/swiftup/internal/errs"
	"github.com/swiftup/swiftup/internal/globalconfig"
	"github.com/swiftup/swiftup/internal/install"
	"github.com/swiftup/swiftup/internal/middleware"

	"github.com/spf13/cobra"
)

func NewInstallCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "install <version>",
		Short: "Install a Swift toolchain",
		Long: `Resolves a version selector against the remote index and installs the
matching toolchain.

Examples:
    swiftup install latest                  # newest stable release
    swiftup install 5.7                     # newest 5.7.x patch
    swiftup install 5.7.0                   # exact release
    swiftup install main-snapshot           # newest main snapshot
    swiftup install 5.7-snapshot-2022-09-12 # exact snapshot`,
		RunE: func(cmd *cobra.Command, args []string) error {
			switch {
			case len(args) == 0:
				return middleware.FlagComboError(errs.VersionArgRequired, "install")
			case len(args) > 1:
				return middleware.FlagComboError(errs.SingleVersionOnly, "install")
			}

			cfg, err := middleware.Get[*globalconfig.PersistentConfig](cmd, middleware.CtxKeyConfig)
			if err != nil {
				return err
			}

			useFlag, err := cmd.Flags().GetBool("use")
			if err != nil {
				return err
			}

			inst := install.New(cfg, nil, nil)

			return inst.Execute(cmd.Context(), args[0], useFlag)
		},
	}

	cmd.Flags().BoolP("use", "u", false, "Switch to the toolchain after installing")

	return cmd
}
