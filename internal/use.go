package internal

import (
	"github.com/swiftup/swiftup/internal/errs"
	"github.com/swiftup/swiftup/internal/globalconfig"
	"github.com/swiftup/swiftup/internal/middleware"
	"github.com/swiftup/swiftup/internal/use"

	"github.com/spf13/cobra"
)

func NewUseCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "use <version>",
		Short:   "Switch the in-use toolchain",
		Example: `swiftup use 5.7.0`,
		RunE: func(cmd *cobra.Command, args []string) error {
			switch {
			case len(args) == 0:
				return middleware.FlagComboError(errs.VersionArgRequired, "use")
			case len(args) > 1:
				return middleware.FlagComboError(errs.SingleVersionOnly, "use")
			}

			cfg, err := middleware.Get[*globalconfig.PersistentConfig](cmd, middleware.CtxKeyConfig)
			if err != nil {
				return err
			}

			return use.New(cfg).Execute(args[0])
		},
	}
}
