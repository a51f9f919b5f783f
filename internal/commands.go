package internal

import (
	"github.com/swiftup/swiftup/internal/middleware"
	"github.com/spf13/cobra"
)

var defaultCommands = []middleware.CommandFactory{
	NewInitCmd,
	middleware.UseMiddlewareChain(middleware.RequireConfig)(NewListCmd),
	middleware.UseMiddlewareChain(middleware.RequireConfig)(NewSearchCmd),
	middleware.UseMiddlewareChain(middleware.RequireConfig, middleware.CheckPlatform)(NewInstallCmd),
	middleware.UseMiddlewareChain(middleware.RequireConfig, middleware.CheckPlatform)(NewUpdateCmd),
	middleware.UseMiddlewareChain(middleware.RequireConfig)(NewUseCmd),
	middleware.UseMiddlewareChain(middleware.RequireConfig)(NewUninstallCmd),
}

func RegisterSubCommands(cmd *cobra.Command) {
	for _, factory := range defaultCommands {
		cmd.AddCommand(factory())
	}
}
