package middleware

import (
	"github.com/swiftup/swiftup/internal/platform"
	"github.com/spf13/cobra"
)

// CheckPlatform fails early on platforms the distribution host publishes no
// extractable toolchains for, before any network work happens.
func CheckPlatform(cmd *cobra.Command, args []string, next func(cmd *cobra.Command, args []string) error) error {
	if _, err := platform.Current(); err != nil {
		return err
	}
	return next(cmd, args)
}
