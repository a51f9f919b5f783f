package middleware

import (
	"context"
	"fmt"

	"github.com/swiftup/swiftup/internal/globalconfig"
	"github.com/spf13/cobra"
)

// RequireConfig loads the persisted installation state and makes it
// available to the command through its context.
func RequireConfig(cmd *cobra.Command, args []string, next func(cmd *cobra.Command, args []string) error) error {
	cfg, err := globalconfig.LoadPersistentConfig()
	if err != nil {
		return fmt.Errorf("missing config: %w", err)
	}

	ctx := context.WithValue(cmd.Context(), CtxKeyConfig, cfg)
	cmd.SetContext(ctx)

	return next(cmd, args)
}
