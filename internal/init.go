package internal

import (
	"github.com/swiftup/swiftup/internal/initiator"

	"github.com/spf13/cobra"
)

func NewInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize swiftup's config and data directories",
		RunE: func(cmd *cobra.Command, args []string) error {
			return initiator.New().Execute()
		},
	}
}
