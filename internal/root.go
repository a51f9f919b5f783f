package internal

import (
	"fmt"
	"os"
	"strings"

	"github.com/swiftup/swiftup/internal/logger"

	"github.com/spf13/cobra"
)

// Version is stamped at build time.
var Version = "dev"

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "swiftup",
		Short: "Swift toolchain version manager",
		Long: `Swiftup installs and manages Swift toolchains: stable releases and
development snapshots. It resolves versions against the remote tag index,
downloads the matching toolchain and switches between installed ones.`,
		Example: `swiftup install latest
swiftup install main-snapshot
swiftup use 5.7.0`,
		Run: func(cmd *cobra.Command, _ []string) {
			versionFlag, _ := cmd.Flags().GetBool("version")
			if versionFlag {
				fmt.Printf("Version: %s\n", Version)
				return
			}
			_ = cmd.Help()
		},
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			logger.ConfigureLoggerFromFlags()
		},
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	cmd.Flags().BoolP("version", "v", false, "Print version information")
	cmd.PersistentFlags().CountVarP(&logger.FlagVerboseCount, "verbose", "V", "Increase verbosity")
	cmd.PersistentFlags().BoolVarP(&logger.FlagQuiet, "quiet", "q", false, "Errors only")
	cmd.PersistentFlags().BoolVarP(&logger.FlagSilent, "silent", "s", false, "No output at all")
	cmd.PersistentFlags().BoolVar(&logger.FlagJSON, "json-logs", false, "JSON log output")

	RegisterSubCommands(cmd)

	return cmd
}

func Execute() error {
	logger.ConfigureLoggerFromFlags()
	root := NewRootCmd()

	if os.Getenv("COMP_LINE") != "" ||
		(len(os.Args) > 1 && strings.HasPrefix(os.Args[1], "__complete")) {
		return root.Execute()
	}

	if err := root.Execute(); err != nil {
		logger.Debug("Failed to execute root command: %v", err)
		return err
	}
	return nil
}
