package errs

import "fmt"

type Code string

const (
	VersionArgRequired  Code = "VERSION_ARG_REQUIRED"
	SingleVersionOnly   Code = "SINGLE_VERSION_ONLY"
	NotInstalled        Code = "NOT_INSTALLED"
	AlreadyInstalled    Code = "ALREADY_INSTALLED"
	UninstallInUse      Code = "UNINSTALL_IN_USE"
	AvailableWithFilter Code = "AVAILABLE_WITH_FILTER"
)

var messages = map[Code]string{
	VersionArgRequired: `Missing version: provide a version selector

Examples:
  swiftup %[1]s latest                    # newest stable release
  swiftup %[1]s 5.7                       # newest 5.7.x patch
  swiftup %[1]s 5.7.0                     # exact release
  swiftup %[1]s main-snapshot             # newest main snapshot
  swiftup %[1]s 5.7-snapshot-2022-09-12   # exact snapshot`,

	SingleVersionOnly: `Invalid usage: %[1]s takes exactly one version

Usage:
  swiftup %[1]s <version>`,

	NotInstalled: `Toolchain %[1]s is not installed

Run:
  swiftup list              # show installed toolchains
  swiftup install %[1]s     # install it first`,

	AlreadyInstalled: `Toolchain %[1]s is already installed

Run:
  swiftup use %[1]s         # switch to it`,

	UninstallInUse: `Toolchain %[1]s is currently in use

Switch away first:
  swiftup use <other-version>
  swiftup uninstall %[1]s`,

	AvailableWithFilter: `Invalid flag combination: --installed and --available are exclusive

Usage:
  swiftup list              # installed toolchains
  swiftup list --available  # toolchains published on the remote index`,
}

func Msg(code Code, a ...any) string {
	msg := messages[code]
	if msg == "" {
		msg = string(code)
	}
	return fmt.Sprintf(msg, a...)
}
