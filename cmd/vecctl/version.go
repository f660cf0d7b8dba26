package main

import (
	"github.com/spf13/cobra"
)

// Set with -ldflags "-X main.version=..." at release time. rootCmd.Version
// reads the same variable, so --version and the version command agree.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

type versionInfo struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Built   string `json:"built"`
}

func init() {
	rootCmd.AddCommand(newVersionCmd())
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVersion()
		},
	}
}

func runVersion() error {
	info := versionInfo{Version: version, Commit: commit, Built: date}
	if jsonOut {
		return printJSON(info)
	}
	printInfo("vecctl %s\n", info.Version)
	printInfo("  commit: %s\n", info.Commit)
	printInfo("  built: %s\n", info.Built)
	return nil
}
