package version

import (
	"fmt"

	"github.com/spf13/cobra"
)

// set with -ldflags at build time
var (
	Version = "dev"
	Commit  = ""
)

func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version of wallet-balance-tracker.",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("version: %v\n", Version)
			if Commit != "" {
				fmt.Printf("commit: %v\n", Commit)
			}
		},
	}
}
