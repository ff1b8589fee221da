package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is stamped via -ldflags at release time.
var version = "(devel)"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the eduai version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("eduai %s\n", version)
	},
}
