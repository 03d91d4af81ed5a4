package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/inkpad-io/inkpad/internal/config"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("inkpad %s %s/%s\n", config.Version, runtime.GOOS, runtime.GOARCH)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
