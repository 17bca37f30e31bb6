package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Bnei-Baruch/kvo/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of kvo",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("Key-value observing demo version %s\n", version.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
