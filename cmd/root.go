package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/subosito/gotenv"

	"github.com/Bnei-Baruch/kvo/common"
)

var rootCmd = &cobra.Command{
	Use:   "kvo",
	Short: "Key-value observing demo",
	Long:  `Observers reacting to changes of an observed attribute`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		gotenv.Load(common.DefaultEnvFile)
		common.Init()
		common.InitLogging()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
