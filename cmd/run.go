package cmd

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/Bnei-Baruch/kvo/domain"
	"github.com/Bnei-Baruch/kvo/instrumentation"
	"github.com/Bnei-Baruch/kvo/scenario"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the birthday scenario",
	Run:   runFn,
}

var (
	dogName     string
	dogAge      int
	increments  int
	dumpMetrics bool
)

func init() {
	runCmd.Flags().StringVarP(&dogName, "name", "n", "", "Dog name (overrides DOG_NAME)")
	runCmd.Flags().IntVarP(&dogAge, "age", "a", 0, "Initial age (overrides DOG_AGE)")
	runCmd.Flags().IntVarP(&increments, "increments", "i", 0, "Number of birthdays (overrides INCREMENTS)")
	runCmd.Flags().BoolVar(&dumpMetrics, "metrics", false, "Print collected metrics when done")
	rootCmd.AddCommand(runCmd)
}

func runFn(cmd *cobra.Command, args []string) {
	cfg := scenario.ConfigFromCommon()
	if cmd.Flags().Changed("name") {
		cfg.DogName = dogName
	}
	if cmd.Flags().Changed("age") {
		cfg.DogAge = dogAge
	}
	if cmd.Flags().Changed("increments") {
		if increments < 0 {
			log.Fatal().Int("increments", increments).Msg("increments must not be negative")
		}
		cfg.Increments = increments
	}

	if _, err := scenario.Run(cmd.Context(), cfg, domain.NewConsoleSink(os.Stdout)); err != nil {
		log.Fatal().Err(err).Msg("scenario.Run")
	}

	if dumpMetrics {
		if err := instrumentation.Stats.WriteText(os.Stdout); err != nil {
			log.Error().Err(err).Msg("instrumentation.Stats.WriteText")
		}
	}
}
