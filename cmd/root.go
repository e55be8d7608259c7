// Package cmd is for command line interactions with the rfdim application
package cmd

import (
	"log"
	"os"
	"time"

	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/stetinam/rfdim/config"
)

var cfgFile string

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use: "rfdim",
	Short: `Mark residues of a protein structure as frozen or flexible and
export the CONTIGS and INPAINT_SEQ strings consumed by RFdiffusion`,
	Version:          "0.1.0",
	PersistentPreRun: func(cmd *cobra.Command, args []string) { initLogger() },
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}

// initLogger routes diagnostics through zerolog's console writer on
// stderr. Session and command output stay on stdout; only debug
// diagnostics and failures go through the logger.
func initLogger() {
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}
	zlog.Logger = zerolog.New(output).With().Timestamp().Str("app", "rfdim").Logger()

	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	if viper.GetBool("verbose") {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
}

func init() {
	cobra.OnInitialize(func() { config.Setup(cfgFile) })

	RootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .rfdim.yaml)")
	RootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")
	RootCmd.PersistentFlags().StringSliceP("chains", "c", nil, "chain identifiers to annotate (default all chains)")

	viper.BindPFlag("verbose", RootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("chains", RootCmd.PersistentFlags().Lookup("chains"))
}
