package main

import (
	"fmt"
	"hanabi/config"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	configPath string
	logLevel   string
	pretty     bool

	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "hanabi",
	Short: "Encode Hanabi game transcripts into integer token sequences",
	Long: `hanabi turns textual Hanabi game logs into integer token sequences,
bundles them into training samples and validates encoded samples.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("log-level") {
			cfg.Logging.Level = logLevel
		}
		if cmd.Flags().Changed("pretty") {
			cfg.Logging.Pretty = pretty
		}
		setupLogging(cfg)
		return nil
	},
}

func setupLogging(c *config.Config) {
	zerolog.SetGlobalLevel(c.LogLevel())
	if c.Logging.Pretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "hanabi.yaml", "path to the YAML configuration")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&pretty, "pretty", false, "human-readable console logs")

	rootCmd.AddCommand(encodeCmd, generateCmd, validateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
