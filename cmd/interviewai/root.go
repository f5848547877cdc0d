package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"interviewai-backend/internal/shared/config"
	"interviewai-backend/internal/shared/telemetry"
)

const app = "interviewai"

var (
	envFile string
	cfg     config.Config

	rootCmd = &cobra.Command{
		Use:          app,
		Short:        "InterviewAI backend: mock interviews, feedback and resume tooling",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return initConfig(cmd)
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file read before the environment")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", true, "json format for logging")
}

func initConfig(cmd *cobra.Command) error {
	v := viper.New()
	cfg = config.LoadFrom(v, envFile)

	flags := cmd.Flags()
	if flags.Changed("debug") {
		cfg.LogDebug, _ = flags.GetBool("debug")
	}
	if flags.Changed("json") {
		cfg.LogJSON, _ = flags.GetBool("json")
	}

	logger, err := telemetry.New(cfg.LogJSON, cfg.LogDebug)
	if err != nil {
		return fmt.Errorf("creating a logger: %w", err)
	}
	telemetry.SetLogger(logger)
	return nil
}
