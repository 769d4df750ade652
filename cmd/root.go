// Package cmd implements the command line interface for mdbview.
package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/lmittmann/tint"
	"github.com/mdbview/mdbview/internal/cli"
	"github.com/mdbview/mdbview/internal/container"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

//nolint:gochecknoglobals // cobra boilerplate
var (
	cfgFile  string
	logger   *slog.Logger
	logLevel = new(slog.LevelVar)
	rootCmd  *cobra.Command
)

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		var usageErr cli.UsageError
		if errors.As(err, &usageErr) {
			os.Exit(2)
		}

		os.Exit(1)
	}
}

// Root returns the fully-initialised root command, for use by the doc
// generator and any other tool that needs the full command tree without
// executing it.
func Root() *cobra.Command {
	return rootCmd
}

//nolint:gochecknoinits // cobra boilerplate
func init() {
	handler := tint.NewHandler(os.Stderr, &tint.Options{
		Level:      logLevel,
		TimeFormat: "15:04:05",
	})
	logger = slog.New(handler)

	ctr := container.New(logger)
	rootCmd = cli.NewCommand(logger, ctr)

	rootCmd.Long = `mdbview is a read-only decoder for GoPro mdb*.db media-index files
(the McObject eXtremeDB format GoPro cameras use to index clips on an SD
card). It prints the decoded header, page layout, and every single_ex /
grouped_ex record it finds.`

	existingPreRunE := rootCmd.PersistentPreRunE
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if err := initialiseConfig(cmd); err != nil {
			return fmt.Errorf("failed to initialise configuration: %w", err)
		}

		cfgLogLevel := viper.GetString("log.level")
		level := slog.LevelInfo

		switch strings.ToLower(cfgLogLevel) {
		case "debug":
			level = slog.LevelDebug
		case "warn", "warning":
			level = slog.LevelWarn
		case "error":
			level = slog.LevelError
		}

		logLevel.Set(level)

		//nolint:sloglint // global logger is fine here
		logger.DebugContext(
			cmd.Context(),
			"configuration initialised, using config file:",
			slog.String("cfgFile", viper.ConfigFileUsed()),
		)

		if existingPreRunE != nil {
			return existingPreRunE(cmd, args)
		}

		return nil
	}

	rootCmd.PersistentFlags().
		StringVar(&cfgFile, "config", "", "config file (default is $HOME/.mdbview/config)")

	rootCmd.AddCommand(newVersionCommand())
}

func initialiseConfig(cmd *cobra.Command) error {
	viper.SetEnvPrefix("MDBVIEW")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "*", "-", "*"))
	viper.AutomaticEnv()

	if err := viper.BindEnv("log.level", "MDBVIEW_LOG_LEVEL"); err != nil {
		return fmt.Errorf("failed to bind env variable: %w", err)
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(".")
		viper.AddConfigPath(home + "/.mdbview")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	if err := viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return fmt.Errorf("failed to initialise config: %w", err)
		}
	}

	if err := viper.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("failed to bind config flags: %w", err)
	}

	return nil
}
