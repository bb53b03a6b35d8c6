package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Veraticus/aduana/internal/cli"
	"github.com/Veraticus/aduana/internal/common"
)

var (
	cfgFile string
	version = "dev"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "aduana",
		Short: "🛃 Customs compliance validation for Central American trade documents",
		Long: `aduana checks commercial invoices, DUCA declarations and courier manifests
against the customs rules of Panama, Costa Rica and Guatemala.

It recomputes CIF values and tax cascades, validates fiscal identifiers,
classifies products, flags prohibited goods and permits, backs declared
tariff codes with binding rulings, and seals every result in a hash chain.`,
		PersistentPreRunE: initConfig,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.config/aduana/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "console", "log format (console, json)")
	rootCmd.PersistentFlags().String("region", "", "region code (PA, CR, GT); defaults to region.default")

	_ = viper.BindPFlag("logging.level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("logging.format", rootCmd.PersistentFlags().Lookup("log-format"))

	rootCmd.AddCommand(validateCmd())
	rootCmd.AddCommand(classifyCmd())
	rootCmd.AddCommand(manifestCmd())
	rootCmd.AddCommand(cifCmd())
	rootCmd.AddCommand(taxCmd())
	rootCmd.AddCommand(fiscalIDCmd())
	rootCmd.AddCommand(precedentsCmd())
	rootCmd.AddCommand(memoryCmd())
	rootCmd.AddCommand(historyCmd())
	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(versionCmd())

	return rootCmd
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		slog.Info("Received interrupt signal, shutting down gracefully...")
		cancel()
	}()

	err := newRootCmd().ExecuteContext(ctx)
	cancel()

	if err != nil {
		var userErr *common.UserError
		if errors.As(err, &userErr) {
			fmt.Fprintln(os.Stderr, cli.FormatError(userErr.UserMessage))
			slog.Debug("Command failed", "error", userErr.Err)
		} else {
			fmt.Fprintln(os.Stderr, cli.FormatError(err.Error()))
		}
		os.Exit(1)
	}
}

func initConfig(_ *cobra.Command, _ []string) error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}

		viper.AddConfigPath(fmt.Sprintf("%s/.config/aduana", home))
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("ADUANA")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	if err := setupLogging(); err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}

	return nil
}

func setupLogging() error {
	level, err := common.ParseLevel(viper.GetString("logging.level"))
	if err != nil {
		return err
	}
	return common.SetupLogger(level, viper.GetString("logging.format"))
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "aduana %s\n", version)
		},
	}
}
