package cmd

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Bitlatte/auraspaces/internal/catalog"
	"github.com/Bitlatte/auraspaces/internal/config"
)

var cfgFile string
var envFile string
var appConfig config.Config
var logger = slog.Default()

var rootCmd = &cobra.Command{
	Use:   "auraspaces",
	Short: "AuraSpaces - interior design studio website",
	Long: `auraspaces generates the AuraSpaces marketing site: a home page, one
landing page per city in the catalog, SEO metadata, structured data and a
sitemap. Pages are rendered ahead of time into the output directory.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeConfig(cmd)
	},
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file loaded before configuration, ignored when missing")
}

func initializeConfig(cmd *cobra.Command) error {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load env file %s: %w", envFile, err)
	}

	v := viper.New()
	for key, value := range config.Defaults {
		v.SetDefault(key, value)
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("AURASPACES")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	configSource := "defaults"
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config file: %w", err)
		}
		if cfgFile != "" {
			return fmt.Errorf("config file %s not found: %w", cfgFile, err)
		}
	} else {
		configSource = v.ConfigFileUsed()
	}

	if err := v.Unmarshal(&appConfig); err != nil {
		return fmt.Errorf("unable to decode config into struct: %w", err)
	}
	if err := appConfig.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	level, _ := config.ParseLogLevel(appConfig.LogLevel)
	logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	logger.Debug("configuration loaded", "source", configSource, "output_dir", appConfig.OutputDir, "base_url", appConfig.BaseURL)
	return nil
}

// loadCatalog returns the content directory's catalog, or the built-in one
// when no content directory is configured.
func loadCatalog(cfg config.Config) (*catalog.Catalog, error) {
	if cfg.ContentDir == "" {
		return catalog.Default(), nil
	}
	cat, err := catalog.LoadDir(cfg.ContentDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog from '%s': %w", cfg.ContentDir, err)
	}
	return cat, nil
}
