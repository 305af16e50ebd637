// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the confrank CLI, a terminal
// browser for the conference ranking snapshot.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/conference-rank/internal/logging"
	"github.com/pdiddy/conference-rank/internal/render"
	"github.com/pdiddy/conference-rank/internal/secrets"
	"github.com/pdiddy/conference-rank/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// Session state filled in by PersistentPreRunE.
var (
	cfg    types.Config
	logger = slog.Default()
)

// rootCmd is the base command for the confrank CLI.
var rootCmd = &cobra.Command{
	Use:   "confrank",
	Short: "Browse the computer-science conference ranking snapshot",
	Long: `confrank loads the conference ranking snapshot (a CSV file, an http(s)
URL, or a SQLite snapshot) and lets you search, filter, sort, and page
through it, and summarize the h5-index distribution.

Use table for one-shot queries, browse for an interactive session, and
snapshot to import the CSV into SQLite or export it as YAML or JSON.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.LoadDir(secrets.DefaultDir)
		if err != nil {
			return err
		}
		c, err := loadConfig(s)
		if err != nil {
			return err
		}
		cfg = c
		logger = logging.Setup(cfg.Log.Level, cfg.Log.Format)
		if len(s) > 0 {
			logger.Debug("secrets loaded", "names", s.Names())
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default: ./confrank.yaml or ~/.config/confrank/confrank.yaml)")
	pf.String("source", "", "CSV path, http(s) URL, or .db snapshot to load")
	pf.Int("page-size", types.DefaultPageSize, "records per page")
	pf.String("locale", render.DefaultLocale, "locale for number grouping")
	pf.String("log-level", "info", "log level: debug, info, warn, error")
	pf.String("log-format", "text", "log format: text or json")

	for key, flag := range map[string]string{
		"source":     "source",
		"page_size":  "page-size",
		"locale":     "locale",
		"log.level":  "log-level",
		"log.format": "log-format",
	} {
		_ = viper.BindPFlag(key, pf.Lookup(flag))
	}
}

func initConfig() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintln(os.Stderr, "warning: reading .env:", err)
	}

	viper.SetDefault("source", "out/website-2025.csv")
	viper.SetDefault("page_size", types.DefaultPageSize)
	viper.SetDefault("locale", render.DefaultLocale)
	viper.SetDefault("http.timeout", 30*time.Second)
	viper.SetDefault("http.user_agent", "confrank/"+version)
	viper.SetDefault("http.token", "")
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.format", "text")

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("confrank")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "confrank"))
		}
	}

	viper.SetEnvPrefix("CONFRANK")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig decodes the merged viper settings. The bearer token falls
// back to the source-token secret.
func loadConfig(s secrets.Set) (types.Config, error) {
	var c types.Config
	if err := viper.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("decoding config: %w", err)
	}
	c.HTTP.Token = s.Lookup(secrets.SourceToken, c.HTTP.Token)
	if err := c.Validate(); err != nil {
		return c, err
	}
	return c, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
