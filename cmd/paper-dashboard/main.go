// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the paper-dashboard CLI. Each
// subcommand recomputes its tables from the memoized synthetic corpus:
// generate, filter, words, export, preset, and serve.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/pdiddy/paper-dashboard/internal/corpus"
	"github.com/pdiddy/paper-dashboard/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

var (
	// logger is built in PersistentPreRunE; commands log through it.
	logger = zap.NewNop()

	// cfg is the resolved configuration for the running command.
	cfg = types.DefaultConfig()

	// memo holds the generated corpus for the life of the process.
	memo *corpus.Memo
)

// rootCmd is the base command for the paper-dashboard CLI.
var rootCmd = &cobra.Command{
	Use:   "paper-dashboard",
	Short: "Explore a synthetic corpus of research-paper metadata",
	Long: `paper-dashboard generates a deterministic synthetic corpus of research-paper
metadata and answers dashboard queries over it: publication counts by year,
top journals, author-count distribution, source mix, and title word
frequencies, all recomputed for the current filters.

Filters are a year range, a journal set, a source, and an author-count
range. Use serve to expose the same tables as a JSON API.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := loadConfig()
		if err != nil {
			return err
		}
		cfg = loaded

		verbose, _ := cmd.Flags().GetBool("verbose")
		l, err := buildLogger(cfg.Log, verbose)
		if err != nil {
			return fmt.Errorf("initializing logger: %w", err)
		}
		logger = l
		memo = corpus.NewMemo(logger)

		if used := viper.ConfigFileUsed(); used != "" {
			logger.Debug("using config file", zap.String("path", used))
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./paper-dashboard.yaml or ~/.config/paper-dashboard/config.yaml)")
	rootCmd.PersistentFlags().Int64("seed", 42, "random seed for the synthetic corpus")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")

	_ = viper.BindPFlag("corpus.seed", rootCmd.PersistentFlags().Lookup("seed"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("paper-dashboard")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "paper-dashboard"))
		}
	}

	setDefaults(viper.GetViper(), types.DefaultConfig())

	viper.SetEnvPrefix("PAPER_DASHBOARD")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// setDefaults registers every config key so environment variables and
// flags resolve even when no config file is present.
func setDefaults(v *viper.Viper, d types.DashboardConfig) {
	v.SetDefault("corpus.seed", d.Corpus.Seed)

	v.SetDefault("filter.year_from", d.Filter.YearFrom)
	v.SetDefault("filter.year_to", d.Filter.YearTo)
	v.SetDefault("filter.authors_min", d.Filter.AuthorsMin)
	v.SetDefault("filter.authors_max", d.Filter.AuthorsMax)
	v.SetDefault("filter.top_journals", d.Filter.TopJournals)

	v.SetDefault("words.top", d.Words.Top)
	v.SetDefault("words.stem", d.Words.Stem)

	v.SetDefault("export.dir", d.Export.Dir)
	v.SetDefault("export.format", string(d.Export.Format))
	v.SetDefault("export.sort_by", d.Export.SortBy)
	v.SetDefault("export.ascending", d.Export.Ascending)
	v.SetDefault("export.limit", d.Export.Limit)

	v.SetDefault("server.addr", d.Server.Addr)
	v.SetDefault("server.read_timeout", d.Server.ReadTimeout)
	v.SetDefault("server.write_timeout", d.Server.WriteTimeout)
	v.SetDefault("server.shutdown_timeout", d.Server.ShutdownTimeout)
	v.SetDefault("server.rpm", d.Server.RPM)
	v.SetDefault("server.burst", d.Server.Burst)

	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.encoding", d.Log.Encoding)
}

// loadConfig decodes the resolved viper settings into a DashboardConfig.
func loadConfig() (types.DashboardConfig, error) {
	c := types.DefaultConfig()
	if err := viper.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("decoding config: %w", err)
	}
	return c, nil
}

// buildLogger builds a zap production logger writing to stderr. Verbose
// forces the debug level regardless of config.
func buildLogger(lc types.LogConfig, verbose bool) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	if lc.Encoding != "" {
		zc.Encoding = lc.Encoding
	}
	if lc.Level != "" {
		level, err := zapcore.ParseLevel(lc.Level)
		if err != nil {
			return nil, fmt.Errorf("parsing log level %q: %w", lc.Level, err)
		}
		zc.Level = zap.NewAtomicLevelAt(level)
	}
	if verbose {
		zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return zc.Build()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
