package main

import (
	"fmt"
	"github.com/gostonefire/spellcatalog/internal/config"
	"github.com/spf13/cobra"
	"log/slog"
	"os"
)

// settings - Values shared by all commands, read from the environment and overridden by flags
type settings struct {
	TableCapacity int64  `env:"SPELLCTL_TABLE_CAPACITY" envDefault:"7"`
	Buckets       int    `env:"SPELLCTL_BUCKETS" envDefault:"10"`
	Hash          string `env:"SPELLCTL_HASH" envDefault:"charsum"`
	Duplicates    string `env:"SPELLCTL_DUPLICATES" envDefault:"tiebreak"`
	LogLevel      string `env:"SPELLCTL_LOG_LEVEL" envDefault:"info"`
	SeedPath      string `env:"SPELLCTL_SEED"`
}

var (
	// Global flags
	cfg    settings
	logger = slog.New(slog.NewTextHandler(os.Stderr, nil))
)

func newRootCmd() *cobra.Command {
	cfg = settings{}
	envErr := config.ParseEnv(&cfg)

	rootCmd := &cobra.Command{
		Use:   "spellctl",
		Short: "Query an in memory spell catalog",
		Long: `spellctl loads spells from a seed file into a catalog of AVL trees, one per category,
and into a fixed capacity spell table mapping names to cast words.

Settings come from SPELLCTL_* environment variables, flags take precedence.`,
		Version:       "0.1.0",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if envErr != nil {
				return envErr
			}

			var level slog.Level
			if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
				return fmt.Errorf("log level: %w", err)
			}
			logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
			return nil
		},
	}

	rootCmd.PersistentFlags().Int64Var(&cfg.TableCapacity, "capacity", cfg.TableCapacity, "Number of slots in the spell table")
	rootCmd.PersistentFlags().IntVar(&cfg.Buckets, "buckets", cfg.Buckets, "Expected number of categories")
	rootCmd.PersistentFlags().
		StringVar(&cfg.Hash, "hash", cfg.Hash, "Spell table hashing: charsum, crc32, xxhash, linear or quadratic")
	rootCmd.PersistentFlags().
		StringVar(&cfg.Duplicates, "duplicates", cfg.Duplicates, "Equal power levels: tiebreak, reject or overwrite")
	rootCmd.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn or error")
	rootCmd.PersistentFlags().StringVarP(&cfg.SeedPath, "seed", "s", cfg.SeedPath, "YAML seed file with spells")

	rootCmd.AddCommand(
		newDemoCmd(),
		newTopKCmd(),
		newSearchCmd(),
		newWordsCmd(),
		newStatCmd(),
	)

	return rootCmd
}

func execute() {
	if err := newRootCmd().Execute(); err != nil {
		config.Exitf("spellctl: %v", err)
	}
}
