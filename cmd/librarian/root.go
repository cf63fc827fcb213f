package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"librarian/internal/library"
	"librarian/internal/paths"
	"librarian/internal/store"
	"librarian/pkg/types"
)

var (
	flagConfigDir string
	flagDataDir   string
	flagJSON      bool

	cfg     types.Config
	backend store.Store
	manager *library.Manager
)

var rootCmd = &cobra.Command{
	Use:   "librarian",
	Short: "Manage a personal library catalog",
	Long: `librarian tracks books, users, and loans in a local catalog.

The catalog lives in a single data directory and is rewritten in full
on every change, so it can be inspected, backed up, or synced as plain
files.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if backend == nil {
			return nil
		}
		return backend.Close()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default $LIBRARIAN_CONFIG_DIR or ./.librarian)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "catalog data directory (default from config)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "emit machine-readable JSON output")

	rootCmd.AddCommand(
		addBookCmd,
		deleteBookCmd,
		addUserCmd,
		deleteUserCmd,
		reactivateUserCmd,
		borrowCmd,
		returnCmd,
		listCmd,
		searchCmd,
		reportCmd,
		statsCmd,
		exportCmd,
		importCmd,
		versionCmd,
	)
}

// setup resolves configuration, opens the store, and constructs the
// catalog manager shared by all subcommands.
func setup(cmd *cobra.Command, args []string) error {
	if cmd.Name() == "version" {
		return nil
	}

	configDir, err := paths.ResolveConfigDir(flagConfigDir)
	if err != nil {
		return err
	}
	v, err := loadConfig(configDir)
	if err != nil {
		return err
	}

	cfg = types.DefaultConfig()
	cfg.Backend = v.GetString(cfgKeyBackend)
	cfg.PenaltyPerDay = v.GetFloat64(cfgKeyPenaltyPerDay)
	cfg.DefaultLoanDays = v.GetInt(cfgKeyDefaultLoanDays)

	dataDir, err := paths.ResolveDataDir(flagDataDir, v.GetString(cfgKeyDataDir))
	if err != nil {
		return err
	}
	cfg.DataDir = dataDir
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	backend, err = store.Open(cfg, logger)
	if err != nil {
		return err
	}
	manager = library.New(backend, cfg, logger)
	manager.SetChooser(newStdinChooser(os.Stdin, cmd.OutOrStdout()))
	return nil
}
