// Package cli implements the command-line interface for cubelet.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/SeamusWaldron/cubelet"
	"github.com/SeamusWaldron/cubelet/internal/config"
	"github.com/SeamusWaldron/cubelet/internal/storage"
)

const version = "0.1.0"

var (
	// Global flags
	configPath string
	dbPath     string
	verbose    bool
	plain      bool

	cfg    *config.Config
	logger = zap.NewNop()
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "cubelet",
	Short: "3x3x3 cube simulator",
	Long: `cubelet - a 3x3x3 twisty puzzle simulator.

Scramble and reset a virtual cube from the terminal, apply move sequences,
watch scrambles animate in an interactive view, or mirror a GoCube smart
cube over Bluetooth. Every scramble is logged to a local history.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		path := configPath
		if path == "" {
			p, err := config.DefaultPath()
			if err != nil {
				return err
			}
			path = p
		}

		c, err := config.Load(path)
		if err != nil {
			return err
		}
		if dbPath != "" {
			c.Storage.DBPath = dbPath
		}
		cfg = c

		l, err := newLogger(c.Logging.Level, interactive(cmd))
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file path (default: ~/.cubelet/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Database file path (default: ~/.cubelet/cubelet.db)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&plain, "plain", false, "Print stickers as letters without color")
}

// interactive reports whether cmd owns the terminal, in which case logs go
// to a file instead of stderr.
func interactive(cmd *cobra.Command) bool {
	switch cmd.Name() {
	case "play", "follow":
		return true
	}
	return false
}

func newLogger(level string, toFile bool) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	zc.Encoding = "console"
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	if verbose {
		lvl = zapcore.DebugLevel
	}
	zc.Level = zap.NewAtomicLevelAt(lvl)

	if toFile {
		dir, err := config.Dir()
		if err != nil {
			return nil, err
		}
		path := filepath.Join(dir, "cubelet.log")
		zc.OutputPaths = []string{path}
		zc.ErrorOutputPaths = []string{path}
	}
	return zc.Build()
}

// openHistory opens the scramble history database and applies migrations.
func openHistory() (*storage.DB, *storage.ScrambleRepository, error) {
	path, err := cfg.DBPath()
	if err != nil {
		return nil, nil, err
	}

	db, err := storage.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.MigrateUp(); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return db, storage.NewScrambleRepository(db), nil
}

func zapMoves(moves []cubelet.Move) []zap.Field {
	return []zap.Field{
		zap.Int("moves", len(moves)),
		zap.String("sequence", cubelet.FormatMoves(moves)),
	}
}
