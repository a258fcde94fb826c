package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"runtime/debug"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/llehouerou/cinedeck/internal/app"
	"github.com/llehouerou/cinedeck/internal/applog"
	"github.com/llehouerou/cinedeck/internal/catalog"
	"github.com/llehouerou/cinedeck/internal/config"
	"github.com/llehouerou/cinedeck/internal/deckcheck"
	"github.com/llehouerou/cinedeck/internal/errmsg"
	"github.com/llehouerou/cinedeck/internal/media"
	"github.com/llehouerou/cinedeck/internal/probecache"
	"github.com/llehouerou/cinedeck/internal/stderr"
)

type rootFlags struct {
	configPath string
	fps        int
	noAudio    bool
	windowed   bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var flags rootFlags

	root := &cobra.Command{
		Use:          "cinedeck [deck-file]",
		Short:        "Present a cinematic slide deck in the terminal",
		Version:      appVersion(),
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, args []string) error {
			return present(&flags, args)
		},
	}
	root.PersistentFlags().StringVar(&flags.configPath, "config", "", "config file (default: ~/.config/cinedeck/config.toml, ./cinedeck.toml)")
	root.Flags().IntVar(&flags.fps, "fps", 0, "frame rate while animating")
	root.Flags().BoolVar(&flags.noAudio, "no-audio", false, "do not play ambience tracks")
	root.Flags().BoolVar(&flags.windowed, "windowed", false, "start outside the alternate screen")

	root.AddCommand(newCheckCmd(&flags), newCacheCmd())
	return root
}

func newCheckCmd(flags *rootFlags) *cobra.Command {
	var concurrency int
	cmd := &cobra.Command{
		Use:   "check [deck-file]",
		Short: "Validate a deck and probe its media",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}
			d, err := loadDeck(cfg, args)
			if err != nil {
				return err
			}

			prober, closeCache := openProber(slog.New(slog.DiscardHandler))
			defer closeCache()

			report, err := deckcheck.Run(cmd.Context(), d, deckcheck.Options{
				Prober:      prober,
				Concurrency: concurrency,
			})
			if err != nil {
				return err
			}
			if err := deckcheck.Write(cmd.OutOrStdout(), report); err != nil {
				return err
			}
			if n := len(report.Problems()); n > 0 {
				return fmt.Errorf("%d media files have problems", n)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&concurrency, "jobs", "j", deckcheck.DefaultConcurrency, "parallel probes")
	return cmd
}

func newCacheCmd() *cobra.Command {
	cache := &cobra.Command{
		Use:   "cache",
		Short: "Manage the media duration cache",
	}

	var olderThan time.Duration
	prune := &cobra.Command{
		Use:   "prune",
		Short: "Remove cached durations older than a cutoff",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := probecache.Open()
			if err != nil {
				return errors.New(errmsg.Format(errmsg.OpProbeCacheOpen, err))
			}
			defer c.Close()

			cutoff := time.Now().Add(-olderThan)
			n, err := c.Prune(cutoff)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "removed %s cached durations probed before %s\n",
				humanize.Comma(n), humanize.Time(cutoff))
			return nil
		},
	}
	prune.Flags().DurationVar(&olderThan, "older-than", 30*24*time.Hour, "age of entries to remove")

	cache.AddCommand(prune)
	return cache
}

func loadConfig(flags *rootFlags) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if flags.configPath != "" {
		if _, statErr := os.Stat(flags.configPath); statErr != nil {
			return nil, fmt.Errorf("config: %w", statErr)
		}
		cfg, err = config.LoadFrom(flags.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	if flags.fps > 0 {
		cfg.FPS = flags.fps
	}
	if flags.noAudio {
		off := false
		cfg.Audio.Enabled = &off
	}
	if flags.windowed {
		off := false
		cfg.Fullscreen = &off
	}
	return cfg, nil
}

// loadDeck reads the deck named on the command line, then the configured
// one, then falls back to the built-in deck.
func loadDeck(cfg *config.Config, args []string) (*catalog.Deck, error) {
	path := cfg.Deck
	if len(args) > 0 {
		path = args[0]
	}
	if path == "" {
		return catalog.Builtin(), nil
	}
	return catalog.Load(path)
}

// openProber returns a prober backed by the on-disk cache when it opens.
func openProber(logger *slog.Logger) (*media.Prober, func()) {
	cache, err := probecache.Open()
	if err != nil {
		logger.Warn("probe cache unavailable", "error", err)
		return media.NewProber(nil).WithLogger(logger), func() {}
	}
	return media.NewProber(cache).WithLogger(logger), func() {
		if err := cache.Close(); err != nil {
			logger.Warn("close probe cache", "error", err)
		}
	}
}

func present(flags *rootFlags, args []string) error {
	cfg, err := loadConfig(flags)
	if err != nil {
		return err
	}
	d, err := loadDeck(cfg, args)
	if err != nil {
		return err
	}

	logCfg := cfg.GetLogConfig()
	logger, closeLog, err := applog.Open(logCfg.File, logCfg.Level)
	if err != nil {
		return err
	}
	defer closeLog()
	logger.Info("starting", "version", appVersion(), "deck", d.Title, "slides", d.Len())

	prober, closeCache := openProber(logger)
	defer closeCache()

	capture, err := stderr.Start()
	if err != nil {
		logger.Warn("stderr capture unavailable", "error", err)
	}
	defer capture.Stop()

	if cfg.AudioEnabled() {
		if err := media.OpenAudio(cfg.GetAudioConfig().SampleRate); err != nil {
			logger.Warn(errmsg.Format(errmsg.OpAudioOpen, err))
		}
		defer media.CloseAudio()
	}

	m := app.New(app.Options{
		Deck:   d,
		Config: cfg,
		Prober: prober,
		Logger: logger,
		Stderr: capture.Lines(),
	})

	opts := []tea.ProgramOption{tea.WithMouseCellMotion()}
	if m.Fullscreen {
		opts = append(opts, tea.WithAltScreen())
	}
	final, err := tea.NewProgram(m, opts...).Run()
	if fm, ok := final.(app.Model); ok {
		fm.Close()
	}
	if err != nil {
		capture.WriteOriginal(errmsg.Format(errmsg.OpInitialize, err) + "\n")
		return err
	}
	return nil
}

func appVersion() string {
	bi, ok := debug.ReadBuildInfo()
	if !ok || bi.Main.Version == "" {
		return "unknown"
	}
	return bi.Main.Version
}
