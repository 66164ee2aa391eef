package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/snakefield/internal/config"
	"github.com/vovakirdan/snakefield/internal/core"
	"github.com/vovakirdan/snakefield/internal/games/snake"
	"github.com/vovakirdan/snakefield/internal/particles"
	"github.com/vovakirdan/snakefield/internal/platform/tui"
	"github.com/vovakirdan/snakefield/internal/storage"
)

var (
	flagDifficulty string
	flagWatch      bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a round of snake",
	Long: `Start the game. The board waits in the idle state until you press a
direction or Enter.

Controls:
  Arrows/WASD/HJKL - Steer (also starts a round)
  Enter            - Start
  P/Space          - Pause/Resume
  R                - Reset to idle
  Ctrl+S           - Save a screenshot
  ?                - Toggle help
  Q/Esc/Ctrl+C     - Quit

Difficulty options:
  easy   - 160ms ticks
  normal - 120ms ticks
  hard   - 80ms ticks
  fixed  - Keep the configured period and never speed up

Examples:
  snakefield play
  snakefield play --difficulty hard
  snakefield play --seed 42
  snakefield play --config ./my-snake.yaml --watch`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	cmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload the config file when it changes")
}

func runPlay(_ *cobra.Command, _ []string) {
	logger, logFile, err := newLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()

	fileCfg, source, err := config.LoadSnakeWithSource(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	preset, err := config.ParseDifficultyPreset(flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if preset != "" {
		config.ApplySnakePreset(&fileCfg, preset)
	}
	logger.Info("config loaded", "source", source, "period_ms", fileCfg.Tick.PeriodMS, "preset", fileCfg.Difficulty.Preset)

	// Get terminal size early so the first frame fits
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := core.RuntimeConfig{
		ScreenW:   width,
		ScreenH:   height,
		FrameRate: flagFPS,
		Seed:      flagSeed,
	}
	if rt.FrameRate <= 0 {
		rt.FrameRate = core.DefaultConfig().FrameRate
	}

	engineCfg, err := snake.FromFileConfig(fileCfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	engineCfg.Seed = flagSeed

	// Open score storage; play continues without persistence on failure
	var store *storage.Store
	engineOpts := []snake.Option{snake.WithLogger(logger.WithPrefix("engine"))}
	store, err = storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("scores database unavailable", "path", flagDBPath, "error", err)
		store = nil
	} else {
		engineOpts = append(engineOpts, snake.WithHighScores(store.Keeper(storage.DefaultGameID)))
	}

	fieldSeed := flagSeed
	if fieldSeed == 0 {
		fieldSeed = time.Now().UnixNano()
	}
	field := particles.New(particles.FromFileConfig(fileCfg.Particles, rt.FrameRate), width, height, fieldSeed)

	sink := tui.NewSink()
	engineOpts = append(engineOpts, snake.WithRenderer(sink), snake.WithBooster(sink))

	engine, err := snake.New(engineCfg, engineOpts...)
	if err != nil {
		if store != nil {
			store.Close()
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	watchPath := ""
	if flagWatch {
		switch {
		case flagConfig != "":
			watchPath = flagConfig
		case source != "embedded":
			watchPath = source
		default:
			logger.Warn("nothing to watch, using the embedded config")
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runErr := tui.Run(ctx, tui.Options{
		Engine:     engine,
		Sink:       sink,
		Field:      field,
		Store:      store,
		SessionID:  uuid.NewString(),
		Difficulty: config.NewDifficultyManager(fileCfg.Difficulty, engineCfg.Period),
		MaxWidth:   fileCfg.Grid.MaxWidth,
		Runtime:    rt,
		Logger:     logger,
	}, watchPath)

	if store != nil {
		store.Close()
	}

	if runErr != nil && ctx.Err() == nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}
