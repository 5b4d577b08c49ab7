package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"hash/maphash"
	"io"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"

	"github.com/vancomm/minesweeper-console/internal/config"
	"github.com/vancomm/minesweeper-console/internal/console"
	"github.com/vancomm/minesweeper-console/internal/game"
)

var (
	log = logrus.New()

	noColor bool
)

func parseFlags(board *config.Board) {
	flag.IntVar(&board.Width, "width", board.Width, "number of rows")
	flag.IntVar(&board.Height, "height", board.Height, "number of columns")
	flag.Float64Var(&board.BombFrequency, "freq", board.BombFrequency, "share of tiles holding a bomb")
	flag.BoolVar(&noColor, "no-color", false, "draw the board without colors")
	flag.Parse()
}

// setupLogging sends everything to a rotating log file; the terminal belongs
// to the game.
func setupLogging(cfg *config.Logging) error {
	logLevel := logrus.InfoLevel
	if config.Development() {
		logLevel = logrus.DebugLevel
	}
	log.SetLevel(logLevel)

	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Level:      logLevel,
		Formatter:  &logrus.TextFormatter{DisableColors: true, FullTimestamp: true},
	})
	if err != nil {
		return fmt.Errorf("unable to create log file hook: %w", err)
	}
	log.AddHook(hook)
	log.SetOutput(io.Discard)
	return nil
}

func createRand() *rand.Rand {
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

func run(ctx context.Context) error {
	boardCfg, err := config.NewBoard()
	if err != nil {
		return fmt.Errorf("unable to read board config: %w", err)
	}
	parseFlags(boardCfg)
	if err := boardCfg.Validate(); err != nil {
		return err
	}

	storeCfg, err := config.NewStore()
	if err != nil {
		return fmt.Errorf("unable to read store config: %w", err)
	}

	logCfg, err := config.NewLogging()
	if err != nil {
		return fmt.Errorf("unable to read logging config: %w", err)
	}
	if err := setupLogging(logCfg); err != nil {
		return err
	}

	sessionLog := log.WithField("session_id", uuid.NewString())
	sessionLog.WithFields(logrus.Fields{
		"width":          boardCfg.Width,
		"height":         boardCfg.Height,
		"bomb_frequency": boardCfg.BombFrequency,
		"store":          storeCfg.Kind,
		"log_file":       logCfg.File,
	}).Debug("config")

	st, err := openStore(ctx, storeCfg, sessionLog)
	if err != nil {
		return fmt.Errorf("unable to open %s store: %w", storeCfg.Kind, err)
	}
	defer st.Close()

	term := console.NewTerminal(os.Stdin, os.Stdout, !noColor)
	params := game.Params{
		BombFrequency: boardCfg.BombFrequency,
		Width:         boardCfg.Width,
		Height:        boardCfg.Height,
	}

	g, err := game.Start(ctx, term, st, params, createRand(), sessionLog)
	if err != nil {
		return err
	}
	state, err := g.Play(ctx)
	sessionLog.WithField("state", state).Info("session finished")
	return err
}

func main() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	err := run(ctx)
	switch {
	case err == nil, errors.Is(err, io.EOF):
	case errors.Is(err, context.Canceled):
		fmt.Fprintln(os.Stderr, "interrupted")
	default:
		log.WithError(err).Error("exit")
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
