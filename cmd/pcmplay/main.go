// SPDX-License-Identifier: EPL-2.0

// Command pcmplay plays a directory of numbered sound files through the
// launcher engine, one after another.
//
//	pcmplay [flags] [sound numbers...]
//
// Without sound numbers every loaded file is played in order. Settings come
// from PCMAUDIO_* environment variables; flags override them.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/ik5/pcmaudio"
	"github.com/ik5/pcmaudio/engine"
	"github.com/ik5/pcmaudio/internal/config"
	"github.com/ik5/pcmaudio/internal/logging"
	"github.com/ik5/pcmaudio/render"
	"github.com/ik5/pcmaudio/soundbank"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "pcmplay:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Load()

	fs := flag.NewFlagSet("pcmplay", flag.ContinueOnError)
	fs.IntVar(&cfg.Rate, "rate", cfg.Rate, "output samples per second")
	fs.IntVar(&cfg.Voices, "voices", cfg.Voices, "simultaneous voices")
	fs.StringVar(&cfg.Format, "format", cfg.Format, "sample format: s16le, s32le, s32be or f32le")
	fs.StringVar(&cfg.BankDir, "bank", cfg.BankDir, "directory of numbered sound files")
	fs.StringVar(&cfg.Output, "out", cfg.Output, `output: empty for the audio device, "-" for stdout, or a file (.wav writes WAVE)`)
	fs.DurationVar(&cfg.Duration, "duration", cfg.Duration, "how long to play")
	fs.DurationVar(&cfg.Interval, "interval", cfg.Interval, "silence between sounds")
	fs.DurationVar(&cfg.Buffer, "buffer", cfg.Buffer, "audio device buffer")
	if err := fs.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	format, _ := render.ParseFormat(cfg.Format)

	logger, _, err := logging.New(logging.ConfigFromEnv())
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()
	logger = logger.With(zap.String("session", logging.NewSessionID()))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	e := engine.NewLauncherEngine(
		engine.WithTargetSamplesPerSec(cfg.Rate),
		engine.WithMaxReaders(cfg.Voices),
		engine.WithLogger(logger),
	)

	report, err := soundbank.Load(ctx, os.DirFS(cfg.BankDir), ".", e, soundbank.WithLogger(logger))
	if err != nil {
		return err
	}

	order, err := playOrder(fs.Args(), report.Registered)
	if err != nil {
		return err
	}
	pl, err := newPlaylist(e, order, float64(cfg.Interval.Microseconds())/1000, logger)
	if err != nil {
		return err
	}
	if err := pl.advance(); err != nil {
		return err
	}

	logger.Info("playing",
		zap.Ints("sounds", order),
		zap.Int("rate", cfg.Rate),
		zap.Stringer("format", format),
		zap.Duration("duration", cfg.Duration),
	)

	return output(ctx, cfg, format, e, pl, logger)
}

func output(ctx context.Context, cfg config.Config, format render.Format, e *engine.LauncherEngine, pl *playlist, logger *zap.Logger) error {
	switch {
	case cfg.Output == "":
		loop := pcmaudio.NewLoop(e, pl.advance)
		stream, err := render.NewStream(loop, format)
		if err != nil {
			return err
		}
		if err := playDevice(ctx, stream, cfg.Rate, format, cfg.Buffer, cfg.Duration); err != nil {
			return err
		}
		logger.Info("device stopped", zap.Int64("ticks", stream.Ticks()), zap.Int64("clipped", stream.Clipped()))
		return loop.Err()

	case cfg.Output == "-":
		n, err := pcmaudio.Bounce(ctx, os.Stdout, e, format, cfg.Ticks(), pl.advance)
		logger.Info("bounced to stdout", zap.Int64("bytes", n))
		return err

	case strings.EqualFold(filepath.Ext(cfg.Output), ".wav"):
		f, err := os.Create(cfg.Output)
		if err != nil {
			return err
		}
		defer f.Close()

		frames, err := pcmaudio.BounceWAV(ctx, f, e, cfg.Rate, cfg.Ticks(), pl.advance)
		if err != nil {
			return err
		}
		logger.Info("bounced", zap.String("file", cfg.Output), zap.Int("frames", frames))
		return f.Close()

	default:
		f, err := os.Create(cfg.Output)
		if err != nil {
			return err
		}
		defer f.Close()

		n, err := pcmaudio.Bounce(ctx, f, e, format, cfg.Ticks(), pl.advance)
		if err != nil {
			return err
		}
		logger.Info("bounced", zap.String("file", cfg.Output), zap.Int64("bytes", n), zap.Stringer("format", format))
		return f.Close()
	}
}

// playOrder maps 1-based sound numbers from the command line to engine
// indexes. Without arguments it plays every registered sound.
func playOrder(args []string, registered []int) ([]int, error) {
	if len(args) == 0 {
		return registered, nil
	}

	order := make([]int, 0, len(args))
	for _, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("bad sound number %q", arg)
		}
		order = append(order, n-1)
	}

	return order, nil
}
