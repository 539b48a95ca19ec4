package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/noodles/audio"
	"github.com/pthm-cable/noodles/config"
	"github.com/pthm-cable/noodles/game"
	"github.com/pthm-cable/noodles/renderer"
	"github.com/pthm-cable/noodles/server"
	"github.com/pthm-cable/noodles/telemetry"
	"github.com/pthm-cable/noodles/terminal"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	rosterPath := flag.String("roster", "", "CSV roster (name,color,left,right) replacing the configured players")
	frontend := flag.String("frontend", "window", "Presentation: window, terminal or headless")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	serve := flag.Bool("serve", false, "Serve the liveness endpoint on server.addr")
	autoAdvance := flag.Float64("auto-advance", 0, "Seconds before a finished round is acknowledged automatically (0 = wait for input; headless defaults to 1)")
	maxRounds := flag.Int("max-rounds-played", 0, "Stop after N finished rounds (0 = unlimited)")
	logFile := flag.String("log-file", "", "Write logs to this file instead of stdout")
	logPerf := flag.Bool("log-perf", false, "Log per-phase timings every telemetry.perf_window ticks")
	noAudio := flag.Bool("no-audio", false, "Disable sound effects")
	hold := flag.Duration("hold", terminal.DefaultHold, "Terminal frontend: how long a key press reads as held")
	writeConfig := flag.String("write-config", "", "Write the effective config (after --config and --roster) to this YAML file and exit")

	flag.Parse()

	logOut, closeLog, err := openLog(*logFile, *frontend)
	if err != nil {
		fmt.Fprintf(os.Stderr, "opening log file: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()
	slog.SetDefault(slog.New(slog.NewJSONHandler(logOut, nil)))

	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()
	if *rosterPath != "" {
		if err := cfg.LoadRoster(*rosterPath); err != nil {
			slog.Error("failed to load roster", "path", *rosterPath, "error", err)
			os.Exit(1)
		}
	}

	if *writeConfig != "" {
		if err := cfg.WriteYAML(*writeConfig); err != nil {
			slog.Error("failed to write config", "path", *writeConfig, "error", err)
			os.Exit(1)
		}
		slog.Info("config written", "path", *writeConfig)
		return
	}

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	headless := *frontend == "headless"
	opts := game.Options{
		Seed:        rngSeed,
		Autopilot:   headless,
		AutoAdvance: *autoAdvance,
		LogPerf:     *logPerf,
	}
	if headless && opts.AutoAdvance == 0 {
		opts.AutoAdvance = 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if *serve {
		go func() {
			if err := server.Serve(ctx, cfg.Server.Addr); err != nil {
				slog.Error("liveness server failed", "error", err)
			}
		}()
	}

	if err := run(ctx, cfg, opts, *frontend, *maxRounds, *hold, !*noAudio && !headless); err != nil {
		slog.Error("run failed", "frontend", *frontend, "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, opts game.Options, frontend string, maxRounds int, hold time.Duration, withAudio bool) error {
	g := game.NewGame(cfg, opts)

	if withAudio && cfg.Audio.Enabled {
		sm := audio.NewSoundManager(cfg.Audio.Volume)
		if err := sm.Initialize(); err != nil {
			slog.Warn("audio disabled", "error", err)
		} else {
			defer sm.Cleanup()
			g.AddSink(sm)
		}
	}

	if maxRounds > 0 {
		g.AddSink(game.SinkFunc(func(game.Frame) {
			if g.Stats().RoundsPlayed() >= maxRounds {
				slog.Info("max rounds reached", "rounds", g.Stats().RoundsPlayed())
				g.RequestQuit()
			}
		}))
	}

	switch frontend {
	case "headless":
		slog.Info("starting headless match", "seed", opts.Seed, "max_rounds_played", maxRounds)
		game.RunFixed(g, cfg.Derived.TickInterval, func() bool { return ctx.Err() != nil })
		slog.Info("headless run finished",
			"summary", g.Stats().Summary(),
			"wins", telemetry.Wins(g.Stats().History()),
		)
		return nil

	case "terminal":
		screen, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("creating terminal screen: %w", err)
		}
		if err := screen.Init(); err != nil {
			return fmt.Errorf("initializing terminal screen: %w", err)
		}
		f := terminal.New(screen, cfg, g, opts.Seed)
		f.SetHold(hold)
		defer f.Close()
		return f.Run(ctx)

	case "window":
		rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), "Noodles")
		defer rl.CloseWindow()
		rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

		w, err := renderer.NewWindow(cfg, g, opts.Seed)
		if err != nil {
			return err
		}
		return w.Run(ctx)

	default:
		return fmt.Errorf("unknown frontend %q", frontend)
	}
}

// openLog picks the log destination. The terminal frontend owns stdout, so
// without a log file its logs are dropped.
func openLog(path, frontend string) (io.Writer, func(), error) {
	if path == "" {
		if frontend == "terminal" {
			return io.Discard, func() {}, nil
		}
		return os.Stdout, func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { f.Close() }, nil
}
