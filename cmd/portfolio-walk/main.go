package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/portfolio-walk/audio"
	"github.com/lixenwraith/portfolio-walk/config"
	"github.com/lixenwraith/portfolio-walk/exhibit"
	"github.com/lixenwraith/portfolio-walk/game"
	"github.com/lixenwraith/portfolio-walk/network"
	"github.com/lixenwraith/portfolio-walk/render"
	"github.com/lixenwraith/portfolio-walk/status"
	"github.com/lixenwraith/portfolio-walk/terminal"
)

const (
	modeTerminal = "terminal"
	modeServe    = "serve"
)

var (
	configFlag = flag.String("config", "", "YAML config file")
	modeFlag   = flag.String("mode", modeTerminal, "Frontend: terminal, serve")
	deviceFlag = flag.String("device", "", "Force device mode: desktop, mobile")
	addrFlag   = flag.String("addr", "", "Listen address in serve mode")
	debugFlag  = flag.Bool("debug", false, "Debug logging to "+filepath.Join(logDir, logFileName))
)

func main() {
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "portfolio-walk: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return err
	}
	if *deviceFlag != "" {
		cfg.Viewport.Device = *deviceFlag
	}
	if *addrFlag != "" {
		cfg.Network.Address = *addrFlag
	}
	if *debugFlag {
		cfg.Log.Level = "debug"
		if cfg.Log.File == "" {
			cfg.Log.File = filepath.Join(logDir, logFileName)
		}
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, logFile, err := setupLogging(cfg.Log, *modeFlag == modeTerminal)
	if err != nil {
		return err
	}
	if logFile != nil {
		defer logFile.Close()
	}

	registry, err := loadRegistry(cfg.Exhibits)
	if err != nil {
		return err
	}
	log.Info().Int("exhibits", registry.Len()).Str("mode", *modeFlag).Msg("starting")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := cfg.GameOptions()
	opts.Logger = log

	switch *modeFlag {
	case modeTerminal:
		return runTerminal(ctx, cfg, registry, opts, log)
	case modeServe:
		return network.NewServer(cfg.NetworkConfig(), registry, opts, log).ListenAndServe(ctx)
	default:
		return fmt.Errorf("unknown mode %q", *modeFlag)
	}
}

func loadRegistry(path string) (*exhibit.Registry, error) {
	if path == "" {
		return exhibit.Default()
	}
	return exhibit.Load(path)
}

func runTerminal(ctx context.Context, cfg *config.Config, registry *exhibit.Registry, opts game.Options, log zerolog.Logger) error {
	// Audio failure is non-fatal
	chimes := audio.NewChimes(cfg.AudioConfig(), log)
	if err := chimes.Initialize(); err != nil {
		log.Warn().Err(err).Msg("audio disabled")
	}
	defer chimes.Cleanup()
	chimes.SetMuted(cfg.Audio.Muted)

	screen, err := terminal.Open()
	if err != nil {
		return err
	}
	defer screen.Fini()

	// Restore the terminal even if the frame loop panics
	defer func() {
		if r := recover(); r != nil {
			terminal.Restore(screen, r)
			os.Exit(1)
		}
	}()

	opts.Status = status.NewRegistry()
	g := game.New(registry, opts)
	defer g.Close()
	g.Observe(chimes.Observe())

	rcfg := render.DefaultConfig()
	rcfg.Bound = cfg.Simulation.Bound
	rcfg.Threshold = cfg.Simulation.ProximityThreshold
	rcfg.CellWidthPx = cfg.Terminal.CellWidthPx

	fe := terminal.NewFrontend(screen, g, render.NewRenderer(screen, registry, rcfg), cfg.TerminalConfig(), log)
	fe.SetMuter(chimes)

	err = fe.Run(ctx)
	log.Info().Interface("status", opts.Status.Snapshot()).Msg("session summary")
	return err
}
