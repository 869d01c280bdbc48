package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/otterpet/audio"
	"github.com/lixenwraith/otterpet/config"
	"github.com/lixenwraith/otterpet/constants"
	"github.com/lixenwraith/otterpet/engine"
	"github.com/lixenwraith/otterpet/systems"
)

var (
	configFlag = flag.String("config", "", "path to TOML config (default $"+config.EnvPath+")")
	debugFlag  = flag.Bool("debug", false, "enable debug logging to logs/")
	seedFlag   = flag.Int64("seed", 0, "simulation seed, 0 uses the config or the clock")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(config.ResolvePath(*configFlag))
	if err != nil {
		fmt.Fprintf(os.Stderr, "otterpet: %v\n", err)
		os.Exit(1)
	}
	if *debugFlag {
		cfg.Logging.Debug = true
	}
	if *seedFlag != 0 {
		cfg.Sim.Seed = *seedFlag
	}

	log, err := setupLogging(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "otterpet: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	for _, key := range cfg.Undecoded {
		log.Warn("unknown config key", zap.String("key", key))
	}

	if err := run(cfg, log); err != nil {
		fmt.Fprintf(os.Stderr, "otterpet: %v\n", err)
		os.Exit(1)
	}
}

// run owns the terminal for the session
func run(cfg *config.Config, log *zap.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	// Restore the terminal before reporting a crash
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mOTTERPET CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	if cfg.Display.Mouse {
		screen.EnableMouse(tcell.MouseButtonEvents | tcell.MouseDragEvents)
	}
	screen.HideCursor()

	var player systems.CuePlayer
	sounds := audio.NewSoundManager(&audio.AudioConfig{
		Enabled:      cfg.Audio.Enabled,
		MasterVolume: cfg.Audio.MasterVolume,
		SampleRate:   cfg.Audio.SampleRate,
		MoodVolumes:  audio.DefaultAudioConfig().MoodVolumes,
	})
	if err := sounds.Initialize(); err != nil {
		log.Warn("audio unavailable, continuing without sound", zap.Error(err))
	} else if sounds.Initialized() {
		player = sounds
		defer sounds.Cleanup()
	}

	a := newApp(screen, cfg, engine.NewRand(cfg.Sim.Seed), player, log)
	log.Info("session started",
		zap.Int64("seed", cfg.Sim.Seed),
		zap.Duration("frame_interval", cfg.Sim.FrameInterval),
		zap.Bool("audio", player != nil),
	)

	eventChan := make(chan tcell.Event, constants.EventQueueSize)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				screen.Fini()
				fmt.Fprintf(os.Stderr, "\r\n\x1b[31mEVENT POLLER CRASHED: %v\x1b[0m\r\n", r)
				fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
				os.Exit(1)
			}
		}()

		for {
			ev := screen.PollEvent()
			// nil after Fini
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	ticker := time.NewTicker(cfg.Sim.FrameInterval)
	defer ticker.Stop()

	var pending []tcell.Event
	for range ticker.C {
		pending = pending[:0]
	drain:
		for {
			select {
			case ev, ok := <-eventChan:
				if !ok {
					return nil
				}
				pending = append(pending, ev)
			default:
				break drain
			}
		}

		if !a.frame(pending) {
			log.Info("session ended", zap.Int64("frames", a.game.World.FrameNumber()))
			return nil
		}
	}
	return nil
}
