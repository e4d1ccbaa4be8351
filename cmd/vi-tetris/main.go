package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-tetris/audio"
	"github.com/lixenwraith/vi-tetris/config"
	"github.com/lixenwraith/vi-tetris/constants"
	"github.com/lixenwraith/vi-tetris/engine"
	"github.com/lixenwraith/vi-tetris/input"
	"github.com/lixenwraith/vi-tetris/render"
	"github.com/lixenwraith/vi-tetris/status"
	"github.com/lixenwraith/vi-tetris/store"
)

var (
	configFlag = flag.String("config", "", "Path to a TOML config file")
	debugFlag  = flag.Bool("debug", false, "Write logs/vi-tetris.log and show the metrics overlay")
	seedFlag   = flag.Uint64("seed", 0, "Piece generator seed, 0 for random")
	muteFlag   = flag.Bool("mute", false, "Start with sound muted")
	scoresFlag = flag.String("scores", "", "High score file path")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	applyFlags(cfg)

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	keys, err := cfg.KeyTable()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid key bindings: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	// Normal exit terminal cleanup
	defer screen.Fini()

	// Panic Recovery: restore the terminal before printing the crash
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mVI-TETRIS CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	reg := status.NewRegistry()

	opts := []engine.SessionOption{engine.WithStore(openStore(cfg))}
	if cfg.Game.Seed != 0 {
		opts = append(opts, engine.WithSeed(cfg.Game.Seed))
	}
	session := engine.NewSession(opts...)
	scheduler := engine.NewFrameScheduler()
	loop := engine.NewLoop(session, scheduler, engine.NewMonotonicTimeProvider(), reg)

	audioCfg := cfg.AudioConfig()
	if *muteFlag {
		audioCfg.Enabled = false
	}
	audioEngine := audio.NewAudioEngine(audioCfg, reg)
	if err := audioEngine.Start(); err != nil {
		log.Printf("audio start failed: %v", err)
	}
	defer audioEngine.Stop()
	session.Register(audio.NewFeedback(audioEngine))

	renderer := render.NewTerminalRenderer(screen, reg, cfg.Debug)
	mapper := input.NewMapper(loop, audioEngine)

	run(screen, keys, mapper, scheduler, loop, renderer, cfg.FrameInterval())
}

// applyFlags overrides config with explicitly set flags
func applyFlags(cfg *config.Config) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "debug":
			cfg.Debug = *debugFlag
		case "seed":
			cfg.Game.Seed = *seedFlag
		case "scores":
			cfg.Store.Path = *scoresFlag
		}
	})
}

// openStore picks the high score backend; an unusable path falls back to memory
func openStore(cfg *config.Config) engine.HighScoreStore {
	if cfg.Store.InMemory {
		return store.NewMemoryStore(0)
	}
	path := cfg.Store.Path
	if path == "" {
		p, err := store.DefaultPath()
		if err != nil {
			log.Printf("high score path unavailable, scores kept in memory: %v", err)
			return store.NewMemoryStore(0)
		}
		path = p
	}
	log.Printf("high scores at %s", path)
	return store.NewFileStore(path)
}

// run owns the session: key events and frame ticks are serialized here
func run(screen tcell.Screen, keys *input.KeyTable, mapper *input.Mapper, scheduler *engine.FrameScheduler,
	loop *engine.Loop, renderer *render.TerminalRenderer, frameInterval time.Duration) {

	frameTicker := time.NewTicker(frameInterval)
	defer frameTicker.Stop()

	eventChan := make(chan tcell.Event, constants.EventChannelSize)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				screen.Fini()
				fmt.Fprintf(os.Stderr, "\r\nEVENT POLLER CRASHED: %v\r\n%s\r\n", r, debug.Stack())
				os.Exit(1)
			}
		}()
		for {
			ev := screen.PollEvent()
			// nil after Fini
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	renderer.Draw(loop.Snapshot())

	for {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if !mapper.Apply(keys.Resolve(ev)) {
					return
				}
				renderer.Draw(loop.Snapshot())
			case *tcell.EventResize:
				screen.Sync()
				renderer.Draw(loop.Snapshot())
			}

		case <-frameTicker.C:
			scheduler.Pump()
			renderer.Draw(loop.Snapshot())
		}
	}
}
