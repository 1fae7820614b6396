package main

import (
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/creeps/config"
	"github.com/plus3/creeps/ecs/debugui"
	debugui_ebiten "github.com/plus3/creeps/ecs/debugui/ebiten"
	"github.com/plus3/creeps/game"
	"github.com/plus3/creeps/session"
)

const frameDelta = 1.0 / 60.0

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file.")
	seed := flag.Uint64("seed", 0, "Spawn RNG seed; 0 keeps the config value.")
	debug := flag.Bool("debug", false, "Show the Dear ImGui debug windows.")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}

	logger, err := cfg.NewLogger(os.Stderr)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}

	width, height := int(cfg.Screen.Width), int(cfg.Screen.Height)

	var backend *debugui_ebiten.ImguiBackend
	if *debug {
		backend = debugui_ebiten.NewImguiBackend("Dodge the Creeps (debug)", width, height)
	} else {
		ebiten.SetWindowSize(width, height)
		ebiten.SetWindowTitle("Dodge the Creeps")
	}

	imguiSystem := &debugui.ImguiSystem{}
	input := &keyboard{}
	if *debug {
		input.capture = &imguiSystem.InputState
	}
	sink := newDrawSink()

	s, err := session.New(cfg, game.Registry{
		game.CollaboratorInput:        input,
		game.CollaboratorPresentation: sink,
	}, logger)
	if err != nil {
		log.Fatalf("Failed to start session: %v", err)
	}

	if *debug {
		s.Scheduler.Register(imguiSystem)
		addDebugWindows(imguiSystem, s)
	}

	g := &Game{
		session: s,
		sink:    sink,
		input:   input,
		backend: backend,
		width:   width,
		height:  height,
	}

	logger.Info("starting", "debug", *debug, "config", *configPath)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatalf("Game exited with error: %v", err)
	}
	logger.Info("stopped", "games", s.Game.Coordinator.State().Games)
}

// Game implements ebiten.Game around one session.
type Game struct {
	session *session.Session
	sink    *drawSink
	input   *keyboard
	backend *debugui_ebiten.ImguiBackend

	width, height int
}

func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if g.input.StartPressed() {
		g.session.PressStart()
	}

	if g.backend == nil {
		g.session.Step(frameDelta)
		return nil
	}

	// ImGui calls happen in deferred commands flushed by Step
	g.backend.Frame(func() {
		g.session.Step(frameDelta)
	})
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.sink.Draw(screen, g.session.Snapshot())

	if g.backend != nil {
		g.backend.Overlay(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.backend != nil {
		g.backend.Layout(g.width, g.height)
	}
	return g.width, g.height
}
