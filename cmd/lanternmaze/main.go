package main

import (
	"log"

	"github.com/glimmergames/lanternmaze/internal/audio"
	"github.com/glimmergames/lanternmaze/internal/config"
	"github.com/glimmergames/lanternmaze/internal/game"
	ebitenrender "github.com/glimmergames/lanternmaze/internal/render/ebiten"
	"github.com/glimmergames/lanternmaze/internal/simulation"
)

func main() {
	cfg := config.Load()

	rules, err := simulation.LoadConfig(cfg.RulesPath)
	if err != nil {
		log.Fatalf("Failed to load simulation rules: %v", err)
	}

	// Initialize the renderer backend (ebiten)
	renderer := ebitenrender.NewRenderer()
	inputMgr := ebitenrender.NewInputManager()
	engine := ebitenrender.NewEngine()

	var sink audio.Sink = audio.NopSink{}
	if cfg.AudioEnabled {
		speakerSink, err := audio.NewSpeakerSink()
		if err != nil {
			log.Printf("Warning: audio unavailable, continuing silent: %v", err)
		} else {
			sink = speakerSink
		}
	}

	g := game.New(rules, renderer, inputMgr, sink, cfg.WindowWidth, cfg.WindowHeight)

	engine.SetWindowSize(cfg.WindowWidth, cfg.WindowHeight)
	engine.SetWindowTitle("Lanternmaze")
	engine.SetWindowResizable(false)

	log.Println("Starting game...")
	if err := engine.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
