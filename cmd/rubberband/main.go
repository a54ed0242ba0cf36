package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"rubberband"
	"rubberband/internal/config"
	"rubberband/internal/eventbus"
	"rubberband/internal/ui"
)

func main() {
	// Parse command line arguments
	var configPath string
	var itemCount int
	flag.StringVar(&configPath, "config", "", "Path to a config file (defaults to the user config dir)")
	flag.IntVar(&itemCount, "items", 200, "Number of demo items to generate")
	flag.Parse()

	// Set up logging
	logFile, err := os.OpenFile("rubberband.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	// Create event bus
	bus := eventbus.New()

	// Load configuration with event bus support
	configSvc := config.NewServiceWithBus(bus)
	opts := loadConfig(configSvc, configPath)

	// The library default threshold assumes pixel-sized units; one
	// terminal cell is far coarser, so lower it for the demo.
	opts.MinDragDistance = 2

	// Create controller and demo list
	ctrl := rubberband.New(opts, bus)
	defer ctrl.Close()

	items := make([]string, itemCount)
	for i := range items {
		items[i] = fmt.Sprintf("item-%03d", i+1)
	}

	zones := zone.New()
	defer zones.Close()

	model := ui.NewModel(ctrl, items, zones)

	// Create Bubble Tea program with full mouse tracking so motion
	// events reach the drag state machine
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion())

	// Repaint on domain events that arrive outside the UI loop
	for _, et := range []eventbus.EventType{
		eventbus.EventSelectionChanged,
		eventbus.EventDragStarted,
		eventbus.EventDragEnded,
		eventbus.EventAutoScrolled,
	} {
		bus.Subscribe(et, func(e eventbus.DomainEvent) {
			p.Send(ui.RefreshMsg{})
		})
	}

	log.Printf("Starting UI with %d items...", itemCount)
	if _, err := p.Run(); err != nil {
		log.Printf("Error running program: %v", err)
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
	log.Printf("UI exited normally")
}

// loadConfig loads options from the given path, or from the default
// location when none is given. Load errors fall back to defaults so a
// broken config never blocks the demo.
func loadConfig(configSvc config.Service, path string) config.Options {
	var opts config.Options
	var err error
	if path != "" {
		opts, err = configSvc.LoadFromPath(path)
	} else {
		opts, err = configSvc.Load()
	}
	if err != nil {
		log.Printf("Failed to load config: %v", err)
		return config.DefaultOptions()
	}
	return opts
}
