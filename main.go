package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"chartgrip/internal/bridge"
	"chartgrip/internal/config"
	"chartgrip/internal/data"
	"chartgrip/internal/domain"
	"chartgrip/internal/eventbus"
	"chartgrip/internal/filters"
	"chartgrip/internal/interactivity"
	"chartgrip/internal/ui"
)

func main() {
	// Parse command line arguments
	var datasetPath string
	var configPath string
	flag.StringVar(&datasetPath, "data", "", "Dataset file to load (TOML)")
	flag.StringVar(&datasetPath, "d", "", "Dataset file to load (shorthand)")
	flag.StringVar(&configPath, "config", "", "Config file path")
	flag.Parse()

	// Set up logging
	logFile, err := os.OpenFile("chartgrip.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	// Create event bus
	bus := eventbus.New()

	// Load configuration
	configSvc := config.NewConfigServiceWithBus(bus)
	var cfg *config.Config
	if configPath != "" {
		cfg, err = configSvc.LoadFromPath(configPath)
	} else {
		cfg, err = configSvc.Load()
	}
	if err != nil {
		log.Printf("Error loading config: %v", err)
		cfg = config.DefaultConfig()
	}
	if datasetPath != "" {
		cfg.DatasetPath = datasetPath
	}

	// Journal records selection lifecycle events for the pager
	journal := ui.NewJournal(bus)

	// Load dataset, falling back to the built-in sample
	dataset := loadDataset(cfg, bus)

	// Wire the engine's collaborators: the filter manager resolves saved
	// views back into identities, the host store stands in for the
	// rendering host's persistent selection set
	viewsDir := cfg.ViewsDir
	if !filepath.IsAbs(viewsDir) && viewsDir != "" {
		if configDir, err := os.UserConfigDir(); err == nil {
			viewsDir = filepath.Join(configDir, "chartgrip", viewsDir)
		}
	}
	filterMgr := filters.NewManager(viewsDir)
	host := bridge.NewHostStore(filterMgr)

	engine := interactivity.NewService(host, filterMgr, bus)

	// Create UI model and program
	journalOps := ui.NewJournalOps()
	uiModel := ui.NewModel(cfg, dataset, engine, host, filterMgr, bus, journal, journalOps)

	p := tea.NewProgram(uiModel, tea.WithAltScreen())
	journalOps.SetProgram(p)

	if _, err := p.Run(); err != nil {
		log.Printf("Error running program: %v", err)
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
	log.Printf("UI exited normally")
}

// loadDataset reads the configured dataset file, or returns the sample
// dataset when none is configured or loading fails
func loadDataset(cfg *config.Config, bus eventbus.EventBus) *domain.Dataset {
	if cfg.DatasetPath == "" {
		return data.Sample()
	}

	dataset, err := data.Load(cfg.DatasetPath, bus)
	if err != nil {
		log.Printf("Failed to load dataset %s: %v, using sample", cfg.DatasetPath, err)
		bus.Publish(eventbus.ErrorEvent{Message: "failed to load dataset", Err: err})
		return data.Sample()
	}
	return dataset
}
