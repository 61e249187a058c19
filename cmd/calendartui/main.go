package main

import (
	"flag"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mkravets/eventcal/internal/client"
	"github.com/mkravets/eventcal/internal/controller"
	"github.com/mkravets/eventcal/internal/logger"
	"github.com/mkravets/eventcal/internal/tui"
	log "github.com/sirupsen/logrus"
)

var configFile string

func init() {
	flag.StringVar(&configFile, "config", "./configs/tui_config.yaml", "Path to configuration file")
	log.SetFormatter(&log.TextFormatter{})
	log.SetLevel(log.WarnLevel)
}

func main() {
	flag.Parse()

	config, err := NewConfig(configFile)
	if err != nil {
		log.Errorf("failed to start %v", err)
		return
	}
	err = logger.PrepareLogger(config.Logger)
	if err != nil {
		log.Errorf("failed to start %v", err)
		return
	}
	// The alternate screen owns stdout; keep log noise out of the UI.
	if f, err := tea.LogToFile(config.Client.LogFile, "calendartui"); err == nil {
		log.SetOutput(f)
		defer f.Close()
	}

	ctrl := controller.New(client.New(client.Config{
		URL:     config.Client.URL,
		Timeout: time.Duration(config.Client.TimeoutSeconds) * time.Second,
	}), time.Now())

	p := tea.NewProgram(tui.New(ctrl), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Errorf("failed to run ui: %v", err)
		os.Exit(1)
	}
}
