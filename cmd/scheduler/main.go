package main

import (
	"context"
	"encoding/json"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mkravets/eventcal/internal/logger"
	"github.com/mkravets/eventcal/internal/rabbit"
	"github.com/mkravets/eventcal/internal/storage"
	"github.com/mkravets/eventcal/internal/storagebuilder"
	log "github.com/sirupsen/logrus"
)

var configFile string

const (
	checkTimeout = time.Minute
	pruneTimeout = time.Minute * 5
	// retention keeps a year of past events before pruning.
	retention = time.Hour * 24 * 365
)

func newReminder(e storage.Event) rabbit.Reminder {
	return rabbit.Reminder{
		ID:        e.ID,
		Title:     e.Title,
		Date:      e.Date,
		StartTime: e.StartTime,
		Location:  e.Location,
	}
}

func init() {
	flag.StringVar(&configFile, "config", "./configs/scheduler_config.yaml", "Path to configuration file")
	log.SetFormatter(&log.TextFormatter{})
	log.SetOutput(os.Stdout)
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

	r := rabbit.New(config.Rabbit)
	if err := r.Connect(); err != nil {
		log.Errorf("failed to connect to rabbit: %v", err)
		return
	}
	defer r.Close()

	stor, err := storagebuilder.New(config.Storage)
	if err != nil {
		log.Errorf("failed to start %v", err)
		return
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second*3)
		defer cancel()
		stor.Close(ctx)
	}()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	defer cancel()

	lookahead := time.Duration(config.Scheduler.LookaheadMinutes) * time.Minute
	checkTicker := time.NewTicker(checkTimeout)
	pruneTicker := time.NewTicker(pruneTimeout)
	for {
		publishDue(ctx, stor, r, lookahead)

		select {
		case <-ctx.Done():
			return
		case <-checkTicker.C:
		case <-pruneTicker.C:
			horizon := time.Now().Add(-retention).Format(storage.DateLayout)
			if err := stor.RemoveOlderThan(ctx, horizon); err != nil {
				log.Errorf("failed to prune old events: %v", err)
			}
		}
	}
}

// publishDue sends a reminder for every event on today's date starting
// within the lookahead window.
func publishDue(ctx context.Context, stor storage.Storage, r *rabbit.Provider, lookahead time.Duration) {
	now := time.Now()
	from := now.Format(storage.ClockLayout)
	to := now.Add(lookahead).Format(storage.ClockLayout)
	today := now.Format(storage.DateLayout)

	log.Debugf("check reminders: %s %s - %s", today, from, to)
	events, err := stor.GetEventsForDate(ctx, today)
	if err != nil {
		log.Errorf("failed to get events: %s", err)
		return
	}
	for _, event := range events {
		if event.StartTime < from || event.StartTime > to {
			continue
		}
		log.Debugf("send reminder: %v", event)
		data, _ := json.Marshal(newReminder(event))
		if err := r.Publish(data); err != nil {
			log.Errorf("failed to publish reminder: %v", err)
		}
	}
}
