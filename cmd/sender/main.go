package main

import (
	"context"
	"encoding/json"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/mkravets/eventcal/internal/logger"
	"github.com/mkravets/eventcal/internal/rabbit"
	log "github.com/sirupsen/logrus"
	"github.com/streadway/amqp"
)

var configFile string

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

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	defer cancel()

	err = r.Consume(ctx, func(msg amqp.Delivery) {
		reminder := rabbit.Reminder{}
		if err := json.Unmarshal(msg.Body, &reminder); err != nil {
			log.Errorf("failed to parse bytes: %s", err)
			cancel()
			return
		}
		log.Printf("upcoming event %q at %s %s", reminder.Title, reminder.Date, reminder.StartTime)
	})
	if err != nil {
		log.Errorf("failed to consume: %v", err)
	}
}
