package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Domenick1991/airport-ops/config"
	"github.com/Domenick1991/airport-ops/internal/bootstrap"
	"github.com/Domenick1991/airport-ops/internal/email"
	"github.com/Domenick1991/airport-ops/internal/kafka"
	"github.com/Domenick1991/airport-ops/internal/service/passengers"
	kafkaGo "github.com/segmentio/kafka-go"
)

// The worker emails every passenger of a flight whose status changed.
func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}
	if err := cfg.RequireSharedStorage(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}
	if !cfg.Kafka.Enabled() {
		log.Fatalf("kafka.brokers is empty; nothing to consume")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	storage, closeStorage, err := bootstrap.OpenStorage(ctx, cfg)
	if err != nil {
		log.Fatalf("open storage: %v", err)
	}
	defer closeStorage()

	passengerService := passengers.NewPassengerService(storage.Passengers, nil)
	emailSender := email.NewSender(cfg.Email.From)

	consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.NotificationsTopic)
	defer consumer.Close()

	log.Printf("worker consuming %s", cfg.Kafka.NotificationsTopic)
	err = consumer.Consume(ctx, func(ctx context.Context, msg kafkaGo.Message) error {
		event, err := kafka.DecodeFlightStatusChanged(msg)
		if err != nil {
			log.Printf("decode event error: %v", err)
			return nil
		}
		list, err := passengerService.OnFlight(ctx, event.FlightID)
		if err != nil {
			return err
		}
		for _, p := range list {
			if err := emailSender.SendFlightStatus(ctx, event, p); err != nil {
				log.Printf("notify passenger %d: %v", p.ID, err)
			}
		}
		log.Printf("flight %s %s -> %s: notified %d passengers", event.FlightNumber, event.OldStatus, event.NewStatus, len(list))
		return nil
	})
	if err != nil {
		log.Printf("consumer stopped: %v", err)
	}
}
