package worker

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/rsat/josephjoseph-chile/internal/config"
	"github.com/rsat/josephjoseph-chile/internal/events"
	"github.com/rsat/josephjoseph-chile/internal/journal"
	"github.com/rsat/josephjoseph-chile/internal/logger"
)

// Worker consumes catalog sync events and records them in the run
// journal, giving shared environments an audit trail of what the import
// scripts changed.
type Worker struct {
	config  *config.Config
	logger  *logger.Logger
	reader  *kafka.Reader
	journal *journal.Journal // optional
}

func New(cfg *config.Config, logger *logger.Logger, j *journal.Journal) *Worker {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        []string{cfg.KafkaBrokers},
		GroupID:        "catalog-worker",
		Topic:          events.Topic,
		MinBytes:       10e3, // 10KB
		MaxBytes:       10e6, // 10MB
		CommitInterval: time.Second,
	})

	return &Worker{
		config:  cfg,
		logger:  logger,
		reader:  reader,
		journal: j,
	}
}

func (w *Worker) Start() {
	w.logger.Info("Worker started, listening for catalog events...")

	for {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		message, err := w.reader.ReadMessage(ctx)
		cancel()

		if err != nil {
			if errors.Is(err, io.ErrClosedPipe) {
				return
			}
			if !errors.Is(err, context.DeadlineExceeded) {
				w.logger.Error("Failed to read message: %v", err)
			}
			continue
		}

		var event events.Event
		if err := json.Unmarshal(message.Value, &event); err != nil {
			w.logger.Error("Failed to parse event: %v", err)
			continue
		}

		w.logger.Info("%s %s (%s)", event.Type, event.Name, event.ProductID)

		if w.journal != nil {
			if err := w.journal.RecordEvent(event.Type, event.ProductID, event.Name, event.Timestamp); err != nil {
				w.logger.Error("Failed to record event: %v", err)
			}
		}
	}
}

func (w *Worker) Stop() {
	w.logger.Info("Stopping worker...")
	w.reader.Close()
}
