// Package eventlog streams room events to Kafka, one message per event keyed by room code.
package eventlog

import (
	"context"
	"encoding/json"
	"fmt"
	"guessword/internal/events"
	"log"

	"github.com/segmentio/kafka-go"
)

type Writer struct {
	w *kafka.Writer
}

func NewWriter(brokers []string, topic string) *Writer {
	return &Writer{
		w: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Topic:                  topic,
			Balancer:               &kafka.Hash{},
			RequiredAcks:           kafka.RequireAll,
			Async:                  true,
			BatchSize:              1,
			AllowAutoTopicCreation: true,
			ErrorLogger: kafka.LoggerFunc(func(msg string, args ...interface{}) {
				log.Printf("[Kafka] "+msg+"\n", args...)
			}),
		},
	}
}

// Message encodes ev with the room code as key so a room's events stay on one partition.
func Message(ev events.Event) (kafka.Message, error) {
	value, err := json.Marshal(ev)
	if err != nil {
		return kafka.Message{}, fmt.Errorf("encoding event: %w", err)
	}
	return kafka.Message{
		Key:   []byte(ev.RoomID),
		Value: value,
		Time:  ev.At,
		Headers: []kafka.Header{
			{Key: "type", Value: []byte(ev.Type)},
		},
	}, nil
}

func (w *Writer) Write(ctx context.Context, ev events.Event) error {
	msg, err := Message(ev)
	if err != nil {
		return err
	}
	if err := w.w.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("writing event to kafka: %w", err)
	}
	return nil
}

func (w *Writer) Close() error {
	return w.w.Close()
}
