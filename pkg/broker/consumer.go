package broker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/segmentio/kafka-go"
)

type Handler func(context.Context, kafka.Message) error

type Consumer struct {
	l             *slog.Logger
	r             *kafka.Reader
	wg            *sync.WaitGroup
	topicHandlers map[string]Handler
}

func NewConsumer(
	brokers []string,
	groupID string,
	topics ...string,
) *Consumer {
	l := slog.Default().WithGroup("kafka").With("group_id", groupID)

	r := kafka.NewReader(kafka.ReaderConfig{
		Brokers:     brokers,
		GroupID:     groupID,
		GroupTopics: topics,
		Logger:      &infoLogger{l: l},
		ErrorLogger: &errorLogger{l: l},
	})

	return newConsumer(l, r)
}

func newConsumer(l *slog.Logger, r *kafka.Reader) *Consumer {
	return &Consumer{
		l:             l,
		r:             r,
		wg:            &sync.WaitGroup{},
		topicHandlers: make(map[string]Handler),
	}
}

func (c *Consumer) Handle(topic string, handler Handler) *Consumer {
	c.topicHandlers[topic] = handler
	return c
}

func (c *Consumer) Consume(ctx context.Context) *Consumer {
	c.wg.Add(1)

	go func() {
		defer c.wg.Done()

		for {
			select {
			case <-ctx.Done():
				c.l.Info("context done")
				return
			default:
			}

			m, err := c.r.ReadMessage(ctx)
			if err != nil {
				if errors.Is(err, io.EOF) || ctx.Err() != nil {
					return
				}

				c.l.Error(fmt.Sprintf("read kafka message: %s", err))

				continue
			}

			c.dispatch(ctx, m)
		}
	}()

	return c
}

func (c *Consumer) dispatch(ctx context.Context, m kafka.Message) {
	handler, ok := c.topicHandlers[m.Topic]
	if !ok {
		c.l.Warn("kafka handler not found", "topic", m.Topic)
		return
	}

	err := handler(ctx, m)
	if err != nil {
		c.l.Error(fmt.Sprintf("handler kafka msg: %s", err), "topic", m.Topic)
	}
}

func (c *Consumer) Close() {
	err := c.r.Close()
	if err != nil {
		c.l.Error(fmt.Sprintf("close kafka reader: %s", err))
	}

	c.wg.Wait()
}

// SettlementRequestedEvent asks for a settlement run. The body may be empty.
type SettlementRequestedEvent struct {
	RequestID string `json:"request_id"`
}

func DecodeSettlementRequested(m kafka.Message) (SettlementRequestedEvent, error) {
	var event SettlementRequestedEvent

	if len(m.Value) == 0 {
		return event, nil
	}

	err := json.Unmarshal(m.Value, &event)
	if err != nil {
		return SettlementRequestedEvent{}, fmt.Errorf("unmarshal settlement requested event: %w", err)
	}

	return event, nil
}

type infoLogger struct {
	l *slog.Logger
}

func (l *infoLogger) Printf(format string, v ...any) {
	l.l.Info(fmt.Sprintf(format, v...))
}

type errorLogger struct {
	l *slog.Logger
}

func (l *errorLogger) Printf(format string, v ...any) {
	l.l.Error(fmt.Sprintf(format, v...))
}
