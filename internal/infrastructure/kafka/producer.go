package kafka

import (
	"context"
	"fmt"

	"github.com/segmentio/kafka-go"

	"precisecalc/internal/ports"
)

var _ ports.IProducer = (*Producer)(nil)

// Producer - обёртка над kafka.Writer для отправки сообщений в топик.
type Producer struct {
	w *kafka.Writer
}

// NewProducer создаёт продюсера по конфигу. После использования вызови Close().
func NewProducer(cfg *Config) *Producer {
	return New(cfg).Producer()
}

// Send отправляет одно событие операции: key - id сессии (пустой для экземпляра по умолчанию), value - JSON.
func (p *Producer) Send(ctx context.Context, key, value []byte) error {
	if err := p.w.WriteMessages(ctx, kafka.Message{Key: key, Value: value}); err != nil {
		return fmt.Errorf("kafka send to %s: %w", p.w.Topic, err)
	}
	return nil
}

// Close закрывает продюсера.
func (p *Producer) Close() error {
	return p.w.Close()
}
