package kafka

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"precisecalc/internal/domain"
	"precisecalc/internal/ports"

	"github.com/segmentio/kafka-go"
)

// messageReader - то, что консьюмеру нужно от kafka.Reader.
type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Consumer - обёртка над kafka.Reader, декодирует сообщения в domain.Operation и вызывает use case.
type Consumer struct {
	r   messageReader
	uc  ports.ICalculatorUseCase
	log *slog.Logger

	// пауза перед повторной обработкой, удваивается до maxBackoff
	backoff    time.Duration
	maxBackoff time.Duration
}

// NewConsumer создаёт консьюмера по конфигу, use case и логгеру. После использования вызови Close().
func NewConsumer(cfg *Config, uc ports.ICalculatorUseCase, log *slog.Logger) *Consumer {
	c := New(cfg).Consumer()
	c.uc = uc
	c.log = log
	return c
}

// Run в цикле читает сообщения, декодирует JSON в domain.Operation, вызывает uc.HandleOperationEvent и коммитит при успехе.
// Битые сообщения коммитятся и пропускаются. Сообщение с ошибкой обработки повторяется, пока не пройдёт:
// следующий коммит в группе закрыл бы и его offset. Выход по отмене ctx или при ошибке чтения.
func (c *Consumer) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		msg, err := c.r.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			c.log.Error("kafka consumer stopped", "error", err)
			return err
		}

		var op domain.Operation
		if err := json.Unmarshal(msg.Value, &op); err != nil {
			c.log.Warn("kafka unmarshal error, skip", "error", err, "topic", msg.Topic, "partition", msg.Partition, "offset", msg.Offset)
			_ = c.r.CommitMessages(ctx, msg)
			continue
		}

		if err := c.handle(ctx, msg, op); err != nil {
			return err
		}

		if err := c.r.CommitMessages(ctx, msg); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			c.log.Error("kafka consumer stopped (commit)", "error", err)
			return err
		}
	}
}

// handle вызывает use case до успеха или отмены ctx, между попытками ждёт с экспоненциальной паузой.
func (c *Consumer) handle(ctx context.Context, msg kafka.Message, op domain.Operation) error {
	delay := c.backoff
	for attempt := 1; ; attempt++ {
		err := c.uc.HandleOperationEvent(ctx, op)
		if err == nil {
			return nil
		}
		c.log.Warn("kafka handle error, retry", "error", err, "attempt", attempt, "delay", delay,
			"topic", msg.Topic, "partition", msg.Partition, "offset", msg.Offset)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
		if delay *= 2; delay > c.maxBackoff {
			delay = c.maxBackoff
		}
	}
}

// Close закрывает консьюмера.
func (c *Consumer) Close() error {
	return c.r.Close()
}
