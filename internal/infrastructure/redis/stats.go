package redis

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"precisecalc/internal/ports"
)

var _ ports.IStats = (*Stats)(nil)

// Stats реализует ports.IStats через Redis: один хэш, поле - оператор, значение - счётчик.
type Stats struct {
	cli *Client
	key string
	log *slog.Logger
}

// NewStats возвращает счётчики операций в хэше key.
func NewStats(cli *Client, key string, log *slog.Logger) *Stats {
	if key == "" {
		key = "precisecalc:stats"
	}
	return &Stats{cli: cli, key: key, log: log}
}

// Incr увеличивает счётчик оператора на единицу.
func (s *Stats) Incr(ctx context.Context, operation string) error {
	if err := s.cli.HIncrBy(ctx, s.key, operation, 1).Err(); err != nil {
		s.log.Debug("stats incr failed", "key", s.key, "operation", operation, "error", err)
		return err
	}
	return nil
}

// Counts возвращает все счётчики. Пустой хэш - пустая карта.
func (s *Stats) Counts(ctx context.Context) (map[string]int64, error) {
	raw, err := s.cli.HGetAll(ctx, s.key).Result()
	if err != nil {
		s.log.Debug("stats get failed", "key", s.key, "error", err)
		return nil, err
	}
	counts := make(map[string]int64, len(raw))
	for op, v := range raw {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("stats parse %q: %w", op, err)
		}
		counts[op] = n
	}
	return counts, nil
}
