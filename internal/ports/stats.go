package ports

//go:generate mockgen -source=stats.go -destination=../mocks/stats_mock.go -package=mocks

import "context"

// IStats - счётчики выполненных операций по оператору (например, в Redis).
type IStats interface {
	Incr(ctx context.Context, operation string) error
	Counts(ctx context.Context) (map[string]int64, error)
}
