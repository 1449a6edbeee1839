package ports

//go:generate mockgen -source=analytics.go -destination=../mocks/analytics_mock.go -package=mocks

import (
	"context"

	"precisecalc/internal/domain"
)

// IOperationAnalytics - хранилище аналитики операций (например, ClickHouse). Пишет консьюмер топика операций,
// поэтому счётчики отстают от Redis на время доставки события.
type IOperationAnalytics interface {
	WriteOperation(ctx context.Context, op domain.Operation) error
	// CountByOperation - сколько операций записано по каждому оператору.
	CountByOperation(ctx context.Context) (map[string]uint64, error)
}
