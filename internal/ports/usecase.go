package ports

//go:generate mockgen -source=usecase.go -destination=../mocks/usecase_mock.go -package=mocks

import (
	"context"

	"github.com/shopspring/decimal"

	"precisecalc/internal/domain"
)

// ICalculatorUseCase - контракт бизнес-логики калькулятора: сессии, расчёт, истории, обработка событий из Kafka.
// Пустой sessionID означает экземпляр калькулятора по умолчанию.
type ICalculatorUseCase interface {
	CreateSession(ctx context.Context) (string, error)
	CloseSession(ctx context.Context, sessionID string) error
	Calculate(ctx context.Context, sessionID string, number1, number2 decimal.Decimal, operation domain.Operator) (*domain.Operation, error)

	LastShared(ctx context.Context) (domain.Entry, error)
	ResetShared(ctx context.Context) error
	SharedHistory(ctx context.Context) ([]domain.Entry, error)

	LastInstance(ctx context.Context, sessionID string) (domain.Entry, error)
	ResetInstance(ctx context.Context, sessionID string) error
	InstanceHistory(ctx context.Context, sessionID string) ([]domain.Entry, error)

	Journal(ctx context.Context, limit int) ([]domain.Operation, error)
	Stats(ctx context.Context) (map[string]int64, error)
	AnalyticsCounts(ctx context.Context) (map[string]uint64, error)
	HandleOperationEvent(ctx context.Context, op domain.Operation) error
}
