package ports

//go:generate mockgen -source=journal.go -destination=../mocks/journal_mock.go -package=mocks

import (
	"context"

	"precisecalc/internal/domain"
)

// IOperationJournal - журнал выполненных операций (аудит). Только запись и просмотр, в историю калькулятора не загружается.
type IOperationJournal interface {
	SaveOperation(ctx context.Context, op domain.Operation) error
	GetJournal(ctx context.Context, limit int) ([]domain.Operation, error)
	Ping(ctx context.Context) error
}
