package pg

import (
	"context"
	"log/slog"

	"precisecalc/internal/domain"
	"precisecalc/internal/ports"
)

var _ ports.IOperationJournal = (*OperationRepo)(nil)

// DefaultJournalLimit - сколько записей журнала отдавать, если limit не задан.
const DefaultJournalLimit = 100

// OperationRepo реализует ports.IOperationJournal для PostgreSQL.
type OperationRepo struct {
	db  *DB
	log *slog.Logger
}

// NewOperationRepo возвращает репозиторий операций.
func NewOperationRepo(db *DB, log *slog.Logger) *OperationRepo {
	return &OperationRepo{db: db, log: log}
}

// SaveOperation сохраняет операцию в журнал. Числа пишутся в NUMERIC текстом FormatOperand: точность и масштаб ("2.50") сохраняются.
func (r *OperationRepo) SaveOperation(ctx context.Context, op domain.Operation) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO operations (session_id, number1, number2, operation, description, result, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		op.SessionID, domain.FormatOperand(op.Number1), domain.FormatOperand(op.Number2), string(op.Operation),
		op.Description, domain.FormatOperand(op.Result), op.Timestamp)
	if err != nil {
		r.log.Debug("SaveOperation failed", "error", err)
		return err
	}
	return nil
}

// GetJournal возвращает последние limit операций (последние сначала).
func (r *OperationRepo) GetJournal(ctx context.Context, limit int) ([]domain.Operation, error) {
	if limit <= 0 {
		limit = DefaultJournalLimit
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, session_id, number1, number2, operation, description, result, created_at
		 FROM operations ORDER BY created_at DESC, id DESC LIMIT $1`, limit)
	if err != nil {
		r.log.Debug("GetJournal failed", "error", err)
		return nil, err
	}
	defer rows.Close()
	var list []domain.Operation
	for rows.Next() {
		var op domain.Operation
		var operation string
		err := rows.Scan(&op.ID, &op.SessionID, &op.Number1, &op.Number2, &operation, &op.Description, &op.Result, &op.Timestamp)
		if err != nil {
			return nil, err
		}
		op.Operation = domain.Operator(operation)
		list = append(list, op)
	}
	return list, rows.Err()
}

// Ping проверяет доступность БД (readiness).
func (r *OperationRepo) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}
