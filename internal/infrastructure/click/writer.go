package click

import (
	"context"
	"fmt"

	"precisecalc/internal/domain"
	"precisecalc/internal/ports"
)

var _ ports.IOperationAnalytics = (*OperationWriter)(nil)

const operationsAnalyticsTable = "operations_analytics"

// OperationWriter пишет операции в ClickHouse для аналитики (GROUP BY operation, по времени и т.д.).
// Точные значения хранятся строками, result_approx - приближение для агрегатов.
type OperationWriter struct {
	db *Client
}

// NewOperationWriter создаёт писатель операций для аналитики.
func NewOperationWriter(db *Client) *OperationWriter {
	return &OperationWriter{db: db}
}

// EnsureTable создаёт таблицу, если её ещё нет. Вызывается один раз при старте приложения.
func (w *OperationWriter) EnsureTable(ctx context.Context) error {
	query := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			session_id String,
			number1 String,
			number2 String,
			operation LowCardinality(String),
			description String,
			result String,
			result_approx Float64,
			created_at DateTime64(3)
		) ENGINE = MergeTree()
		ORDER BY (created_at, operation)
		PARTITION BY toYYYYMM(created_at)`,
		operationsAnalyticsTable,
	)
	if _, err := w.db.DB().ExecContext(ctx, query); err != nil {
		return fmt.Errorf("create %s: %w", operationsAnalyticsTable, err)
	}
	return nil
}

// WriteOperation пишет одну операцию.
func (w *OperationWriter) WriteOperation(ctx context.Context, op domain.Operation) error {
	query := fmt.Sprintf(
		"INSERT INTO %s (session_id, number1, number2, operation, description, result, result_approx, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
		operationsAnalyticsTable,
	)
	_, err := w.db.DB().ExecContext(ctx, query,
		op.SessionID,
		domain.FormatOperand(op.Number1),
		domain.FormatOperand(op.Number2),
		string(op.Operation),
		op.Description,
		domain.FormatOperand(op.Result),
		op.Result.InexactFloat64(),
		op.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("insert operation: %w", err)
	}
	return nil
}

// CountByOperation - число записанных операций по оператору.
func (w *OperationWriter) CountByOperation(ctx context.Context) (map[string]uint64, error) {
	query := fmt.Sprintf("SELECT operation, count() FROM %s GROUP BY operation", operationsAnalyticsTable)
	rows, err := w.db.DB().QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("count operations: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]uint64)
	for rows.Next() {
		var (
			op string
			n  uint64
		)
		if err := rows.Scan(&op, &n); err != nil {
			return nil, fmt.Errorf("scan count: %w", err)
		}
		counts[op] = n
	}
	return counts, rows.Err()
}
