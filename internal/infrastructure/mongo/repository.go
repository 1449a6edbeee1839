package mongo

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"precisecalc/internal/domain"
	"precisecalc/internal/ports"
)

var _ ports.IOperationJournal = (*OperationRepo)(nil)

const defaultJournalLimit = 100

// operationDoc - документ в коллекции operations. Числа храним строками: Decimal128 ограничен 34 цифрами,
// а произведение может быть длиннее. ID в домене - int для совместимости с PG, при чтении оставляем 0.
type operationDoc struct {
	SessionID   string    `bson:"session_id"`
	Number1     string    `bson:"number1"`
	Number2     string    `bson:"number2"`
	Operation   string    `bson:"operation"`
	Description string    `bson:"description"`
	Result      string    `bson:"result"`
	CreatedAt   time.Time `bson:"created_at"`
}

func toDoc(op domain.Operation) operationDoc {
	return operationDoc{
		SessionID:   op.SessionID,
		Number1:     domain.FormatOperand(op.Number1),
		Number2:     domain.FormatOperand(op.Number2),
		Operation:   string(op.Operation),
		Description: op.Description,
		Result:      domain.FormatOperand(op.Result),
		CreatedAt:   op.Timestamp,
	}
}

func (d operationDoc) toOperation() (domain.Operation, error) {
	n1, err := decimal.NewFromString(d.Number1)
	if err != nil {
		return domain.Operation{}, fmt.Errorf("number1: %w", err)
	}
	n2, err := decimal.NewFromString(d.Number2)
	if err != nil {
		return domain.Operation{}, fmt.Errorf("number2: %w", err)
	}
	result, err := decimal.NewFromString(d.Result)
	if err != nil {
		return domain.Operation{}, fmt.Errorf("result: %w", err)
	}
	return domain.Operation{
		SessionID:   d.SessionID,
		Number1:     n1,
		Number2:     n2,
		Operation:   domain.Operator(d.Operation),
		Description: d.Description,
		Result:      result,
		Timestamp:   d.CreatedAt,
	}, nil
}

// OperationRepo реализует ports.IOperationJournal для MongoDB.
type OperationRepo struct {
	client *Client
	log    *slog.Logger
}

// NewOperationRepo возвращает репозиторий операций.
func NewOperationRepo(client *Client, log *slog.Logger) *OperationRepo {
	return &OperationRepo{client: client, log: log}
}

// SaveOperation сохраняет операцию в коллекцию.
func (r *OperationRepo) SaveOperation(ctx context.Context, op domain.Operation) error {
	_, err := r.client.Coll().InsertOne(ctx, toDoc(op))
	if err != nil {
		r.log.Debug("SaveOperation failed", "error", err)
		return err
	}
	return nil
}

// GetJournal возвращает последние limit операций (последние сначала).
func (r *OperationRepo) GetJournal(ctx context.Context, limit int) ([]domain.Operation, error) {
	if limit <= 0 {
		limit = defaultJournalLimit
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit))
	cursor, err := r.client.Coll().Find(ctx, bson.M{}, opts)
	if err != nil {
		r.log.Debug("GetJournal failed", "error", err)
		return nil, err
	}
	defer cursor.Close(ctx)
	var docs []operationDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	list := make([]domain.Operation, 0, len(docs))
	for _, d := range docs {
		op, err := d.toOperation()
		if err != nil {
			return nil, fmt.Errorf("decode operation: %w", err)
		}
		list = append(list, op)
	}
	return list, nil
}

// Ping проверяет доступность БД.
func (r *OperationRepo) Ping(ctx context.Context) error {
	return r.client.Ping(ctx, nil)
}
