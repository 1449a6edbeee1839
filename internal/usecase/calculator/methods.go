package calculator

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"precisecalc/internal/domain"
)

// CreateSession создаёт новый экземпляр калькулятора на общей истории и возвращает его id.
func (u *UseCase) CreateSession(_ context.Context) (string, error) {
	id := uuid.NewString()
	s := &session{calc: u.def.calc.CreateInstance()}

	u.mu.Lock()
	u.sessions[id] = s
	u.mu.Unlock()

	sessionsActive.Inc()
	u.log.Info("session created", "session", id)
	return id, nil
}

// CloseSession удаляет экземпляр вместе с его историей.
func (u *UseCase) CloseSession(_ context.Context, sessionID string) error {
	u.mu.Lock()
	_, ok := u.sessions[sessionID]
	delete(u.sessions, sessionID)
	u.mu.Unlock()

	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrSessionNotFound, sessionID)
	}
	sessionsActive.Dec()
	u.log.Info("session closed", "session", sessionID)
	return nil
}

// Calculate считает операцию в экземпляре сессии (пустой id - экземпляр по умолчанию).
// После успешного расчёта пишет операцию в журнал, статистику и брокер; их ошибки только логируются.
// Деление на ноль не вызывает ни одного побочного эффекта.
func (u *UseCase) Calculate(ctx context.Context, sessionID string, number1, number2 decimal.Decimal, operation domain.Operator) (*domain.Operation, error) {
	s, err := u.session(sessionID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	result, err := s.calc.Apply(operation, number1, number2)
	s.mu.Unlock()
	if err != nil {
		operationsTotal.WithLabelValues(string(operation), "error").Inc()
		return nil, err
	}
	operationsTotal.WithLabelValues(string(operation), "ok").Inc()

	entry := domain.NewEntry(number1, operation, number2, result)
	op := domain.Operation{
		SessionID:   sessionID,
		Number1:     number1,
		Number2:     number2,
		Operation:   operation,
		Description: entry.Description,
		Result:      result,
		Timestamp:   u.now(),
	}
	u.log.Debug("operation calculated", "session", sessionID, "description", op.Description, "result", result.String())

	if u.journal != nil {
		if err := u.journal.SaveOperation(ctx, op); err != nil {
			u.log.Warn("journal save", "description", op.Description, "error", err)
		} else {
			u.log.Info("operation saved", "description", op.Description, "result", result.String())
		}
	}

	if u.stats != nil {
		if err := u.stats.Incr(ctx, string(operation)); err != nil {
			u.log.Warn("stats incr", "operation", operation, "error", err)
		}
	}

	if u.broker != nil {
		u.publish(ctx, op)
	}

	return &op, nil
}

// LastShared - последняя операция общей истории.
func (u *UseCase) LastShared(_ context.Context) (domain.Entry, error) {
	return u.def.calc.LastSharedCalculation()
}

// ResetShared очищает общую историю всех сессий.
func (u *UseCase) ResetShared(_ context.Context) error {
	u.def.calc.ResetSharedHistory()
	u.log.Info("shared history reset")
	return nil
}

// SharedHistory - все записи общей истории, от старых к новым.
func (u *UseCase) SharedHistory(_ context.Context) ([]domain.Entry, error) {
	return u.shared.Entries(), nil
}

// LastInstance - последняя операция экземпляра сессии.
func (u *UseCase) LastInstance(_ context.Context, sessionID string) (domain.Entry, error) {
	s, err := u.session(sessionID)
	if err != nil {
		return domain.Entry{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calc.LastInstanceCalculation()
}

// ResetInstance очищает историю экземпляра сессии.
func (u *UseCase) ResetInstance(_ context.Context, sessionID string) error {
	s, err := u.session(sessionID)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.calc.ResetInstanceHistory()
	s.mu.Unlock()
	u.log.Info("instance history reset", "session", sessionID)
	return nil
}

// InstanceHistory - записи истории экземпляра сессии.
func (u *UseCase) InstanceHistory(_ context.Context, sessionID string) ([]domain.Entry, error) {
	s, err := u.session(sessionID)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calc.InstanceHistory(), nil
}

// Journal - последние операции из журнала (обвязка над репозиторием).
func (u *UseCase) Journal(ctx context.Context, limit int) ([]domain.Operation, error) {
	if u.journal == nil {
		return nil, fmt.Errorf("journal: %w", domain.ErrDisabled)
	}
	return u.journal.GetJournal(ctx, limit)
}

// Stats - счётчики операций по оператору.
func (u *UseCase) Stats(ctx context.Context) (map[string]int64, error) {
	if u.stats == nil {
		return nil, fmt.Errorf("stats: %w", domain.ErrDisabled)
	}
	return u.stats.Counts(ctx)
}

// AnalyticsCounts - счётчики операций по оператору из хранилища аналитики.
func (u *UseCase) AnalyticsCounts(ctx context.Context) (map[string]uint64, error) {
	if u.analytics == nil {
		return nil, fmt.Errorf("analytics: %w", domain.ErrDisabled)
	}
	return u.analytics.CountByOperation(ctx)
}

// HandleOperationEvent вызывается консьюмером при получении сообщения из топика операций (часть ICalculatorUseCase).
func (u *UseCase) HandleOperationEvent(ctx context.Context, op domain.Operation) error {
	if u.analytics == nil {
		u.log.Debug("analytics disabled, event dropped", "description", op.Description)
		return nil
	}
	if err := u.analytics.WriteOperation(ctx, op); err != nil {
		u.log.Warn("analytics write", "error", err)
		return err
	}
	u.log.Info("operation stored to click", "description", op.Description, "result", op.Result.String())

	return nil
}

// publish отправляет операцию в брокер. Ошибки кодирования и отправки только логируются.
func (u *UseCase) publish(ctx context.Context, op domain.Operation) {
	value, err := u.encode(op)
	if err != nil {
		u.log.Warn("broker encode", "description", op.Description, "error", err)
		return
	}
	if err := u.broker.Send(ctx, []byte(op.SessionID), value); err != nil {
		u.log.Warn("broker send", "description", op.Description, "error", err)
		return
	}
	u.log.Info("operation published", "description", op.Description, "result", op.Result.String())
}

// session возвращает сессию по id; пустой id - экземпляр по умолчанию.
func (u *UseCase) session(id string) (*session, error) {
	if id == "" {
		return u.def, nil
	}
	u.mu.RLock()
	s, ok := u.sessions[id]
	u.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrSessionNotFound, id)
	}
	return s, nil
}
