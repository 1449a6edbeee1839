package calculator

import (
	"time"

	"precisecalc/internal/domain"
)

// CalculateRequest - запрос на вычисление (POST /api/v1/calculate). Числа - строками, чтобы не терять точность.
type CalculateRequest struct {
	Number1   string `json:"number1" binding:"required"`
	Number2   string `json:"number2" binding:"required"`
	Operation string `json:"operation" binding:"required"`
	SessionID string `json:"session_id"`
}

// CalculateResponse - ответ с результатом.
type CalculateResponse struct {
	Result      string `json:"result"`
	Description string `json:"description"`
}

// ErrorResponse - ответ с ошибкой. Kind - машинно-читаемый вид ошибки.
type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

// EntryItem - одна запись истории калькулятора.
type EntryItem struct {
	Description string `json:"description"`
	Result      string `json:"result"`
}

func newEntryItem(e domain.Entry) EntryItem {
	return EntryItem{Description: e.Description, Result: e.Result.String()}
}

// HistoryResponse - ответ со списком записей истории (от старых к новым).
type HistoryResponse struct {
	Items []EntryItem `json:"items"`
}

func newHistoryResponse(list []domain.Entry) HistoryResponse {
	items := make([]EntryItem, len(list))
	for i, e := range list {
		items[i] = newEntryItem(e)
	}
	return HistoryResponse{Items: items}
}

// SessionResponse - ответ на создание сессии.
type SessionResponse struct {
	SessionID string `json:"session_id"`
}

// JournalItem - одна запись журнала (GET /api/v1/journal).
type JournalItem struct {
	ID          int       `json:"id"`
	SessionID   string    `json:"session_id,omitempty"`
	Number1     string    `json:"number1"`
	Number2     string    `json:"number2"`
	Operation   string    `json:"operation"`
	Description string    `json:"description"`
	Result      string    `json:"result"`
	Timestamp   time.Time `json:"timestamp"`
}

// JournalResponse - ответ со списком операций журнала (последние сначала).
type JournalResponse struct {
	Items []JournalItem `json:"items"`
}

func newJournalResponse(list []domain.Operation) JournalResponse {
	items := make([]JournalItem, len(list))
	for i, op := range list {
		items[i] = JournalItem{
			ID:          op.ID,
			SessionID:   op.SessionID,
			Number1:     domain.FormatOperand(op.Number1),
			Number2:     domain.FormatOperand(op.Number2),
			Operation:   string(op.Operation),
			Description: op.Description,
			Result:      op.Result.String(),
			Timestamp:   op.Timestamp,
		}
	}
	return JournalResponse{Items: items}
}

// StatsResponse - число операций по оператору.
type StatsResponse struct {
	Counts map[string]int64 `json:"counts"`
}

// AnalyticsResponse - число операций по оператору в хранилище аналитики.
type AnalyticsResponse struct {
	Counts map[string]uint64 `json:"counts"`
}
