// Package history хранит журналы вычислений калькулятора: общий для всех экземпляров и собственный у экземпляра.
package history

import (
	"sync"

	"precisecalc/internal/domain"
)

// Log - упорядоченный список записей. Растёт только через Append, очищается только через Reset.
// Не синхронизирован: владелец лога сам отвечает за доступ к нему.
type Log struct {
	entries []domain.Entry
}

// Append добавляет запись в конец.
func (l *Log) Append(e domain.Entry) {
	l.entries = append(l.entries, e)
}

// Last возвращает последнюю запись; ok == false, если лог пуст.
func (l *Log) Last() (domain.Entry, bool) {
	if len(l.entries) == 0 {
		return domain.Entry{}, false
	}
	return l.entries[len(l.entries)-1], true
}

// Reset очищает лог.
func (l *Log) Reset() {
	l.entries = nil
}

// Entries возвращает копию записей (от старых к новым).
func (l *Log) Entries() []domain.Entry {
	out := make([]domain.Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len - количество записей.
func (l *Log) Len() int {
	return len(l.entries)
}

// Shared - общая история всех калькуляторов процесса. Создаётся явно и передаётся в калькуляторы.
// Безопасна для конкурентного использования: добавления и сброс сериализуются целиком.
type Shared struct {
	mu  sync.Mutex
	log Log
}

// NewShared создаёт пустую общую историю.
func NewShared() *Shared {
	return &Shared{}
}

func (s *Shared) Append(e domain.Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.log.Append(e)
}

func (s *Shared) Last() (domain.Entry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.log.Last()
}

func (s *Shared) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.log.Reset()
}

func (s *Shared) Entries() []domain.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.log.Entries()
}

func (s *Shared) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.log.Len()
}
