package calculator

import (
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	core "precisecalc/internal/calculator"
	"precisecalc/internal/history"
	"precisecalc/internal/ports"
)

// session - экземпляр калькулятора и замок на его собственную историю.
type session struct {
	mu   sync.Mutex
	calc *core.Calculator
}

// UseCase - бизнес-логика калькулятора: общая история, экземпляр по умолчанию и сессии.
type UseCase struct {
	shared *history.Shared
	def    *session

	mu       sync.RWMutex
	sessions map[string]*session

	journal   ports.IOperationJournal
	stats     ports.IStats
	broker    ports.IProducer
	analytics ports.IOperationAnalytics
	log       *slog.Logger
	now       func() time.Time
	encode    func(v any) ([]byte, error)
}

// New создаёт юзкейс калькулятора. Любая из зависимостей может быть nil - тогда соответствующий шаг пропускается.
// precision - число значащих цифр при делении (не ниже core.DefaultPrecision).
func New(precision int, journal ports.IOperationJournal, stats ports.IStats, broker ports.IProducer, analytics ports.IOperationAnalytics, log *slog.Logger) *UseCase {
	if log == nil {
		log = slog.Default()
	}
	shared := history.NewShared()
	return &UseCase{
		shared:    shared,
		def:       &session{calc: core.NewWithPrecision(shared, precision)},
		sessions:  make(map[string]*session),
		journal:   journal,
		stats:     stats,
		broker:    broker,
		analytics: analytics,
		log:       log,
		now:       time.Now,
		encode:    json.Marshal,
	}
}
