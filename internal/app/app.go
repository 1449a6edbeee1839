package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	apigrpc "precisecalc/internal/api/grpc"
	apihttp "precisecalc/internal/api/http"
	"precisecalc/internal/api/http/controllers/calculator"
	"precisecalc/internal/api/http/controllers/system"
	"precisecalc/internal/infrastructure/click"
	"precisecalc/internal/infrastructure/kafka"
	"precisecalc/internal/infrastructure/mongo"
	"precisecalc/internal/infrastructure/pg"
	"precisecalc/internal/infrastructure/redis"
	"precisecalc/internal/pkg/logger"
	"precisecalc/internal/ports"
	calcUsecase "precisecalc/internal/usecase/calculator"
)

// App - приложение, хранит конфиг и собранные при старте зависимости.
type App struct {
	cfg Config
	log *slog.Logger

	journal   ports.IOperationJournal
	stats     ports.IStats
	broker    ports.IProducer
	analytics ports.IOperationAnalytics
	checks    []system.Check
	closers   []func(ctx context.Context) error
}

// New создаёт приложение с конфигом (инфраструктура подключается в Run).
func New(cfg Config) *App {
	return &App{cfg: cfg}
}

// Run подключает включённую в конфиге инфраструктуру, запускает HTTP, gRPC и консьюмер Kafka
// и блокируется до SIGINT/SIGTERM, затем останавливает всё по очереди.
func (a *App) Run() error {
	a.log = logger.NewWithLevel(a.cfg.LogLevel, a.cfg.LogFile)
	slog.SetDefault(a.log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	defer a.close()
	if err := a.connect(ctx); err != nil {
		return err
	}

	uc := calcUsecase.New(a.cfg.Calc.Precision, a.journal, a.stats, a.broker, a.analytics, a.log)

	grpcSrv := apigrpc.NewServer(a.cfg.Grpc.Addr(), uc, a.log)
	srv := apihttp.NewServer(a.cfg.Server, a.log)
	srv.AddController(
		system.New(a.log, a.checks...),
		calculator.New(uc, a.log))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.Start(gctx)
	})
	g.Go(func() error {
		if err := grpcSrv.Start(); err != nil {
			return fmt.Errorf("grpc: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return grpcSrv.Stop(shutdownCtx)
	})
	if a.cfg.Kafka.Enabled && a.analytics != nil {
		consumer := kafka.NewConsumer(&a.cfg.Kafka, uc, a.log)
		a.closers = append(a.closers, func(context.Context) error { return consumer.Close() })
		g.Go(func() error {
			if err := consumer.Run(gctx); err != nil && !errors.Is(err, context.Canceled) {
				return fmt.Errorf("kafka consumer: %w", err)
			}
			return nil
		})
	}

	a.log.Info("application started",
		"http", a.cfg.Server.Addr(),
		"grpc", a.cfg.Grpc.Addr(),
		"journal", a.cfg.Journal.Driver,
		"redis", a.stats != nil,
		"kafka", a.broker != nil,
		"clickhouse", a.analytics != nil,
	)

	err := g.Wait()
	a.log.Info("application stopped")
	return err
}

// connect поднимает журнал, статистику, брокер и аналитику согласно конфигу.
// Выключенная зависимость остаётся nil-интерфейсом и use case её пропускает.
func (a *App) connect(ctx context.Context) error {
	switch a.cfg.Journal.Driver {
	case JournalPostgres:
		db, err := pg.New(&a.cfg.DB)
		if err != nil {
			return fmt.Errorf("db: %w", err)
		}
		a.closers = append(a.closers, func(context.Context) error { return db.Close() })
		if err := pg.Migrate(ctx, db); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		repo := pg.NewOperationRepo(db, a.log)
		a.journal = repo
		a.checks = append(a.checks, system.Check{Name: "journal", Pinger: repo})
	case JournalMongo:
		cli, err := mongo.New(ctx, &a.cfg.Mongo)
		if err != nil {
			return fmt.Errorf("mongo: %w", err)
		}
		a.closers = append(a.closers, cli.Close)
		repo := mongo.NewOperationRepo(cli, a.log)
		a.journal = repo
		a.checks = append(a.checks, system.Check{Name: "journal", Pinger: repo})
	}

	if a.cfg.Redis.Enabled {
		rdb, err := redis.New(&a.cfg.Redis)
		if err != nil {
			return fmt.Errorf("redis: %w", err)
		}
		a.closers = append(a.closers, func(context.Context) error { return rdb.Close() })
		a.stats = redis.NewStats(rdb, a.cfg.Redis.StatsKey, a.log)
		a.checks = append(a.checks, system.Check{Name: "redis", Pinger: rdb})
	}

	if a.cfg.Kafka.Enabled {
		producer := kafka.NewProducer(&a.cfg.Kafka)
		a.closers = append(a.closers, func(context.Context) error { return producer.Close() })
		a.broker = producer
	}

	if a.cfg.ClickHouse.Enabled {
		ch, err := click.New(&a.cfg.ClickHouse)
		if err != nil {
			return fmt.Errorf("clickhouse: %w", err)
		}
		a.closers = append(a.closers, func(context.Context) error { return ch.Close() })
		writer := click.NewOperationWriter(ch)
		if err := writer.EnsureTable(ctx); err != nil {
			return fmt.Errorf("clickhouse: %w", err)
		}
		a.analytics = writer
		a.checks = append(a.checks, system.Check{Name: "clickhouse", Pinger: ch})
	}
	return nil
}

// close закрывает подключения в обратном порядке.
func (a *App) close() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](ctx); err != nil {
			a.log.Warn("close failed", "error", err)
		}
	}
	a.closers = nil
}
