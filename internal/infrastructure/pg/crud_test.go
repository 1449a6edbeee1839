package pg

import (
	"context"
	"log/slog"
	"os"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"precisecalc/internal/domain"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func newMockRepo(t *testing.T) (*OperationRepo, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		conn.Close()
	})
	return NewOperationRepo(Wrap(conn), newTestLogger()), mock
}

func TestOperationRepo_SaveOperation(t *testing.T) {
	repo, mock := newMockRepo(t)
	ts := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	// числа уходят в драйвер строкой с исходным масштабом
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO operations")).
		WithArgs("s1", "2.00", "3", "*", "2.00 * 3", "6.00", ts).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.SaveOperation(context.Background(), domain.Operation{
		SessionID:   "s1",
		Number1:     decimal.RequireFromString("2.00"),
		Number2:     decimal.RequireFromString("3"),
		Operation:   domain.OpMul,
		Description: "2.00 * 3",
		Result:      decimal.RequireFromString("6.00"),
		Timestamp:   ts,
	})
	require.NoError(t, err)
}

func TestOperationRepo_GetJournal(t *testing.T) {
	repo, mock := newMockRepo(t)
	ts := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	cols := []string{"id", "session_id", "number1", "number2", "operation", "description", "result", "created_at"}
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, session_id")).
		WithArgs(DefaultJournalLimit).
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(2, "", "1", "3", "/", "1 / 3", "0.3333333333333333333333333333", ts).
			AddRow(1, "s1", "2", "3", "+", "2 + 3", "5", ts.Add(-time.Second)))

	list, err := repo.GetJournal(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, list, 2)

	assert.Equal(t, 2, list[0].ID)
	assert.Equal(t, domain.OpDiv, list[0].Operation)
	assert.Equal(t, "0.3333333333333333333333333333", list[0].Result.String(), "NUMERIC читается без округления")
	assert.Equal(t, "s1", list[1].SessionID)
}

func TestOperationRepo_Ping(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectPing()

	assert.NoError(t, repo.Ping(context.Background()))
}

func TestMigrate(t *testing.T) {
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer conn.Close()

	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS operations")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, Migrate(context.Background(), Wrap(conn)))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConfig_DSN(t *testing.T) {
	cfg := Config{Host: "db", Port: "5432", User: "u", Password: "p", DBName: "calc", SSLMode: "disable"}
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=calc sslmode=disable", cfg.DSN())
}

func TestConfig_DSN_ConnectTimeout(t *testing.T) {
	cfg := &Config{Host: "db", Port: "5432", User: "u", Password: "p", DBName: "calc", SSLMode: "disable", ConnectTimeout: 3}
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=calc sslmode=disable connect_timeout=3", cfg.DSN())
}
