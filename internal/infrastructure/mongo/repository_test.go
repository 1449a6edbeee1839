package mongo

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"precisecalc/internal/domain"
	"precisecalc/internal/pkg/testutil"
)

// mongoContainer - контейнер MongoDB, инициализируется в TestMain.
var mongoContainer *testutil.MongoContainer

func TestMain(m *testing.M) {
	flag.Parse()
	if testing.Short() {
		os.Exit(m.Run())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	var err error
	mongoContainer, err = testutil.NewMongoContainer(ctx)
	if err != nil {
		log.Printf("MongoDB не поднята, интеграционные тесты будут пропущены: %v", err)
		mongoContainer = nil
	}

	code := m.Run()

	if mongoContainer != nil {
		if err := mongoContainer.Terminate(ctx); err != nil {
			log.Printf("ошибка остановки MongoDB: %v", err)
		}
	}
	cancel()
	os.Exit(code)
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestOperationDoc_RoundTrip(t *testing.T) {
	op := domain.Operation{
		SessionID:   "s1",
		Number1:     decimal.RequireFromString("123456789012345678901234567890"),
		Number2:     decimal.RequireFromString("987654321098765432109876543210"),
		Operation:   domain.OpMul,
		Description: "123456789012345678901234567890 * 987654321098765432109876543210",
		Timestamp:   time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
	op.Result = op.Number1.Mul(op.Number2)

	got, err := toDoc(op).toOperation()
	require.NoError(t, err)

	// 60 цифр не влезли бы в Decimal128
	assert.True(t, got.Result.Equal(op.Result))
	assert.Equal(t, op.Description, got.Description)
	assert.Equal(t, domain.OpMul, got.Operation)
	assert.Equal(t, "s1", got.SessionID)
}

func TestOperationDoc_KeepsScale(t *testing.T) {
	doc := toDoc(domain.Operation{
		Number1:     decimal.RequireFromString("2.50"),
		Number2:     decimal.RequireFromString("2"),
		Operation:   domain.OpMul,
		Description: "2.50 * 2",
		Result:      decimal.RequireFromString("5.00"),
	})

	assert.Equal(t, "2.50", doc.Number1)
	assert.Equal(t, "5.00", doc.Result)

	got, err := doc.toOperation()
	require.NoError(t, err)
	assert.Equal(t, "2.50", domain.FormatOperand(got.Number1))
}

func TestOperationDoc_Invalid(t *testing.T) {
	_, err := operationDoc{Number1: "x", Number2: "1", Result: "1"}.toOperation()
	assert.Error(t, err)
}

// setupMongoRepo подключается к тестовой MongoDB и очищает коллекцию.
func setupMongoRepo(t *testing.T) *OperationRepo {
	t.Helper()
	testutil.SkipIntegration(t, mongoContainer != nil)

	ctx := context.Background()
	client, err := New(ctx, &Config{
		URI:        mongoContainer.URI(),
		Database:   "testdb",
		Collection: "operations",
	})
	require.NoError(t, err, "не удалось подключиться к MongoDB")

	if err := client.Coll().Drop(ctx); err != nil {
		t.Logf("drop collection: %v (игнорируем)", err)
	}

	t.Cleanup(func() {
		client.Close(context.Background())
	})

	return NewOperationRepo(client, newTestLogger())
}

func TestMongoRepo_SaveAndGetJournal(t *testing.T) {
	repo := setupMongoRepo(t)
	ctx := context.Background()

	now := time.Now()
	for i, desc := range []string{"10 + 5", "5 / 0.5"} {
		op := domain.Operation{
			Number1:     decimal.NewFromInt(10),
			Number2:     decimal.NewFromInt(5),
			Operation:   domain.OpAdd,
			Description: desc,
			Result:      decimal.NewFromInt(15),
			Timestamp:   now.Add(time.Duration(i) * time.Second),
		}
		require.NoError(t, repo.SaveOperation(ctx, op), "SaveOperation должен успешно сохранить")
	}

	journal, err := repo.GetJournal(ctx, 10)
	require.NoError(t, err, "GetJournal должен успешно вернуть данные")

	require.Len(t, journal, 2)
	assert.Equal(t, "5 / 0.5", journal[0].Description, "последние сначала")
	assert.True(t, journal[1].Result.Equal(decimal.NewFromInt(15)))

	assert.NoError(t, repo.Ping(ctx))
}
