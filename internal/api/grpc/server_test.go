package grpc

import (
	"context"
	"log/slog"
	"net"
	"os"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"precisecalc/internal/api/grpc/calculator"
	"precisecalc/internal/domain"
	"precisecalc/internal/mocks"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

// startServer поднимает сервер на bufconn и возвращает соединение клиента.
func startServer(t *testing.T) (*grpc.ClientConn, *mocks.MockICalculatorUseCase) {
	t.Helper()
	uc := mocks.NewMockICalculatorUseCase(gomock.NewController(t))
	srv := NewServer("bufnet", uc, newTestLogger())

	lis := bufconn.Listen(1 << 20)
	go func() { _ = srv.Serve(lis) }()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		conn.Close()
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = srv.Stop(ctx)
	})
	return conn, uc
}

func TestCalculate(t *testing.T) {
	conn, uc := startServer(t)
	client := calculator.NewClient(conn)

	uc.EXPECT().Calculate(gomock.Any(), "", gomock.Any(), gomock.Any(), domain.OpAdd).
		DoAndReturn(func(_ context.Context, _ string, a, b decimal.Decimal, _ domain.Operator) (*domain.Operation, error) {
			return &domain.Operation{Description: "0.1 + 0.2", Result: a.Add(b)}, nil
		})

	resp, err := client.Invoke(context.Background(), calculator.MethodCalculate, map[string]any{
		"number1": "0.1", "number2": "0.2", "operation": "+",
	})
	require.NoError(t, err)
	assert.Equal(t, "0.3", resp.GetFields()["result"].GetStringValue())
	assert.Equal(t, "0.1 + 0.2", resp.GetFields()["description"].GetStringValue())
}

func TestStatusCodes(t *testing.T) {
	conn, uc := startServer(t)
	client := calculator.NewClient(conn)
	ctx := context.Background()

	uc.EXPECT().Calculate(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), domain.OpDiv).Return(nil, domain.ErrDivisionByZero)
	uc.EXPECT().LastShared(gomock.Any()).Return(domain.Entry{}, domain.ErrEmptyHistory)
	uc.EXPECT().LastInstance(gomock.Any(), "nope").Return(domain.Entry{}, domain.ErrSessionNotFound)
	uc.EXPECT().ResetShared(gomock.Any()).Return(assert.AnError)

	_, err := client.Invoke(ctx, calculator.MethodCalculate, map[string]any{"number1": "1", "number2": "0", "operation": "/"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
	assert.Equal(t, "Cannot divide by zero.", status.Convert(err).Message())

	_, err = client.Invoke(ctx, calculator.MethodCalculate, map[string]any{"number1": "x", "number2": "0", "operation": "/"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = client.Invoke(ctx, calculator.MethodCalculate, map[string]any{"number1": "1e2000000", "number2": "1e-2000000", "operation": "+"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	// число вместо строки не принимается: float теряет точность
	_, err = client.Invoke(ctx, calculator.MethodCalculate, map[string]any{"number1": 1.5, "number2": "1", "operation": "+"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = client.Invoke(ctx, calculator.MethodLastShared, nil)
	assert.Equal(t, codes.NotFound, status.Code(err))
	assert.Equal(t, "No calculations in history.", status.Convert(err).Message())

	_, err = client.Invoke(ctx, calculator.MethodLastInstance, map[string]any{"session_id": "nope"})
	assert.Equal(t, codes.NotFound, status.Code(err))

	_, err = client.Invoke(ctx, calculator.MethodResetShared, nil)
	assert.Equal(t, codes.Internal, status.Code(err))
}

func TestSessions(t *testing.T) {
	conn, uc := startServer(t)
	client := calculator.NewClient(conn)
	ctx := context.Background()

	uc.EXPECT().CreateSession(gomock.Any()).Return("s1", nil)
	uc.EXPECT().LastInstance(gomock.Any(), "s1").Return(domain.Entry{Description: "2 * 3", Result: decimal.RequireFromString("6")}, nil)
	uc.EXPECT().ResetInstance(gomock.Any(), "s1").Return(nil)

	resp, err := client.Invoke(ctx, calculator.MethodCreateSession, nil)
	require.NoError(t, err)
	id := resp.GetFields()["session_id"].GetStringValue()
	assert.Equal(t, "s1", id)

	resp, err = client.Invoke(ctx, calculator.MethodLastInstance, map[string]any{"session_id": id})
	require.NoError(t, err)
	assert.Equal(t, "2 * 3", resp.GetFields()["description"].GetStringValue())
	assert.Equal(t, "6", resp.GetFields()["result"].GetStringValue())

	_, err = client.Invoke(ctx, calculator.MethodResetInstance, map[string]any{"session_id": id})
	require.NoError(t, err)
}

func TestHealth(t *testing.T) {
	conn, _ := startServer(t)

	resp, err := healthpb.NewHealthClient(conn).Check(context.Background(), &healthpb.HealthCheckRequest{Service: calculator.ServiceName})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.GetStatus())
}
