package kafka

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"precisecalc/internal/domain"
	"precisecalc/internal/mocks"
)

// fakeReader отдаёт заранее заданные сообщения, затем ошибку readErr.
type fakeReader struct {
	msgs      []kafka.Message
	readErr   error
	committed []int64
	closed    bool
}

func (f *fakeReader) FetchMessage(_ context.Context) (kafka.Message, error) {
	if len(f.msgs) == 0 {
		return kafka.Message{}, f.readErr
	}
	msg := f.msgs[0]
	f.msgs = f.msgs[1:]
	return msg, nil
}

func (f *fakeReader) CommitMessages(_ context.Context, msgs ...kafka.Message) error {
	for _, m := range msgs {
		f.committed = append(f.committed, m.Offset)
	}
	return nil
}

func (f *fakeReader) Close() error {
	f.closed = true
	return nil
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestConsumer_Run(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockICalculatorUseCase(ctrl)

	errEOF := errors.New("reader closed")
	r := &fakeReader{
		msgs: []kafka.Message{
			{Offset: 1, Value: []byte(`{"operation":"+","description":"2 + 3","number1":"2","number2":"3","result":"5"}`)},
			{Offset: 2, Value: []byte(`не json`)},
			{Offset: 3, Value: []byte(`{"operation":"/","description":"1 / 0.5","number1":"1","number2":"0.5","result":"2"}`)},
		},
		readErr: errEOF,
	}

	gomock.InOrder(
		uc.EXPECT().HandleOperationEvent(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, op domain.Operation) error {
				assert.Equal(t, "2 + 3", op.Description)
				assert.Equal(t, "5", op.Result.String())
				return nil
			}),
		uc.EXPECT().HandleOperationEvent(gomock.Any(), gomock.Any()).Return(nil),
	)

	c := &Consumer{r: r, uc: uc, log: newTestLogger()}
	err := c.Run(context.Background())

	require.ErrorIs(t, err, errEOF)
	// 1 - обработано, 2 - битое и пропущено, 3 - обработано
	assert.Equal(t, []int64{1, 2, 3}, r.committed)

	require.NoError(t, c.Close())
	assert.True(t, r.closed)
}

// Ошибка обработки: сообщение повторяется до успеха, следующее коммитится только после него.
func TestConsumer_Run_RetriesFailedMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockICalculatorUseCase(ctrl)

	errEOF := errors.New("reader closed")
	r := &fakeReader{
		msgs: []kafka.Message{
			{Offset: 3, Value: []byte(`{"operation":"*","description":"2 * 2","number1":"2","number2":"2","result":"4"}`)},
			{Offset: 4, Value: []byte(`{"operation":"-","description":"5 - 1","number1":"5","number2":"1","result":"4"}`)},
		},
		readErr: errEOF,
	}

	var handled []string
	record := func(_ context.Context, op domain.Operation) {
		handled = append(handled, op.Description)
	}
	gomock.InOrder(
		uc.EXPECT().HandleOperationEvent(gomock.Any(), gomock.Any()).Do(record).Return(errors.New("click down")),
		uc.EXPECT().HandleOperationEvent(gomock.Any(), gomock.Any()).Do(record).Return(errors.New("click down")),
		uc.EXPECT().HandleOperationEvent(gomock.Any(), gomock.Any()).Do(record).Return(nil),
		uc.EXPECT().HandleOperationEvent(gomock.Any(), gomock.Any()).Do(record).Return(nil),
	)

	c := &Consumer{r: r, uc: uc, log: newTestLogger(), backoff: time.Millisecond, maxBackoff: 2 * time.Millisecond}
	err := c.Run(context.Background())

	require.ErrorIs(t, err, errEOF)
	assert.Equal(t, []string{"2 * 2", "2 * 2", "2 * 2", "5 - 1"}, handled)
	assert.Equal(t, []int64{3, 4}, r.committed)
}

func TestConsumer_Run_RetryStopsOnCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockICalculatorUseCase(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	r := &fakeReader{
		msgs: []kafka.Message{
			{Offset: 7, Value: []byte(`{"operation":"+","description":"1 + 1","number1":"1","number2":"1","result":"2"}`)},
		},
	}
	uc.EXPECT().HandleOperationEvent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, domain.Operation) error {
			cancel()
			return errors.New("click down")
		})

	c := &Consumer{r: r, uc: uc, log: newTestLogger(), backoff: time.Hour, maxBackoff: time.Hour}
	err := c.Run(ctx)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, r.committed, "необработанное сообщение не коммитится")
}

func TestConfig_RetryDelays(t *testing.T) {
	tests := []struct {
		name        string
		cfg         Config
		wantInitial time.Duration
		wantMax     time.Duration
	}{
		{name: "умолчания", cfg: Config{}, wantInitial: defaultRetryBackoff, wantMax: defaultRetryMaxBackoff},
		{name: "заданы", cfg: Config{RetryBackoff: time.Second, RetryMaxBackoff: time.Minute}, wantInitial: time.Second, wantMax: time.Minute},
		{name: "максимум меньше начальной", cfg: Config{RetryBackoff: time.Minute, RetryMaxBackoff: time.Second}, wantInitial: time.Minute, wantMax: time.Minute},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			initial, maxDelay := tt.cfg.retryDelays()
			assert.Equal(t, tt.wantInitial, initial)
			assert.Equal(t, tt.wantMax, maxDelay)
		})
	}
}

func TestConsumer_Run_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := &Consumer{r: &fakeReader{}, log: newTestLogger()}
	assert.ErrorIs(t, c.Run(ctx), context.Canceled)
}

func TestConfig_BrokersSlice(t *testing.T) {
	tests := []struct {
		name    string
		brokers string
		want    []string
	}{
		{name: "один", brokers: "kafka:9092", want: []string{"kafka:9092"}},
		{name: "несколько с пробелами", brokers: "a:1, b:2 ,c:3", want: []string{"a:1", "b:2", "c:3"}},
		{name: "пустые элементы", brokers: "a:1,,", want: []string{"a:1"}},
		{name: "пусто", brokers: "", want: []string{"localhost:9092"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Brokers: tt.brokers}
			assert.Equal(t, tt.want, cfg.brokersSlice())
		})
	}
}

func TestClient_Producer(t *testing.T) {
	p := New(&Config{Brokers: "a:1,b:2", Topic: "ops"}).Producer()
	t.Cleanup(func() { _ = p.Close() })

	assert.Equal(t, "ops", p.w.Topic)
	assert.Equal(t, producerBatchTimeout, p.w.BatchTimeout)
	assert.Equal(t, kafka.RequireOne, p.w.RequiredAcks)
	assert.IsType(t, &kafka.Hash{}, p.w.Balancer)
}
