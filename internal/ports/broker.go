package ports

//go:generate mockgen -source=broker.go -destination=../mocks/broker_mock.go -package=mocks

import "context"

// IProducer - контракт отправки сообщений в брокер (например Kafka). Топик задаётся при создании реализации (конфиг).
// Use case публикует каждую успешную операцию (ключ - id сессии, значение - JSON domain.Operation).
type IProducer interface {
	Send(ctx context.Context, key, value []byte) error
}
