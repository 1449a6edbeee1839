package kafka

import (
	"strings"
	"time"

	"github.com/segmentio/kafka-go"
)

// Config - настройки Kafka. Переменные: CALCULATOR_KAFKA_ENABLED, CALCULATOR_KAFKA_BROKERS, CALCULATOR_KAFKA_TOPIC,
// CALCULATOR_KAFKA_GROUP_ID, CALCULATOR_KAFKA_RETRY_BACKOFF, CALCULATOR_KAFKA_RETRY_MAX_BACKOFF.
type Config struct {
	Enabled bool   `envconfig:"ENABLED" default:"true"`
	Brokers string `envconfig:"BROKERS" default:"localhost:9092"` // через запятую, если несколько
	Topic   string `envconfig:"TOPIC" default:"precisecalc.operations"`
	GroupID string `envconfig:"GROUP_ID" default:"precisecalc-analytics"` // для consumer group

	RetryBackoff    time.Duration `envconfig:"RETRY_BACKOFF" default:"500ms"`
	RetryMaxBackoff time.Duration `envconfig:"RETRY_MAX_BACKOFF" default:"30s"`
}

const (
	defaultRetryBackoff    = 500 * time.Millisecond
	defaultRetryMaxBackoff = 30 * time.Second
)

// retryDelays возвращает паузы повторной обработки; нулевые значения заменяются умолчаниями.
func (c *Config) retryDelays() (initial, maxDelay time.Duration) {
	initial, maxDelay = c.RetryBackoff, c.RetryMaxBackoff
	if initial <= 0 {
		initial = defaultRetryBackoff
	}
	if maxDelay <= 0 {
		maxDelay = defaultRetryMaxBackoff
	}
	if maxDelay < initial {
		maxDelay = initial
	}
	return initial, maxDelay
}

// brokersSlice возвращает список брокеров из строки (через запятую), пустые элементы отбрасываются.
func (c *Config) brokersSlice() []string {
	if c == nil || strings.TrimSpace(c.Brokers) == "" {
		return []string{"localhost:9092"}
	}
	var brokers []string
	for _, b := range strings.Split(c.Brokers, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

// Client - конфиг и фабрики продюсера/консьюмера. Подключение к брокеру при создании Writer/Reader.
type Client struct {
	cfg *Config
}

// New создаёт клиент по конфигу. Само подключение к Kafka - при первом вызове Producer() или Consumer().
func New(cfg *Config) *Client {
	if cfg == nil {
		cfg = &Config{}
	}
	return &Client{cfg: cfg}
}

// producerBatchTimeout - ожидание пачки у Writer. Send синхронный и вызывается из Calculate.
const producerBatchTimeout = 10 * time.Millisecond

// Producer создаёт продюсера для отправки операций в топик. После использования вызови Close().
// Ключ сообщения - id сессии, поэтому операции одной сессии попадают в одну партицию по порядку.
func (c *Client) Producer() *Producer {
	w := &kafka.Writer{
		Addr:                   kafka.TCP(c.cfg.brokersSlice()...),
		Topic:                  c.cfg.Topic,
		Balancer:               &kafka.Hash{},
		BatchTimeout:           producerBatchTimeout,
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
	}
	return &Producer{w: w}
}

// Consumer создаёт консьюмера для чтения из топика (consumer group). После использования вызови Close().
func (c *Client) Consumer() *Consumer {
	r := kafka.NewReader(kafka.ReaderConfig{
		Brokers: c.cfg.brokersSlice(),
		Topic:   c.cfg.Topic,
		GroupID: c.cfg.GroupID,
	})
	backoff, maxBackoff := c.cfg.retryDelays()
	return &Consumer{r: r, backoff: backoff, maxBackoff: maxBackoff}
}
