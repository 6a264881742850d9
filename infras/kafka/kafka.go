package kafka

//go:generate go run go.uber.org/mock/mockgen -source=./kafka.go -destination=./mocks/kafka_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"

	"halachi/config"
	"halachi/infras/otel"
	"halachi/shared/constant"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/sasl/plain"
)

type Message struct {
	Key   string
	Value any
}

func (m *Message) ToKafkaMessage() (kafkaGo.Message, error) {
	jsonValue, err := json.Marshal(m.Value)
	if err != nil {
		log.Error().Err(err).Msg("Failed to marshal message value to JSON")

		return kafkaGo.Message{}, fmt.Errorf("failed to marshal message value to JSON: %w", err)
	}

	return kafkaGo.Message{
		Key:   []byte(m.Key),
		Value: jsonValue,
	}, nil
}

// Publisher sends events to the configured topic.
type Publisher interface {
	Publish(ctx context.Context, messages ...Message) error
	Close() error
}

type publisherImpl struct {
	topic  string
	writer *kafkaGo.Writer
	otel   otel.Otel
}

type noopPublisher struct{}

// New returns a publisher that drops every message when no brokers are configured.
func New(cfg *config.Config, otel otel.Otel) Publisher {
	kafkaCfg := cfg.External.Kafka

	if len(kafkaCfg.Brokers) == 0 {
		log.Info().Msg("Kafka brokers not configured, events are disabled")

		return &noopPublisher{}
	}

	transport := &kafkaGo.Transport{
		DialTimeout: constant.KafkaTimeout,
	}

	if kafkaCfg.Username != "" {
		transport.SASL = plain.Mechanism{
			Username: kafkaCfg.Username,
			Password: kafkaCfg.Password,
		}
	}

	writer := &kafkaGo.Writer{
		Addr:                   kafkaGo.TCP(kafkaCfg.Brokers...),
		Topic:                  kafkaCfg.Topic,
		Transport:              transport,
		AllowAutoTopicCreation: true,
		Async:                  true,
		WriteTimeout:           constant.KafkaTimeout,
		Completion: func(messages []kafkaGo.Message, err error) {
			if err != nil {
				log.Error().Err(err).Str("topic", kafkaCfg.Topic).Int("count", len(messages)).Msg("Failed to deliver message to Kafka.")
			}
		},
	}

	log.Info().Strs("brokers", kafkaCfg.Brokers).Str("topic", kafkaCfg.Topic).Msg("Kafka publisher initialized")

	return &publisherImpl{
		topic:  kafkaCfg.Topic,
		writer: writer,
		otel:   otel,
	}
}

// Publish only queues the messages; delivery failures are logged by the writer.
func (k *publisherImpl) Publish(ctx context.Context, messages ...Message) (err error) {
	ctx, scope := k.otel.NewScope(ctx, constant.OtelKafkaScopeName, constant.OtelKafkaScopeName+".Publish")
	defer scope.End()
	defer scope.TraceIfError(&err)

	scope.SetAttribute("kafka.topic", k.topic)

	msgs := make([]kafkaGo.Message, 0, len(messages))

	for _, message := range messages {
		msg, err := message.ToKafkaMessage()
		if err != nil {
			return err
		}

		msgs = append(msgs, msg)
	}

	if err = k.writer.WriteMessages(ctx, msgs...); err != nil {
		log.Error().Err(err).Str("topic", k.topic).Msg("Failed to send message to Kafka.")

		return fmt.Errorf("failed to send message to Kafka: %w", err)
	}

	return nil
}

func (k *publisherImpl) Close() error {
	return k.writer.Close()
}

func (n *noopPublisher) Publish(_ context.Context, _ ...Message) error {
	return nil
}

func (n *noopPublisher) Close() error {
	return nil
}
