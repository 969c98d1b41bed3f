package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/tair/recommendation-service/pkg/logger"
)

// Publisher wraps Kafka producer
type Publisher struct {
	producer sarama.SyncProducer
	brokers  []string
}

// NewPublisher creates a new Kafka publisher
func NewPublisher(brokers []string) (*Publisher, error) {
	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.Retry.Max = 3
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Compression = sarama.CompressionSnappy
	config.Producer.MaxMessageBytes = 1000000

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}

	logger.Logger.Info().
		Strs("brokers", brokers).
		Msg("Kafka publisher initialized")

	return &Publisher{
		producer: producer,
		brokers:  brokers,
	}, nil
}

// PublishRecommendationRated publishes a rating event with tracing
func (p *Publisher) PublishRecommendationRated(ctx context.Context, event RecommendationRatedEvent) error {
	tracer := otel.Tracer("kafka-publisher")
	ctx, span := tracer.Start(ctx, "kafka.publish.recommendation_rated",
		trace.WithSpanKind(trace.SpanKindProducer),
		trace.WithAttributes(
			attribute.String("messaging.system", "kafka"),
			attribute.String("messaging.destination", TopicRecommendationRated),
			attribute.String("messaging.destination_kind", "topic"),
			attribute.String("event.type", EventTypeRecommendationRated),
			attribute.Int64("recommendation.product_id", event.ProductID),
			attribute.Int64("recommendation.recommendation_product_id", event.RecommendationProductID),
			attribute.String("recommendation.rating", event.Rating),
		),
	)
	defer span.End()

	// Set event metadata
	if event.EventID == "" {
		event.EventID = uuid.New().String()
	}
	event.EventType = EventTypeRecommendationRated
	event.Timestamp = time.Now()

	span.SetAttributes(attribute.String("event.id", event.EventID))

	eventBytes, err := json.Marshal(event)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to marshal event")
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	// Inject trace context into Kafka headers
	carrier := propagation.MapCarrier{}
	otel.GetTextMapPropagator().Inject(ctx, carrier)

	headers := []sarama.RecordHeader{
		{
			Key:   []byte("event_type"),
			Value: []byte(EventTypeRecommendationRated),
		},
		{
			Key:   []byte("event_id"),
			Value: []byte(event.EventID),
		},
	}

	for key, value := range carrier {
		headers = append(headers, sarama.RecordHeader{
			Key:   []byte(key),
			Value: []byte(value),
		})
	}

	msg := &sarama.ProducerMessage{
		Topic:   TopicRecommendationRated,
		Key:     sarama.StringEncoder(fmt.Sprintf("recommendation_%d_%d", event.ProductID, event.RecommendationProductID)),
		Value:   sarama.ByteEncoder(eventBytes),
		Headers: headers,
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to send message")
		logger.Logger.Error().
			Err(err).
			Str("topic", TopicRecommendationRated).
			Int64("product_id", event.ProductID).
			Str("trace_id", span.SpanContext().TraceID().String()).
			Msg("Failed to publish event")
		return fmt.Errorf("failed to send message to Kafka: %w", err)
	}

	span.SetAttributes(
		attribute.Int("messaging.kafka.partition", int(partition)),
		attribute.Int64("messaging.kafka.offset", offset),
	)
	span.SetStatus(codes.Ok, "Event published successfully")

	logger.Logger.Info().
		Str("event_id", event.EventID).
		Str("event_type", event.EventType).
		Str("topic", TopicRecommendationRated).
		Int32("partition", partition).
		Int64("offset", offset).
		Int64("product_id", event.ProductID).
		Int64("recommendation_product_id", event.RecommendationProductID).
		Str("rating", event.Rating).
		Str("trace_id", span.SpanContext().TraceID().String()).
		Msg("Recommendation rated event published")

	return nil
}

// Close closes the Kafka producer
func (p *Publisher) Close() error {
	if p.producer != nil {
		return p.producer.Close()
	}
	return nil
}
