package repository

import (
	"context"
	"fmt"

	"conncheck/internal/domain"
	"conncheck/internal/repository/kafka"
)

// ResultRepository publishes a completed run report to an external sink.
type ResultRepository interface {
	PublishReport(ctx context.Context, report domain.RunReport) error
}

// KafkaResultRepository publishes run reports to a Kafka topic, one
// message per run, keyed by run ID.
type KafkaResultRepository struct {
	producer *kafka.Producer
}

func NewKafkaResultRepository(producer *kafka.Producer) ResultRepository {
	return &KafkaResultRepository{producer: producer}
}

func (r *KafkaResultRepository) PublishReport(ctx context.Context, report domain.RunReport) error {
	if err := r.producer.PublishEvent(ctx, report.RunID, report); err != nil {
		return fmt.Errorf("failed to publish run report: %w", err)
	}
	return nil
}
