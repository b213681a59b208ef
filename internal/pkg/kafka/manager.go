package kafka

import (
	"CampaignLens/internal/api/config"
	"context"
	log "log/slog"
	"time"

	"github.com/IBM/sarama"
)

// consumeRetryInterval Consume 出错后等待再重新加入消费组，避免 broker 不可用时空转
const consumeRetryInterval = 2 * time.Second

// ConsumerManager 管理指标消费组的生命周期
type ConsumerManager struct {
	group   sarama.ConsumerGroup
	handler sarama.ConsumerGroupHandler
	topic   string
}

func NewConsumerManager(cfg *config.Config, ingester MetricsIngester) (*ConsumerManager, error) {
	group, err := sarama.NewConsumerGroup(cfg.Kafka.Brokers, cfg.KafkaMetricsConsumer.GroupID, newSaramaConfig(cfg.Kafka))
	if err != nil {
		return nil, err
	}

	return &ConsumerManager{
		group:   group,
		handler: NewMetricsHandler(ingester),
		topic:   cfg.KafkaMetricsConsumer.Topic,
	}, nil
}

// Start 阻塞直到 ctx 结束，再关闭消费组
func (m *ConsumerManager) Start(ctx context.Context) error {
	go func() {
		for err := range m.group.Errors() {
			log.Error("Kafka consumer error", "topic", m.topic, "err", err)
		}
	}()

	done := make(chan struct{})
	go func() {
		defer close(done)
		log.Info("Post metrics consumer started", "topic", m.topic)
		for ctx.Err() == nil {
			// 每次 rebalance 后 Consume 都会返回，需要重新加入
			if err := m.group.Consume(ctx, []string{m.topic}, m.handler); err != nil {
				log.Error("Error from consumer", "topic", m.topic, "err", err)
				select {
				case <-ctx.Done():
				case <-time.After(consumeRetryInterval):
				}
			}
		}
	}()

	<-ctx.Done()
	log.Info("Kafka Manager shutting down...")

	if err := m.group.Close(); err != nil {
		log.Error("Failed to close metrics consumer", "err", err)
	}
	<-done
	return nil
}
