package kafka

import (
	"CampaignLens/internal/model"
	"CampaignLens/internal/pkg/logger"
	"CampaignLens/internal/service"
	"context"
	"errors"
	log "log/slog"

	"github.com/IBM/sarama"
)

// MetricsIngester 指标入库
type MetricsIngester interface {
	IngestPostMetrics(ctx context.Context, metrics *model.PostMetrics) error
}

type MetricsHandler struct {
	ingester MetricsIngester
}

func NewMetricsHandler(ingester MetricsIngester) *MetricsHandler {
	return &MetricsHandler{ingester: ingester}
}

func (s *MetricsHandler) Setup(sarama.ConsumerGroupSession) error {
	log.Info("post metrics consumer setup")
	return nil
}

func (s *MetricsHandler) Cleanup(sarama.ConsumerGroupSession) error {
	log.Info("post metrics consumer cleanup")
	return nil
}

func (s *MetricsHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	log.Info("topic-post-metrics consume claim", "partition", claim.Partition())
	err := pullMessageBatch(session, claim, s.logic)
	if err != nil {
		log.Error("topic-post-metrics process batch error", "err", err)
		return err
	}
	return nil
}

// logic 非法消息与不存在的帖子直接跳过，其余错误交给重试
func (s *MetricsHandler) logic(ctx context.Context, msg *sarama.ConsumerMessage) error {
	ctx = logger.WithTrace(ctx, "kafka")

	m, err := ToMetricsMessage(msg)
	if err != nil {
		log.WarnContext(ctx, "skip malformed metrics message", "offset", msg.Offset, "err", err)
		return nil
	}

	err = s.ingester.IngestPostMetrics(ctx, m.ToModel())
	if errors.Is(err, service.ErrPostNotFound) || errors.Is(err, service.ErrParamInvalid) {
		log.WarnContext(ctx, "skip metrics message", "post_id", m.PostID, "err", err)
		return nil
	}
	return err
}
