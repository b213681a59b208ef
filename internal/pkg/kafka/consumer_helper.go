package kafka

import (
	"context"
	log "log/slog"
	"time"

	"github.com/IBM/sarama"
	"golang.org/x/sync/errgroup"
)

const (
	batchSize    = 32
	batchTimeout = 1 * time.Second
	// 同一批次内最多并发处理的 Key 数
	keyConcurrency = 8

	minRetryInterval = 100 * time.Millisecond
	maxRetryInterval = 5 * time.Second
)

type LogicFunc func(ctx context.Context, msg *sarama.ConsumerMessage) error

// pullMessageBatch 攒满 batchSize 条或等待 batchTimeout 后处理一批，分区关闭前处理剩余消息
func pullMessageBatch(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim, logic LogicFunc) error {
	batch := make([]*sarama.ConsumerMessage, 0, batchSize)
	flush := func() {
		if len(batch) > 0 {
			processBatch(session, batch, logic)
			batch = batch[:0]
		}
	}

	timer := time.NewTimer(batchTimeout)
	defer timer.Stop()
	for {
		select {
		case msg, ok := <-claim.Messages():
			if !ok {
				flush()
				return nil
			}
			batch = append(batch, msg)
			if len(batch) >= batchSize {
				flush()
				timer.Reset(batchTimeout)
			}
		case <-timer.C:
			flush()
			timer.Reset(batchTimeout)
		case <-session.Context().Done():
			return nil
		}
	}
}

// processBatch 不同 Key 并发、同一 Key 按到达顺序串行，全部成功后提交最后一条的位点
func processBatch(session sarama.ConsumerGroupSession, messages []*sarama.ConsumerMessage, logic LogicFunc) {
	if len(messages) == 0 {
		return
	}
	ctx := session.Context()

	groups := make(map[string][]*sarama.ConsumerMessage)
	order := make([]string, 0, len(messages))
	for _, msg := range messages {
		key := string(msg.Key)
		if _, ok := groups[key]; !ok {
			order = append(order, key)
		}
		groups[key] = append(groups[key], msg)
	}

	var g errgroup.Group
	g.SetLimit(keyConcurrency)
	for _, key := range order {
		msgs := groups[key]
		g.Go(func() error {
			for _, m := range msgs {
				if !processWithRetry(ctx, m, logic) {
					return ctx.Err()
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil || ctx.Err() != nil {
		return
	}
	session.MarkMessage(messages[len(messages)-1], "")
	session.Commit()
}

// processWithRetry 失败后指数退避重试，会话结束时返回 false
func processWithRetry(ctx context.Context, m *sarama.ConsumerMessage, logic LogicFunc) bool {
	interval := minRetryInterval
	for attempt := 1; ; attempt++ {
		err := logic(ctx, m)
		if err == nil {
			return true
		}
		log.ErrorContext(ctx, "process message error",
			"topic", m.Topic, "partition", m.Partition, "offset", m.Offset, "attempt", attempt, "err", err)

		select {
		case <-ctx.Done():
			return false
		case <-time.After(interval):
		}
		interval = min(interval*2, maxRetryInterval)
	}
}
