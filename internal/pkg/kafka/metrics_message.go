package kafka

import (
	"CampaignLens/internal/model"

	"github.com/IBM/sarama"
	"github.com/goccy/go-json"
	"github.com/pkg/errors"
)

var ErrInvalidMetricsMessage = errors.New("invalid post metrics message")

// MetricsMessage post-metrics 主题中的指标快照
type MetricsMessage struct {
	PostID      uint64 `json:"post_id"`
	Impressions int64  `json:"impressions"`
	Likes       int64  `json:"likes"`
	Comments    int64  `json:"comments"`
	Shares      int64  `json:"shares"`
	Saves       int64  `json:"saves"`
	Clicks      int64  `json:"clicks"`
}

// ToMetricsMessage 解析并校验指标消息
func ToMetricsMessage(msg *sarama.ConsumerMessage) (*MetricsMessage, error) {
	var m MetricsMessage
	if err := json.Unmarshal(msg.Value, &m); err != nil {
		return nil, errors.Wrapf(ErrInvalidMetricsMessage, "decode offset %d: %v", msg.Offset, err)
	}
	if m.PostID == 0 {
		return nil, errors.Wrapf(ErrInvalidMetricsMessage, "missing post_id at offset %d", msg.Offset)
	}
	if m.Impressions < 0 || m.Likes < 0 || m.Comments < 0 || m.Shares < 0 || m.Saves < 0 || m.Clicks < 0 {
		return nil, ErrInvalidMetricsMessage
	}
	return &m, nil
}

func (m *MetricsMessage) ToModel() *model.PostMetrics {
	return &model.PostMetrics{
		PostID:      m.PostID,
		Impressions: m.Impressions,
		Likes:       m.Likes,
		Comments:    m.Comments,
		Shares:      m.Shares,
		Saves:       m.Saves,
		Clicks:      m.Clicks,
	}
}
