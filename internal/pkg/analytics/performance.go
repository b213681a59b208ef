package analytics

import (
	"CampaignLens/internal/model"
	"sort"
)

// Totals 单个活动下所有帖子的指标汇总
type Totals struct {
	Impressions int64
	Likes       int64
	Comments    int64
	Shares      int64
	Clicks      int64
}

// CampaignPerformance 报表中的一行
type CampaignPerformance struct {
	Campaign       *model.Campaign
	Totals         Totals
	EngagementRate float64
	ClickThrough   float64
}

// Add 累加一条指标记录，nil 视为全零
func (t *Totals) Add(m *model.PostMetrics) {
	if m == nil {
		return
	}
	t.Impressions += m.Impressions
	t.Likes += m.Likes
	t.Comments += m.Comments
	t.Shares += m.Shares
	t.Clicks += m.Clicks
}

// EngagementRate (likes+comments+shares)/impressions，曝光为 0 时返回 0
func (t Totals) EngagementRate() float64 {
	if t.Impressions <= 0 {
		return 0
	}
	return float64(t.Likes+t.Comments+t.Shares) / float64(t.Impressions)
}

// ClickThroughRate clicks/impressions，曝光为 0 时返回 0
func (t Totals) ClickThroughRate() float64 {
	if t.Impressions <= 0 {
		return 0
	}
	return float64(t.Clicks) / float64(t.Impressions)
}

// SumPosts 汇总一组帖子的指标
func SumPosts(posts []*model.Post) Totals {
	var t Totals
	for _, p := range posts {
		if p == nil {
			continue
		}
		t.Add(p.Metrics)
	}
	return t
}

// Aggregate 按活动汇总并按总曝光量降序（稳定）排序
// postsByCampaign 中缺失的活动按无帖子处理
func Aggregate(campaigns []*model.Campaign, postsByCampaign map[uint64][]*model.Post) []*CampaignPerformance {
	results := make([]*CampaignPerformance, 0, len(campaigns))
	for _, c := range campaigns {
		totals := SumPosts(postsByCampaign[c.ID])
		results = append(results, &CampaignPerformance{
			Campaign:       c,
			Totals:         totals,
			EngagementRate: totals.EngagementRate(),
			ClickThrough:   totals.ClickThroughRate(),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Totals.Impressions > results[j].Totals.Impressions
	})
	return results
}

// GroupByCampaign 将帖子按活动 ID 分组，保持原有顺序
func GroupByCampaign(posts []*model.Post) map[uint64][]*model.Post {
	grouped := make(map[uint64][]*model.Post)
	for _, p := range posts {
		grouped[p.CampaignID] = append(grouped[p.CampaignID], p)
	}
	return grouped
}
