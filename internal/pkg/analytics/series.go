package analytics

import (
	"CampaignLens/internal/model"
	"math"
	"strconv"
	"time"
)

const SeriesLabelLayout = "Jan 02"

// PostSeries 活动详情页图表数据，各切片按帖子顺序一一对应
type PostSeries struct {
	Labels      []string
	Impressions []int64
	Clicks      []int64
	Engagement  []float64
}

// BuildPostSeries 生成逐帖时间序列，posts 需已按发布日期排序
func BuildPostSeries(posts []*model.Post) *PostSeries {
	s := &PostSeries{
		Labels:      make([]string, 0, len(posts)),
		Impressions: make([]int64, 0, len(posts)),
		Clicks:      make([]int64, 0, len(posts)),
		Engagement:  make([]float64, 0, len(posts)),
	}

	for _, p := range posts {
		postDate := time.Time(p.PostDate)
		if postDate.IsZero() {
			s.Labels = append(s.Labels, "Post "+strconv.FormatUint(p.ID, 10))
		} else {
			s.Labels = append(s.Labels, postDate.Format(SeriesLabelLayout))
		}

		var t Totals
		t.Add(p.Metrics)
		s.Impressions = append(s.Impressions, t.Impressions)
		s.Clicks = append(s.Clicks, t.Clicks)
		s.Engagement = append(s.Engagement, Round(t.EngagementRate(), 3))
	}
	return s
}

// Round 四舍五入到指定小数位
func Round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
