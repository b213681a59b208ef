package analytics

import (
	"strconv"
	"strings"
	"time"
)

// DateFilterLayout 日期筛选参数格式 YYYY-MM-DD
const DateFilterLayout = time.DateOnly

// looseDateLayout 月、日允许不补零，如 2024-3-5
const looseDateLayout = "2006-1-2"

// Filter 报表筛选条件，原始字符串会原样回显
type Filter struct {
	RawChannel   string
	RawStartDate string
	RawEndDate   string

	ChannelID *uint64
	// ChannelInvalid 为 true 时结果集必为空
	ChannelInvalid bool
	StartDate      *time.Time
	EndDate        *time.Time
}

// ParseFilter 解析筛选参数，非法日期静默忽略
func ParseFilter(channel, startDate, endDate string) Filter {
	f := Filter{
		RawChannel:   channel,
		RawStartDate: startDate,
		RawEndDate:   endDate,
	}

	if channel != "" {
		id, err := strconv.ParseUint(strings.TrimSpace(channel), 10, 64)
		if err != nil {
			f.ChannelInvalid = true
		} else {
			f.ChannelID = &id
		}
	}

	f.StartDate = ParseDate(startDate)
	f.EndDate = ParseDate(endDate)
	return f
}

// ParseDate 解析 YYYY-MM-DD，月日可不补零；空串或非法时返回 nil
func ParseDate(raw string) *time.Time {
	if raw == "" {
		return nil
	}
	for _, layout := range []string{DateFilterLayout, looseDateLayout} {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t
		}
	}
	return nil
}

// StartDateIgnored 提供了开始日期但无法解析
func (f Filter) StartDateIgnored() bool {
	return f.RawStartDate != "" && f.StartDate == nil
}

// EndDateIgnored 提供了结束日期但无法解析
func (f Filter) EndDateIgnored() bool {
	return f.RawEndDate != "" && f.EndDate == nil
}
