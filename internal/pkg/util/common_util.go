package util

import (
	"regexp"
	"strings"
	"time"

	"gorm.io/datatypes"
)

var slugRegex = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify 生成 URL 友好的 slug，例如 "Brand Awareness" -> "brand-awareness"
func Slugify(s string) string {
	slug := slugRegex.ReplaceAllString(strings.ToLower(strings.TrimSpace(s)), "-")
	return strings.Trim(slug, "-")
}

// ParseDate 解析 YYYY-MM-DD 为 datatypes.Date
func ParseDate(s string) (datatypes.Date, error) {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return datatypes.Date{}, err
	}
	return datatypes.Date(t), nil
}

// FormatDate 以 YYYY-MM-DD 输出
func FormatDate(d datatypes.Date) string {
	return time.Time(d).Format(time.DateOnly)
}
