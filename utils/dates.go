package utils

import (
	"regexp"
	"time"
)

// DateLayout 所有日期统一使用 YYYY-MM-DD 格式
const DateLayout = "2006-01-02"

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Today 返回今天的日期字符串
func Today() string {
	return time.Now().Format(DateLayout)
}

// FormatDate 格式化为日期字符串
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// IsValidDate 校验日期 token 是否为 YYYY-MM-DD 形式
func IsValidDate(date string) bool {
	return datePattern.MatchString(date)
}

// AddDays 对日期字符串加减天数，解析失败时原样返回
func AddDays(date string, days int) string {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return date
	}
	return t.AddDate(0, 0, days).Format(DateLayout)
}

// WeekStart 返回给定日期所在周的周日日期（周以周日为第一天）
func WeekStart(date string) string {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return date
	}
	return t.AddDate(0, 0, -int(t.Weekday())).Format(DateLayout)
}

// SameMonth 判断两个日期字符串是否属于同年同月
func SameMonth(a, b string) bool {
	ta, errA := time.Parse(DateLayout, a)
	tb, errB := time.Parse(DateLayout, b)
	if errA != nil || errB != nil {
		return false
	}
	return ta.Year() == tb.Year() && ta.Month() == tb.Month()
}
