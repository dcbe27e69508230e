package services

import (
	"sort"

	"github.com/studyhdbrh/Study-jee-app/models"
	"github.com/studyhdbrh/Study-jee-app/utils"
)

// RecalculateStreak 在学习记录变化后重新推导连续学习天数
// 只有最新一条记录落在今天时才会改动 streak，同一天重复触发是幂等的
func RecalculateStreak(data models.StudyData, today string) models.StudyData {
	if len(data.StudySessions) == 0 {
		return data
	}

	// 日期为补零的 YYYY-MM-DD，按字符串倒序即按时间倒序
	dates := make([]string, len(data.StudySessions))
	for i, session := range data.StudySessions {
		dates[i] = session.Date
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))

	if dates[0] != today {
		return data
	}

	last := data.Streak.LastStudyDate
	switch {
	case last == nil:
		// 首次记录
		data.Streak = models.Streak{Current: 1, LastStudyDate: &today}
	case *last == utils.AddDays(today, -1):
		// 昨天学过，连续天数加一
		data.Streak = models.Streak{Current: data.Streak.Current + 1, LastStudyDate: &today}
	case *last != today:
		// 中断两天以上，重新开始
		data.Streak = models.Streak{Current: 1, LastStudyDate: &today}
	}
	return data
}
