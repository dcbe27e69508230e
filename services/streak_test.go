package services

import (
	"testing"

	"github.com/studyhdbrh/Study-jee-app/models"
)

const streakToday = "2024-03-06"

func dataWithSessions(streak models.Streak, dates ...string) models.StudyData {
	data := models.DefaultStudyData()
	data.Streak = streak
	for i, date := range dates {
		data.StudySessions = append(data.StudySessions, models.StudySession{
			ID:       string(rune('a' + i)),
			Subject:  models.SubjectPhysics,
			Duration: 30,
			Date:     date,
		})
	}
	return data
}

func strPtr(s string) *string {
	return &s
}

func TestStreakFirstSession(t *testing.T) {
	data := dataWithSessions(models.Streak{}, streakToday)

	got := RecalculateStreak(data, streakToday).Streak
	if got.Current != 1 {
		t.Errorf("首次记录后 current = %d, 期望 1", got.Current)
	}
	if got.LastStudyDate == nil || *got.LastStudyDate != streakToday {
		t.Errorf("lastStudyDate 错误: %v", got.LastStudyDate)
	}
}

func TestStreakContinuation(t *testing.T) {
	// 昨天学过，今天再记录，连续天数加一
	data := dataWithSessions(
		models.Streak{Current: 3, LastStudyDate: strPtr("2024-03-05")},
		"2024-03-05", streakToday,
	)

	got := RecalculateStreak(data, streakToday).Streak
	if got.Current != 4 {
		t.Errorf("current = %d, 期望 4", got.Current)
	}
}

func TestStreakReset(t *testing.T) {
	// 中断两天以上，重新从 1 开始
	data := dataWithSessions(
		models.Streak{Current: 5, LastStudyDate: strPtr("2024-03-01")},
		"2024-03-01", streakToday,
	)

	got := RecalculateStreak(data, streakToday).Streak
	if got.Current != 1 {
		t.Errorf("current = %d, 期望 1", got.Current)
	}
}

func TestStreakIdempotentRetrigger(t *testing.T) {
	// 同一天第二次记录不改变 streak
	data := dataWithSessions(
		models.Streak{Current: 2, LastStudyDate: strPtr(streakToday)},
		streakToday, streakToday,
	)

	got := RecalculateStreak(data, streakToday).Streak
	if got.Current != 2 {
		t.Errorf("同日重复触发后 current = %d, 期望 2", got.Current)
	}
	if got.LastStudyDate == nil || *got.LastStudyDate != streakToday {
		t.Errorf("lastStudyDate 错误: %v", got.LastStudyDate)
	}
}

func TestStreakUntouchedWhenLatestNotToday(t *testing.T) {
	data := dataWithSessions(
		models.Streak{Current: 2, LastStudyDate: strPtr("2024-03-04")},
		"2024-03-03", "2024-03-04",
	)

	got := RecalculateStreak(data, streakToday).Streak
	if got.Current != 2 || *got.LastStudyDate != "2024-03-04" {
		t.Errorf("最新记录不在今天时 streak 不应变化: %+v", got)
	}
}

func TestStreakUntouchedWhenNoSessions(t *testing.T) {
	data := models.DefaultStudyData()

	got := RecalculateStreak(data, streakToday).Streak
	if got.Current != 0 || got.LastStudyDate != nil {
		t.Errorf("无记录时 streak 不应变化: %+v", got)
	}
}
