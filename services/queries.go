package services

import (
	"github.com/studyhdbrh/Study-jee-app/models"
	"github.com/studyhdbrh/Study-jee-app/utils"
)

// HolidayQuota 每月假期额度（天）
const HolidayQuota = 7.0

// 派生查询都是只读的纯函数，随用随算，不做任何缓存

// TodaysTasks 返回今天的非积压任务
func TodaysTasks(data models.StudyData, today string) []models.Task {
	tasks := []models.Task{}
	for _, task := range data.Tasks {
		if task.Date == today && !task.IsBacklog {
			tasks = append(tasks, task)
		}
	}
	return tasks
}

// UpcomingTasks 返回从今天起 days 天内（含今天）的非积压任务
func UpcomingTasks(data models.StudyData, today string, days int) []models.Task {
	upcoming := make(map[string]bool, days)
	for i := 0; i < days; i++ {
		upcoming[utils.AddDays(today, i)] = true
	}

	tasks := []models.Task{}
	for _, task := range data.Tasks {
		if upcoming[task.Date] && !task.IsBacklog {
			tasks = append(tasks, task)
		}
	}
	return tasks
}

// BacklogTasks 返回全部积压任务
func BacklogTasks(data models.StudyData) []models.Task {
	tasks := []models.Task{}
	for _, task := range data.Tasks {
		if task.IsBacklog {
			tasks = append(tasks, task)
		}
	}
	return tasks
}

// RemainingHolidays 返回当月剩余假期额度，半天假期计 0.5
// 越过额度添加的假期会使结果为负，这里不做钳制
func RemainingHolidays(data models.StudyData, today string) float64 {
	used := 0.0
	for _, holiday := range data.Holidays {
		if utils.SameMonth(holiday.Date, today) {
			if holiday.IsHalfDay {
				used += 0.5
			} else {
				used += 1
			}
		}
	}
	return HolidayQuota - used
}

// CurrentStudyTimeForSubject 返回指定学科本周（周日起算）的学习总分钟数
func CurrentStudyTimeForSubject(data models.StudyData, subject models.SubjectType, today string) int {
	weekStart := utils.WeekStart(today)

	total := 0
	for _, session := range data.StudySessions {
		// 日期补零后字典序即时间序
		if session.Subject == subject && session.Date >= weekStart {
			total += session.Duration
		}
	}
	return total
}

// HolidayOnDate 查找指定日期的假期
func HolidayOnDate(data models.StudyData, date string) (models.Holiday, bool) {
	for _, holiday := range data.Holidays {
		if holiday.Date == date {
			return holiday, true
		}
	}
	return models.Holiday{}, false
}

// IsHoliday 返回指定日期的假期状态
func IsHoliday(data models.StudyData, date string) models.HolidayStatus {
	holiday, ok := HolidayOnDate(data, date)
	if !ok {
		return models.HolidayStatus{IsHoliday: false, IsHalfDay: false}
	}
	return models.HolidayStatus{
		IsHoliday: true,
		IsHalfDay: holiday.IsHalfDay,
		StartTime: holiday.StartTime,
	}
}
