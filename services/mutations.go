package services

import (
	"encoding/json"
	"errors"

	"github.com/studyhdbrh/Study-jee-app/models"
)

// 所有变更操作都是纯值变换：输入当前聚合，返回变更后的新聚合，
// 绝不原地修改共享切片，调用方持有的旧聚合保持不变

// UpdateUser 整体替换用户资料
func UpdateUser(data models.StudyData, user models.User) models.StudyData {
	data.User = user
	return data
}

// AddTask 追加任务，ID 由调用方预先分配
func AddTask(data models.StudyData, task models.Task) models.StudyData {
	tasks := make([]models.Task, 0, len(data.Tasks)+1)
	tasks = append(tasks, data.Tasks...)
	data.Tasks = append(tasks, task)
	return data
}

// UpdateTask 合并部分字段到指定任务，任务不存在时为无操作
func UpdateTask(data models.StudyData, taskID string, patch models.TaskPatch) models.StudyData {
	tasks := make([]models.Task, len(data.Tasks))
	for i, task := range data.Tasks {
		if task.ID == taskID {
			task = patch.ApplyTo(task)
		}
		tasks[i] = task
	}
	data.Tasks = tasks
	return data
}

// RemoveTask 删除指定任务，任务不存在时为无操作
func RemoveTask(data models.StudyData, taskID string) models.StudyData {
	tasks := make([]models.Task, 0, len(data.Tasks))
	for _, task := range data.Tasks {
		if task.ID != taskID {
			tasks = append(tasks, task)
		}
	}
	data.Tasks = tasks
	return data
}

// MoveTaskToBacklog 将任务移入积压区：记录原计划日期，日期改为今天
func MoveTaskToBacklog(data models.StudyData, taskID string, today string) models.StudyData {
	tasks := make([]models.Task, len(data.Tasks))
	for i, task := range data.Tasks {
		if task.ID == taskID {
			task.IsBacklog = true
			task.OriginalDate = task.Date
			task.Date = today
		}
		tasks[i] = task
	}
	data.Tasks = tasks
	return data
}

// AddScheduleSlot 追加课表时间段，ID 由调用方预先分配
func AddScheduleSlot(data models.StudyData, slot models.ScheduleTimeSlot) models.StudyData {
	schedule := make([]models.ScheduleTimeSlot, 0, len(data.Schedule)+1)
	schedule = append(schedule, data.Schedule...)
	data.Schedule = append(schedule, slot)
	return data
}

// UpdateScheduleSlot 合并部分字段到指定时间段，不存在时为无操作
func UpdateScheduleSlot(data models.StudyData, slotID string, patch models.SlotPatch) models.StudyData {
	schedule := make([]models.ScheduleTimeSlot, len(data.Schedule))
	for i, slot := range data.Schedule {
		if slot.ID == slotID {
			slot = patch.ApplyTo(slot)
		}
		schedule[i] = slot
	}
	data.Schedule = schedule
	return data
}

// RemoveScheduleSlot 删除指定时间段，不存在时为无操作
func RemoveScheduleSlot(data models.StudyData, slotID string) models.StudyData {
	schedule := make([]models.ScheduleTimeSlot, 0, len(data.Schedule))
	for _, slot := range data.Schedule {
		if slot.ID != slotID {
			schedule = append(schedule, slot)
		}
	}
	data.Schedule = schedule
	return data
}

// AddHoliday 追加假期，额度与重复日期检查由调用方在写入前完成
func AddHoliday(data models.StudyData, holiday models.Holiday) models.StudyData {
	holidays := make([]models.Holiday, 0, len(data.Holidays)+1)
	holidays = append(holidays, data.Holidays...)
	data.Holidays = append(holidays, holiday)
	return data
}

// RemoveHoliday 删除指定假期，不存在时为无操作
func RemoveHoliday(data models.StudyData, holidayID string) models.StudyData {
	holidays := make([]models.Holiday, 0, len(data.Holidays))
	for _, holiday := range data.Holidays {
		if holiday.ID != holidayID {
			holidays = append(holidays, holiday)
		}
	}
	data.Holidays = holidays
	return data
}

// RecordStudySession 追加学习时段并增量更新当日进度，随后重算 streak
func RecordStudySession(data models.StudyData, session models.StudySession, today string) models.StudyData {
	sessions := make([]models.StudySession, 0, len(data.StudySessions)+1)
	sessions = append(sessions, data.StudySessions...)
	data.StudySessions = append(sessions, session)

	// 找到或创建当日进度行并累加时长
	progress := make([]models.DailyProgress, len(data.DailyProgress))
	copy(progress, data.DailyProgress)
	found := false
	for i, row := range progress {
		if row.Date == session.Date {
			row.TotalMinutes += session.Duration
			row.Subjects = row.Subjects.Add(session.Subject, session.Duration)
			progress[i] = row
			found = true
			break
		}
	}
	if !found {
		progress = append(progress, models.DailyProgress{
			Date:         session.Date,
			TotalMinutes: session.Duration,
			Subjects:     models.SubjectProgress{}.Add(session.Subject, session.Duration),
		})
	}
	data.DailyProgress = progress

	return RecalculateStreak(data, today)
}

// ImportTasks 按顺序追加一批任务，用于批量计划导入
func ImportTasks(data models.StudyData, tasks []models.Task) models.StudyData {
	for _, task := range tasks {
		data = AddTask(data, task)
	}
	return data
}

// ParseImportedData 解析导出的 JSON 文档并做结构校验，
// 失败时返回错误，调用方保持原聚合不变
func ParseImportedData(raw string) (models.StudyData, error) {
	// 先探测必要字段是否存在
	var probe struct {
		User  *models.User   `json:"user"`
		Tasks *[]models.Task `json:"tasks"`
	}
	if err := json.Unmarshal([]byte(raw), &probe); err != nil {
		return models.StudyData{}, err
	}
	if probe.User == nil || probe.Tasks == nil {
		return models.StudyData{}, errors.New("数据格式无效：缺少 user 或 tasks 字段")
	}

	var data models.StudyData
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		return models.StudyData{}, err
	}
	return data, nil
}
