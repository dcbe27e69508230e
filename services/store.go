package services

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/studyhdbrh/Study-jee-app/models"
	"github.com/studyhdbrh/Study-jee-app/utils"
)

// StudyStore 持有学习数据聚合的唯一入口
// 变更通过纯值变换完成，成功后同步通知全部订阅者（含持久化回写）
// 逻辑上只有一个写者，锁只为 HTTP 层的并发请求兜底
type StudyStore struct {
	mu          sync.RWMutex
	data        models.StudyData
	subscribers []func(models.StudyData)
}

// NewStudyStore 用初始聚合创建存储
func NewStudyStore(initial models.StudyData) *StudyStore {
	return &StudyStore{data: initial}
}

// Subscribe 注册变更订阅者，每次成功变更后按注册顺序同步调用
func (s *StudyStore) Subscribe(fn func(models.StudyData)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

// Data 返回当前聚合快照，调用方只读
func (s *StudyStore) Data() models.StudyData {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data
}

// apply 执行一次变换并通知订阅者
func (s *StudyStore) apply(transform func(models.StudyData) models.StudyData) models.StudyData {
	s.mu.Lock()
	newData := transform(s.data)
	s.data = newData
	subscribers := s.subscribers
	s.mu.Unlock()

	for _, fn := range subscribers {
		fn(newData)
	}
	return newData
}

// UpdateUser 整体替换用户资料
func (s *StudyStore) UpdateUser(user models.User) {
	s.apply(func(data models.StudyData) models.StudyData {
		return UpdateUser(data, user)
	})
}

// AddTask 分配 ID 并追加任务，返回创建的任务
func (s *StudyStore) AddTask(task models.Task) models.Task {
	task.ID = utils.GenerateID()
	s.apply(func(data models.StudyData) models.StudyData {
		return AddTask(data, task)
	})
	return task
}

// UpdateTask 部分更新任务，不存在时静默无操作
func (s *StudyStore) UpdateTask(taskID string, patch models.TaskPatch) {
	s.apply(func(data models.StudyData) models.StudyData {
		return UpdateTask(data, taskID, patch)
	})
}

// RemoveTask 删除任务，不存在时静默无操作
func (s *StudyStore) RemoveTask(taskID string) {
	s.apply(func(data models.StudyData) models.StudyData {
		return RemoveTask(data, taskID)
	})
}

// MoveTaskToBacklog 将任务移入积压区
func (s *StudyStore) MoveTaskToBacklog(taskID string) {
	today := utils.Today()
	s.apply(func(data models.StudyData) models.StudyData {
		return MoveTaskToBacklog(data, taskID, today)
	})
}

// AddScheduleSlot 分配 ID 并追加课表时间段，返回创建的时间段
func (s *StudyStore) AddScheduleSlot(slot models.ScheduleTimeSlot) models.ScheduleTimeSlot {
	slot.ID = utils.GenerateID()
	s.apply(func(data models.StudyData) models.StudyData {
		return AddScheduleSlot(data, slot)
	})
	return slot
}

// UpdateScheduleSlot 部分更新课表时间段
func (s *StudyStore) UpdateScheduleSlot(slotID string, patch models.SlotPatch) {
	s.apply(func(data models.StudyData) models.StudyData {
		return UpdateScheduleSlot(data, slotID, patch)
	})
}

// RemoveScheduleSlot 删除课表时间段
func (s *StudyStore) RemoveScheduleSlot(slotID string) {
	s.apply(func(data models.StudyData) models.StudyData {
		return RemoveScheduleSlot(data, slotID)
	})
}

// AddHoliday 分配 ID 并追加假期，返回创建的假期
// 额度与重复日期检查由调用方在写入前通过查询完成
func (s *StudyStore) AddHoliday(holiday models.Holiday) models.Holiday {
	holiday.ID = utils.GenerateID()
	s.apply(func(data models.StudyData) models.StudyData {
		return AddHoliday(data, holiday)
	})
	return holiday
}

// RemoveHoliday 删除假期
func (s *StudyStore) RemoveHoliday(holidayID string) {
	s.apply(func(data models.StudyData) models.StudyData {
		return RemoveHoliday(data, holidayID)
	})
}

// RecordStudySession 记录学习时段：追加日志、更新当日进度、重算 streak
func (s *StudyStore) RecordStudySession(session models.StudySession) models.StudySession {
	session.ID = utils.GenerateID()
	today := utils.Today()
	s.apply(func(data models.StudyData) models.StudyData {
		return RecordStudySession(data, session, today)
	})
	return session
}

// ImportPlans 解析计划文本并批量创建任务，全部成功或全部不生效
func (s *StudyStore) ImportPlans(text string) models.OperationResult {
	tasks, err := ParsePlans(text)
	if err != nil {
		return models.OperationResult{Success: false, Message: err.Error()}
	}

	for i := range tasks {
		tasks[i].ID = utils.GenerateID()
	}
	s.apply(func(data models.StudyData) models.StudyData {
		return ImportTasks(data, tasks)
	})
	return models.OperationResult{
		Success: true,
		Message: fmt.Sprintf("成功导入 %d 条任务", len(tasks)),
	}
}

// ExportData 将整个聚合序列化为带缩进的 JSON 文档
func (s *StudyStore) ExportData() (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// ImportData 解析并整体替换聚合，校验失败时原聚合保持不变
func (s *StudyStore) ImportData(raw string) models.OperationResult {
	parsed, err := ParseImportedData(raw)
	if err != nil {
		return models.OperationResult{Success: false, Message: err.Error()}
	}

	s.apply(func(models.StudyData) models.StudyData {
		return parsed
	})
	return models.OperationResult{Success: true, Message: "数据导入成功"}
}

// TodaysTasks 返回今天的非积压任务
func (s *StudyStore) TodaysTasks() []models.Task {
	return TodaysTasks(s.Data(), utils.Today())
}

// UpcomingTasks 返回从今天起 days 天内的非积压任务
func (s *StudyStore) UpcomingTasks(days int) []models.Task {
	return UpcomingTasks(s.Data(), utils.Today(), days)
}

// BacklogTasks 返回全部积压任务
func (s *StudyStore) BacklogTasks() []models.Task {
	return BacklogTasks(s.Data())
}

// RemainingHolidays 返回当月剩余假期额度
func (s *StudyStore) RemainingHolidays() float64 {
	return RemainingHolidays(s.Data(), utils.Today())
}

// CurrentStudyTimeForSubject 返回指定学科本周学习总分钟数
func (s *StudyStore) CurrentStudyTimeForSubject(subject models.SubjectType) int {
	return CurrentStudyTimeForSubject(s.Data(), subject, utils.Today())
}

// IsHoliday 返回指定日期的假期状态
func (s *StudyStore) IsHoliday(date string) models.HolidayStatus {
	return IsHoliday(s.Data(), date)
}
