package models

// TaskCreateRequest 创建任务请求结构体
type TaskCreateRequest struct {
	Content   string      `json:"content" binding:"required"`
	Date      string      `json:"date" binding:"required"`
	Completed bool        `json:"completed"`
	Subject   SubjectType `json:"subject"`
	IsBacklog bool        `json:"isBacklog"`
}

// ToTask 转换为待插入的任务（ID 由存储层分配）
func (r *TaskCreateRequest) ToTask() Task {
	return Task{
		Content:   r.Content,
		Date:      r.Date,
		Completed: r.Completed,
		Subject:   r.Subject,
		IsBacklog: r.IsBacklog,
	}
}

// TaskPatch 任务部分更新请求结构体，nil 字段不修改
type TaskPatch struct {
	Content      *string      `json:"content"`
	Date         *string      `json:"date"`
	Completed    *bool        `json:"completed"`
	Subject      *SubjectType `json:"subject"`
	IsBacklog    *bool        `json:"isBacklog"`
	OriginalDate *string      `json:"originalDate"`
}

// ApplyTo 将非 nil 字段合并到任务上
func (p *TaskPatch) ApplyTo(task Task) Task {
	if p.Content != nil {
		task.Content = *p.Content
	}
	if p.Date != nil {
		task.Date = *p.Date
	}
	if p.Completed != nil {
		task.Completed = *p.Completed
	}
	if p.Subject != nil {
		task.Subject = *p.Subject
	}
	if p.IsBacklog != nil {
		task.IsBacklog = *p.IsBacklog
	}
	if p.OriginalDate != nil {
		task.OriginalDate = *p.OriginalDate
	}
	return task
}

// SlotCreateRequest 创建课表时间段请求结构体
type SlotCreateRequest struct {
	StartTime string      `json:"startTime" binding:"required"`
	EndTime   string      `json:"endTime" binding:"required"`
	Subject   SubjectType `json:"subject" binding:"required"`
	Day       string      `json:"day" binding:"required"`
}

// ToSlot 转换为待插入的时间段
func (r *SlotCreateRequest) ToSlot() ScheduleTimeSlot {
	return ScheduleTimeSlot{
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
		Subject:   r.Subject,
		Day:       r.Day,
	}
}

// SlotPatch 课表时间段部分更新请求结构体
type SlotPatch struct {
	StartTime *string      `json:"startTime"`
	EndTime   *string      `json:"endTime"`
	Subject   *SubjectType `json:"subject"`
	Day       *string      `json:"day"`
}

// ApplyTo 将非 nil 字段合并到时间段上
func (p *SlotPatch) ApplyTo(slot ScheduleTimeSlot) ScheduleTimeSlot {
	if p.StartTime != nil {
		slot.StartTime = *p.StartTime
	}
	if p.EndTime != nil {
		slot.EndTime = *p.EndTime
	}
	if p.Subject != nil {
		slot.Subject = *p.Subject
	}
	if p.Day != nil {
		slot.Day = *p.Day
	}
	return slot
}

// HolidayCreateRequest 创建假期请求结构体
type HolidayCreateRequest struct {
	Date      string `json:"date" binding:"required"`
	IsHalfDay bool   `json:"isHalfDay"`
	StartTime string `json:"startTime"`
}

// ToHoliday 转换为待插入的假期
func (r *HolidayCreateRequest) ToHoliday() Holiday {
	h := Holiday{
		Date:      r.Date,
		IsHalfDay: r.IsHalfDay,
	}
	// 只有半天假期才保留开始时间
	if r.IsHalfDay {
		h.StartTime = r.StartTime
	}
	return h
}

// SessionCreateRequest 记录学习时段请求结构体
type SessionCreateRequest struct {
	Subject  SubjectType `json:"subject" binding:"required"`
	Duration int         `json:"duration" binding:"required,gt=0"` // 分钟
	Date     string      `json:"date" binding:"required"`
}

// ToSession 转换为待追加的学习时段
func (r *SessionCreateRequest) ToSession() StudySession {
	return StudySession{
		Subject:  r.Subject,
		Duration: r.Duration,
		Date:     r.Date,
	}
}

// PlanImportRequest 批量导入学习计划请求结构体
type PlanImportRequest struct {
	Text string `json:"text" binding:"required"`
}

// DataImportRequest 导入完整数据请求结构体，原文为导出的 JSON 文档
type DataImportRequest struct {
	Data string `json:"data" binding:"required"`
}
