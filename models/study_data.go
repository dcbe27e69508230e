package models

import (
	"bytes"
	"encoding/json"
)

// SubjectType 学科类型
type SubjectType string

const (
	SubjectPhysics     SubjectType = "physics"
	SubjectChemistry   SubjectType = "chemistry"
	SubjectMathematics SubjectType = "mathematics"
	// SubjectNone 表示任务未关联学科，序列化为 null
	SubjectNone SubjectType = ""
)

var jsonNull = []byte("null")

// MarshalJSON 空学科序列化为 null，与前端存储格式保持一致
func (s SubjectType) MarshalJSON() ([]byte, error) {
	if s == SubjectNone {
		return jsonNull, nil
	}
	return json.Marshal(string(s))
}

func (s *SubjectType) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, jsonNull) {
		*s = SubjectNone
		return nil
	}
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*s = SubjectType(str)
	return nil
}

// IsValid 校验学科取值
func (s SubjectType) IsValid() bool {
	switch s {
	case SubjectPhysics, SubjectChemistry, SubjectMathematics:
		return true
	}
	return false
}

// User 用户资料，无身份认证语义
type User struct {
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	ProfileImage *string `json:"profileImage"`
}

// Task 学习任务
type Task struct {
	ID        string      `json:"id"`
	Content   string      `json:"content"`
	Date      string      `json:"date"` // YYYY-MM-DD
	Completed bool        `json:"completed"`
	Subject   SubjectType `json:"subject"`
	IsBacklog bool        `json:"isBacklog"`
	// OriginalDate 仅在任务被移入积压区时存在，保存原计划日期
	OriginalDate string `json:"originalDate,omitempty"`
}

// ScheduleTimeSlot 课表时间段，day 为星期名（周期性）或具体日期（单次）
type ScheduleTimeSlot struct {
	ID        string      `json:"id"`
	StartTime string      `json:"startTime"` // HH:MM
	EndTime   string      `json:"endTime"`   // HH:MM
	Subject   SubjectType `json:"subject"`
	Day       string      `json:"day"` // "monday" 等，或 "2023-07-12"
}

// Holiday 假期，半天假期的 startTime 表示下午/晚间开始休息的时间
type Holiday struct {
	ID        string `json:"id"`
	Date      string `json:"date"`
	IsHalfDay bool   `json:"isHalfDay"`
	StartTime string `json:"startTime,omitempty"`
}

// StudySession 学习时段记录，只追加不修改
type StudySession struct {
	ID       string      `json:"id"`
	Subject  SubjectType `json:"subject"`
	Duration int         `json:"duration"` // 分钟
	Date     string      `json:"date"`
}

// SubjectProgress 各学科学习时长（分钟）
type SubjectProgress struct {
	Physics     int `json:"physics"`
	Chemistry   int `json:"chemistry"`
	Mathematics int `json:"mathematics"`
}

// Minutes 返回指定学科的时长
func (p SubjectProgress) Minutes(subject SubjectType) int {
	switch subject {
	case SubjectPhysics:
		return p.Physics
	case SubjectChemistry:
		return p.Chemistry
	case SubjectMathematics:
		return p.Mathematics
	}
	return 0
}

// Add 返回指定学科累加后的进度
func (p SubjectProgress) Add(subject SubjectType, minutes int) SubjectProgress {
	switch subject {
	case SubjectPhysics:
		p.Physics += minutes
	case SubjectChemistry:
		p.Chemistry += minutes
	case SubjectMathematics:
		p.Mathematics += minutes
	}
	return p
}

// DailyProgress 每日学习进度汇总，每个有学习记录的日期一行
type DailyProgress struct {
	Date         string          `json:"date"`
	TotalMinutes int             `json:"totalMinutes"`
	Subjects     SubjectProgress `json:"subjects"`
}

// Streak 连续学习天数
type Streak struct {
	Current       int     `json:"current"`
	LastStudyDate *string `json:"lastStudyDate"`
}

// StudyData 学习数据聚合根，持久化与"事务"的唯一单位
type StudyData struct {
	User          User               `json:"user"`
	Tasks         []Task             `json:"tasks"`
	Schedule      []ScheduleTimeSlot `json:"schedule"`
	Holidays      []Holiday          `json:"holidays"`
	StudySessions []StudySession     `json:"studySessions"`
	DailyProgress []DailyProgress    `json:"dailyProgress"`
	Streak        Streak             `json:"streak"`
}

// DefaultStudyData 返回初始聚合结构
func DefaultStudyData() StudyData {
	return StudyData{
		User: User{
			Name:  "User Name",
			Email: "user@example.com",
		},
		Tasks:         []Task{},
		Schedule:      []ScheduleTimeSlot{},
		Holidays:      []Holiday{},
		StudySessions: []StudySession{},
		DailyProgress: []DailyProgress{},
		Streak: Streak{
			Current:       0,
			LastStudyDate: nil,
		},
	}
}
