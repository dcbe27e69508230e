package models

// OperationResult 导入类操作的统一结果结构体
type OperationResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// HolidayStatus 假期查询响应结构体
type HolidayStatus struct {
	IsHoliday bool   `json:"isHoliday"`
	IsHalfDay bool   `json:"isHalfDay"`
	StartTime string `json:"startTime,omitempty"`
}

// SubjectTimeResponse 学科本周学习时长响应结构体
type SubjectTimeResponse struct {
	Subject SubjectType `json:"subject"`
	Minutes int         `json:"minutes"`
}

// RemainingHolidaysResponse 当月剩余假期额度响应结构体
type RemainingHolidaysResponse struct {
	Remaining float64 `json:"remaining"`
	Quota     float64 `json:"quota"`
}
