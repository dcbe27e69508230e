package utils

import (
	"github.com/google/uuid"
)

// GenerateID 生成全局唯一 ID，导入导出后依然稳定
func GenerateID() string {
	return uuid.New().String()
}
