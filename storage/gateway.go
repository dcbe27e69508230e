package storage

import (
	"github.com/studyhdbrh/Study-jee-app/models"
)

// StorageKey 持久化命名空间，所有实现都只使用这一个键
const StorageKey = "studyPlanner"

// Gateway 持久化网关：聚合整体以 JSON 形式读写
// Load 在无数据或数据损坏时返回默认聚合并回写
type Gateway interface {
	Load() models.StudyData
	Save(data models.StudyData) error
	Clear() error
}
