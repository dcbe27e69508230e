package storage

import (
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/studyhdbrh/Study-jee-app/config"
	"github.com/studyhdbrh/Study-jee-app/models"
)

// plannerSnapshot 聚合快照表，每个命名空间一行
type plannerSnapshot struct {
	Key       string `gorm:"type:varchar(50);primaryKey"`
	Data      string `gorm:"type:longtext"`
	UpdatedAt time.Time
}

// 表名
func (plannerSnapshot) TableName() string {
	return "planner_snapshots"
}

// MySQLGateway 基于 MySQL 快照表的持久化网关
type MySQLGateway struct {
	db *gorm.DB
}

// NewMySQLGateway 创建 MySQL 网关并迁移快照表
func NewMySQLGateway(db *gorm.DB) (*MySQLGateway, error) {
	if err := db.AutoMigrate(&plannerSnapshot{}); err != nil {
		return nil, err
	}
	return &MySQLGateway{db: db}, nil
}

// Load 读取聚合，快照缺失或内容损坏时回退到默认聚合并回写
func (g *MySQLGateway) Load() models.StudyData {
	var snapshot plannerSnapshot
	err := g.db.Where("`key` = ?", StorageKey).First(&snapshot).Error
	if err == nil {
		var data models.StudyData
		if err := json.Unmarshal([]byte(snapshot.Data), &data); err == nil {
			return data
		}
		config.Logger.Errorw("数据库快照解析失败，使用初始数据", "key", StorageKey, "error", err)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		config.Logger.Errorw("数据库快照读取失败，使用初始数据", "key", StorageKey, "error", err)
	}

	initial := models.DefaultStudyData()
	if err := g.Save(initial); err != nil {
		config.Logger.Errorw("数据库初始快照写入失败", "key", StorageKey, "error", err)
	}
	return initial
}

// Save 整体覆盖写入快照行
func (g *MySQLGateway) Save(data models.StudyData) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}
	snapshot := plannerSnapshot{
		Key:       StorageKey,
		Data:      string(raw),
		UpdatedAt: time.Now(),
	}
	// 存在即覆盖
	return g.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&snapshot).Error
}

// Clear 删除快照行
func (g *MySQLGateway) Clear() error {
	return g.db.Where("`key` = ?", StorageKey).Delete(&plannerSnapshot{}).Error
}
