package storage

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/studyhdbrh/Study-jee-app/config"
	"github.com/studyhdbrh/Study-jee-app/models"
)

// FileGateway 基于单个 JSON 文件的持久化网关，默认实现
type FileGateway struct {
	path string
}

// NewFileGateway 创建文件网关，目录不存在时自动创建
func NewFileGateway(path string) (*FileGateway, error) {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	return &FileGateway{path: path}, nil
}

// Load 读取聚合，文件缺失或内容损坏时回退到默认聚合并回写
func (g *FileGateway) Load() models.StudyData {
	raw, err := os.ReadFile(g.path)
	if err == nil {
		var data models.StudyData
		if err := json.Unmarshal(raw, &data); err == nil {
			return data
		}
		config.Logger.Errorw("学习数据文件解析失败，使用初始数据", "path", g.path, "error", err)
	} else if !os.IsNotExist(err) {
		config.Logger.Errorw("学习数据文件读取失败，使用初始数据", "path", g.path, "error", err)
	}

	initial := models.DefaultStudyData()
	if err := g.Save(initial); err != nil {
		config.Logger.Errorw("初始数据写入失败", "path", g.path, "error", err)
	}
	return initial
}

// Save 整体覆盖写入
func (g *FileGateway) Save(data models.StudyData) error {
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(g.path, raw, 0o644)
}

// Clear 删除数据文件
func (g *FileGateway) Clear() error {
	err := os.Remove(g.path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
