package storage

import (
	"context"
	"encoding/json"

	"github.com/go-redis/redis/v8"

	"github.com/studyhdbrh/Study-jee-app/config"
	"github.com/studyhdbrh/Study-jee-app/models"
)

// RedisGateway 基于 Redis 单键的持久化网关
type RedisGateway struct {
	client *redis.Client
	ctx    context.Context
}

// NewRedisGateway 创建 Redis 网关
func NewRedisGateway(client *redis.Client) *RedisGateway {
	return &RedisGateway{
		client: client,
		ctx:    context.Background(),
	}
}

// Load 读取聚合，键不存在或内容损坏时回退到默认聚合并回写
func (g *RedisGateway) Load() models.StudyData {
	raw, err := g.client.Get(g.ctx, StorageKey).Result()
	if err == nil {
		var data models.StudyData
		if err := json.Unmarshal([]byte(raw), &data); err == nil {
			return data
		}
		config.Logger.Errorw("Redis学习数据解析失败，使用初始数据", "key", StorageKey, "error", err)
	} else if err != redis.Nil {
		config.Logger.Errorw("Redis学习数据读取失败，使用初始数据", "key", StorageKey, "error", err)
	}

	initial := models.DefaultStudyData()
	if err := g.Save(initial); err != nil {
		config.Logger.Errorw("Redis初始数据写入失败", "key", StorageKey, "error", err)
	}
	return initial
}

// Save 整体覆盖写入
func (g *RedisGateway) Save(data models.StudyData) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return g.client.Set(g.ctx, StorageKey, raw, 0).Err()
}

// Clear 删除存储键
func (g *RedisGateway) Clear() error {
	return g.client.Del(g.ctx, StorageKey).Err()
}
