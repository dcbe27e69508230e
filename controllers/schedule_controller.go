package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/studyhdbrh/Study-jee-app/models"
	"github.com/studyhdbrh/Study-jee-app/services"
)

type ScheduleController struct {
	Store *services.StudyStore
}

func NewScheduleController(store *services.StudyStore) *ScheduleController {
	return &ScheduleController{Store: store}
}

// ListSlots 获取全部课表时间段
func (sc *ScheduleController) ListSlots(c *gin.Context) {
	data := sc.Store.Data()
	c.JSON(http.StatusOK, gin.H{"schedule": data.Schedule})
}

// CreateSlot 创建课表时间段
// 时间段之间的重叠不做校验，沿用原有的宽松行为
func (sc *ScheduleController) CreateSlot(c *gin.Context) {
	var req models.SlotCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !req.Subject.IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的学科"})
		return
	}
	// 只在创建时校验起止顺序
	if req.StartTime >= req.EndTime {
		c.JSON(http.StatusBadRequest, gin.H{"error": "开始时间必须早于结束时间"})
		return
	}

	slot := sc.Store.AddScheduleSlot(req.ToSlot())
	c.JSON(http.StatusCreated, gin.H{"slot": slot})
}

// UpdateSlot 部分更新课表时间段，不存在时静默无操作
func (sc *ScheduleController) UpdateSlot(c *gin.Context) {
	var patch models.SlotPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sc.Store.UpdateScheduleSlot(c.Param("id"), patch)
	c.JSON(http.StatusOK, gin.H{"message": "时间段已更新"})
}

// DeleteSlot 删除课表时间段，不存在时静默无操作
func (sc *ScheduleController) DeleteSlot(c *gin.Context) {
	sc.Store.RemoveScheduleSlot(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"message": "时间段已删除"})
}
