package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/studyhdbrh/Study-jee-app/config"
	"github.com/studyhdbrh/Study-jee-app/models"
	"github.com/studyhdbrh/Study-jee-app/services"
	"github.com/studyhdbrh/Study-jee-app/utils"
)

type HolidayController struct {
	Store *services.StudyStore
}

func NewHolidayController(store *services.StudyStore) *HolidayController {
	return &HolidayController{Store: store}
}

// ListHolidays 获取全部假期
func (hc *HolidayController) ListHolidays(c *gin.Context) {
	data := hc.Store.Data()
	c.JSON(http.StatusOK, gin.H{"holidays": data.Holidays})
}

// RemainingHolidays 获取当月剩余假期额度
func (hc *HolidayController) RemainingHolidays(c *gin.Context) {
	c.JSON(http.StatusOK, models.RemainingHolidaysResponse{
		Remaining: hc.Store.RemainingHolidays(),
		Quota:     services.HolidayQuota,
	})
}

// CheckHoliday 查询指定日期是否为假期
func (hc *HolidayController) CheckHoliday(c *gin.Context) {
	date := c.Query("date")
	if !utils.IsValidDate(date) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的日期参数"})
		return
	}

	c.JSON(http.StatusOK, hc.Store.IsHoliday(date))
}

// CreateHoliday 创建假期
// 额度与重复日期在写入前检查，写入操作本身不再校验
func (hc *HolidayController) CreateHoliday(c *gin.Context) {
	var req models.HolidayCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !utils.IsValidDate(req.Date) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的日期格式，应为 YYYY-MM-DD"})
		return
	}

	// 检查当月剩余额度
	remaining := hc.Store.RemainingHolidays()
	value := 1.0
	if req.IsHalfDay {
		value = 0.5
	}
	if remaining < value {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("本月假期额度不足，仅剩 %g 天", remaining),
		})
		return
	}

	// 同一天最多一个假期
	if status := hc.Store.IsHoliday(req.Date); status.IsHoliday {
		c.JSON(http.StatusConflict, gin.H{"error": "该日期已安排假期"})
		return
	}

	holiday := hc.Store.AddHoliday(req.ToHoliday())
	config.Logger.Infow("创建假期", "holidayID", holiday.ID, "date", holiday.Date, "isHalfDay", holiday.IsHalfDay)
	c.JSON(http.StatusCreated, gin.H{"holiday": holiday})
}

// DeleteHoliday 删除假期，不存在时静默无操作
func (hc *HolidayController) DeleteHoliday(c *gin.Context) {
	hc.Store.RemoveHoliday(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"message": "假期已删除"})
}
