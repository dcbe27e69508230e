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

type DataController struct {
	Store *services.StudyStore
}

func NewDataController(store *services.StudyStore) *DataController {
	return &DataController{Store: store}
}

// ExportData 导出完整数据为 JSON 文件下载
func (dc *DataController) ExportData(c *gin.Context) {
	raw, err := dc.Store.ExportData()
	if err != nil {
		config.Logger.Errorw("数据导出失败", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "数据导出失败"})
		return
	}

	filename := fmt.Sprintf("study-planner-export-%s.json", utils.Today())
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "application/json", []byte(raw))
}

// ImportData 导入完整数据并整体替换聚合，失败时原数据保持不变
func (dc *DataController) ImportData(c *gin.Context) {
	var req models.DataImportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result := dc.Store.ImportData(req.Data)
	if !result.Success {
		config.Logger.Warnw("数据导入失败", "message", result.Message)
		c.JSON(http.StatusBadRequest, result)
		return
	}
	c.JSON(http.StatusOK, result)
}

// ImportPlans 批量导入学习计划，任何一行格式错误都不会创建任务
func (dc *DataController) ImportPlans(c *gin.Context) {
	var req models.PlanImportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result := dc.Store.ImportPlans(req.Text)
	if !result.Success {
		config.Logger.Warnw("计划导入失败", "message", result.Message)
		c.JSON(http.StatusBadRequest, result)
		return
	}
	c.JSON(http.StatusOK, result)
}
