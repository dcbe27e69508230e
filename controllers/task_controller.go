package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/studyhdbrh/Study-jee-app/config"
	"github.com/studyhdbrh/Study-jee-app/models"
	"github.com/studyhdbrh/Study-jee-app/services"
)

type TaskController struct {
	Store *services.StudyStore
}

func NewTaskController(store *services.StudyStore) *TaskController {
	return &TaskController{Store: store}
}

// ListTasks 获取全部任务
func (tc *TaskController) ListTasks(c *gin.Context) {
	data := tc.Store.Data()
	c.JSON(http.StatusOK, gin.H{"tasks": data.Tasks})
}

// TodaysTasks 获取今天的非积压任务
func (tc *TaskController) TodaysTasks(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"tasks": tc.Store.TodaysTasks()})
}

// UpcomingTasks 获取未来 days 天内（含今天）的非积压任务
func (tc *TaskController) UpcomingTasks(c *gin.Context) {
	days := 7
	if daysStr := c.Query("days"); daysStr != "" {
		parsed, err := strconv.Atoi(daysStr)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "无效的天数参数"})
			return
		}
		days = parsed
	}

	c.JSON(http.StatusOK, gin.H{"tasks": tc.Store.UpcomingTasks(days)})
}

// BacklogTasks 获取全部积压任务
func (tc *TaskController) BacklogTasks(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"tasks": tc.Store.BacklogTasks()})
}

// CreateTask 创建任务
func (tc *TaskController) CreateTask(c *gin.Context) {
	var req models.TaskCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Subject != models.SubjectNone && !req.Subject.IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的学科"})
		return
	}

	task := tc.Store.AddTask(req.ToTask())
	config.Logger.Infow("创建任务", "taskID", task.ID, "date", task.Date)
	c.JSON(http.StatusCreated, gin.H{"task": task})
}

// UpdateTask 部分更新任务，任务不存在时静默无操作
func (tc *TaskController) UpdateTask(c *gin.Context) {
	var patch models.TaskPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tc.Store.UpdateTask(c.Param("id"), patch)
	c.JSON(http.StatusOK, gin.H{"message": "任务已更新"})
}

// DeleteTask 删除任务，任务不存在时静默无操作
func (tc *TaskController) DeleteTask(c *gin.Context) {
	tc.Store.RemoveTask(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"message": "任务已删除"})
}

// MoveToBacklog 将任务移入积压区
func (tc *TaskController) MoveToBacklog(c *gin.Context) {
	tc.Store.MoveTaskToBacklog(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"message": "任务已移入积压区"})
}
