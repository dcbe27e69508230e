package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/studyhdbrh/Study-jee-app/config"
	"github.com/studyhdbrh/Study-jee-app/models"
	"github.com/studyhdbrh/Study-jee-app/services"
	"github.com/studyhdbrh/Study-jee-app/utils"
)

type SessionController struct {
	Store *services.StudyStore
}

func NewSessionController(store *services.StudyStore) *SessionController {
	return &SessionController{Store: store}
}

// RecordSession 记录一次学习时段，同时更新当日进度与 streak
func (sc *SessionController) RecordSession(c *gin.Context) {
	var req models.SessionCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !req.Subject.IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的学科"})
		return
	}
	if !utils.IsValidDate(req.Date) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的日期格式，应为 YYYY-MM-DD"})
		return
	}

	session := sc.Store.RecordStudySession(req.ToSession())
	config.Logger.Infow("记录学习时段",
		"sessionID", session.ID,
		"subject", session.Subject,
		"duration", session.Duration,
		"date", session.Date,
	)
	c.JSON(http.StatusCreated, gin.H{"session": session})
}

// SubjectWeekTime 获取指定学科本周学习时长
func (sc *SessionController) SubjectWeekTime(c *gin.Context) {
	subject := models.SubjectType(c.Param("subject"))
	if !subject.IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的学科"})
		return
	}

	c.JSON(http.StatusOK, models.SubjectTimeResponse{
		Subject: subject,
		Minutes: sc.Store.CurrentStudyTimeForSubject(subject),
	})
}

// GetStreak 获取当前连续学习天数
func (sc *SessionController) GetStreak(c *gin.Context) {
	data := sc.Store.Data()
	c.JSON(http.StatusOK, gin.H{"streak": data.Streak})
}

// DailyProgress 获取全部每日进度汇总
func (sc *SessionController) DailyProgress(c *gin.Context) {
	data := sc.Store.Data()
	c.JSON(http.StatusOK, gin.H{"dailyProgress": data.DailyProgress})
}
