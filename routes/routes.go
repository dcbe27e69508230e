package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/studyhdbrh/Study-jee-app/controllers"
	"github.com/studyhdbrh/Study-jee-app/services"
)

func RegisterRoutes(r *gin.Engine, store *services.StudyStore) {
	userController := controllers.NewUserController(store)
	taskController := controllers.NewTaskController(store)
	scheduleController := controllers.NewScheduleController(store)
	holidayController := controllers.NewHolidayController(store)
	sessionController := controllers.NewSessionController(store)
	dataController := controllers.NewDataController(store)

	// 单用户本地应用，无需认证
	api := r.Group("/api/v1")
	{
		// 用户资料
		api.GET("/user", userController.GetUser)
		api.PUT("/user", userController.UpdateUser)

		// 任务
		api.GET("/tasks", taskController.ListTasks)
		api.GET("/tasks/today", taskController.TodaysTasks)
		api.GET("/tasks/upcoming", taskController.UpcomingTasks)
		api.GET("/tasks/backlog", taskController.BacklogTasks)
		api.POST("/tasks", taskController.CreateTask)
		api.PATCH("/tasks/:id", taskController.UpdateTask)
		api.DELETE("/tasks/:id", taskController.DeleteTask)
		api.POST("/tasks/:id/backlog", taskController.MoveToBacklog)

		// 课表
		api.GET("/schedule", scheduleController.ListSlots)
		api.POST("/schedule", scheduleController.CreateSlot)
		api.PATCH("/schedule/:id", scheduleController.UpdateSlot)
		api.DELETE("/schedule/:id", scheduleController.DeleteSlot)

		// 假期
		api.GET("/holidays", holidayController.ListHolidays)
		api.GET("/holidays/remaining", holidayController.RemainingHolidays)
		api.GET("/holidays/check", holidayController.CheckHoliday)
		api.POST("/holidays", holidayController.CreateHoliday)
		api.DELETE("/holidays/:id", holidayController.DeleteHoliday)

		// 学习时段与进度
		api.POST("/sessions", sessionController.RecordSession)
		api.GET("/sessions/subject/:subject/week", sessionController.SubjectWeekTime)
		api.GET("/streak", sessionController.GetStreak)
		api.GET("/progress/daily", sessionController.DailyProgress)

		// 数据导入导出
		api.GET("/data/export", dataController.ExportData)
		api.POST("/data/import", dataController.ImportData)
		api.POST("/plans/import", dataController.ImportPlans)
	}

	// 测试路由
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
}
