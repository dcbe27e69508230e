package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/studyhdbrh/Study-jee-app/models"
	"github.com/studyhdbrh/Study-jee-app/services"
)

type UserController struct {
	Store *services.StudyStore
}

func NewUserController(store *services.StudyStore) *UserController {
	return &UserController{Store: store}
}

// GetUser 获取用户资料
func (uc *UserController) GetUser(c *gin.Context) {
	data := uc.Store.Data()
	c.JSON(http.StatusOK, gin.H{"user": data.User})
}

// UpdateUser 整体替换用户资料，不做字段校验
func (uc *UserController) UpdateUser(c *gin.Context) {
	var user models.User
	if err := c.ShouldBindJSON(&user); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	uc.Store.UpdateUser(user)
	c.JSON(http.StatusOK, gin.H{"user": user})
}
