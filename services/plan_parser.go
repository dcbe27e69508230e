package services

import (
	"fmt"
	"strings"

	"github.com/studyhdbrh/Study-jee-app/models"
	"github.com/studyhdbrh/Study-jee-app/utils"
)

// ParsePlans 解析批量计划文本，格式为 |日期|任务1|任务2|...|
// 任何一行日期格式错误都会使整个解析失败，不产生任何任务
func ParsePlans(text string) ([]models.Task, error) {
	var tasks []models.Task

	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}

		// 按 | 切分并丢弃空段
		var parts []string
		for _, part := range strings.Split(line, "|") {
			if strings.TrimSpace(part) != "" {
				parts = append(parts, part)
			}
		}
		// 只有日期没有任务的行直接跳过
		if len(parts) < 2 {
			continue
		}

		date := strings.TrimSpace(parts[0])
		if !utils.IsValidDate(date) {
			return nil, fmt.Errorf("无效的日期格式: %s，应为 YYYY-MM-DD", date)
		}

		for _, part := range parts[1:] {
			content := strings.TrimSpace(part)
			if content == "" {
				continue
			}
			tasks = append(tasks, models.Task{
				Content:   content,
				Date:      date,
				Completed: false,
				Subject:   inferSubject(content),
				IsBacklog: false,
			})
		}
	}

	return tasks, nil
}

// inferSubject 按固定优先级对任务描述做大小写无关的子串匹配
func inferSubject(content string) models.SubjectType {
	lower := strings.ToLower(content)
	switch {
	case strings.Contains(lower, "physics"):
		return models.SubjectPhysics
	case strings.Contains(lower, "chem"):
		return models.SubjectChemistry
	case strings.Contains(lower, "math"):
		return models.SubjectMathematics
	}
	return models.SubjectNone
}
