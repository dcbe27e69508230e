package services

import (
	"reflect"
	"testing"

	"github.com/studyhdbrh/Study-jee-app/models"
)

func TestMoveTaskToBacklogPreservesData(t *testing.T) {
	data := models.DefaultStudyData()
	data = AddTask(data, models.Task{
		ID:      "t1",
		Content: "Kinematics problems",
		Date:    "2024-03-01",
		Subject: models.SubjectPhysics,
	})

	got := MoveTaskToBacklog(data, "t1", "2024-03-06")

	task := got.Tasks[0]
	if !task.IsBacklog {
		t.Error("任务应处于积压状态")
	}
	if task.OriginalDate != "2024-03-01" {
		t.Errorf("originalDate = %q, 期望 2024-03-01", task.OriginalDate)
	}
	if task.Date != "2024-03-06" {
		t.Errorf("date = %q, 期望迁移日期 2024-03-06", task.Date)
	}
	// 其余字段保持不变
	if task.ID != "t1" || task.Content != "Kinematics problems" || task.Subject != models.SubjectPhysics || task.Completed {
		t.Errorf("其余字段不应变化: %+v", task)
	}

	// 原聚合不受影响
	if data.Tasks[0].IsBacklog || data.Tasks[0].Date != "2024-03-01" {
		t.Errorf("旧聚合被原地修改: %+v", data.Tasks[0])
	}
}

func TestMoveTaskToBacklogMissingIDIsNoop(t *testing.T) {
	data := AddTask(models.DefaultStudyData(), models.Task{ID: "t1", Content: "x", Date: "2024-03-01"})

	got := MoveTaskToBacklog(data, "missing", "2024-03-06")
	if !reflect.DeepEqual(got.Tasks, data.Tasks) {
		t.Errorf("不存在的任务应为无操作: %+v", got.Tasks)
	}
}

func TestUpdateTaskMergesPartialFields(t *testing.T) {
	data := AddTask(models.DefaultStudyData(), models.Task{
		ID:      "t1",
		Content: "Old content",
		Date:    "2024-03-01",
		Subject: models.SubjectChemistry,
	})

	completed := true
	got := UpdateTask(data, "t1", models.TaskPatch{Completed: &completed})

	task := got.Tasks[0]
	if !task.Completed {
		t.Error("completed 应被更新")
	}
	if task.Content != "Old content" || task.Date != "2024-03-01" || task.Subject != models.SubjectChemistry {
		t.Errorf("未指定的字段不应变化: %+v", task)
	}
}

func TestUpdateTaskMissingIDIsNoop(t *testing.T) {
	data := AddTask(models.DefaultStudyData(), models.Task{ID: "t1", Content: "x", Date: "2024-03-01"})

	completed := true
	got := UpdateTask(data, "missing", models.TaskPatch{Completed: &completed})
	if !reflect.DeepEqual(got.Tasks, data.Tasks) {
		t.Errorf("不存在的任务应为无操作: %+v", got.Tasks)
	}
}

func TestRemoveTask(t *testing.T) {
	data := models.DefaultStudyData()
	data = AddTask(data, models.Task{ID: "t1", Content: "a", Date: "2024-03-01"})
	data = AddTask(data, models.Task{ID: "t2", Content: "b", Date: "2024-03-02"})

	got := RemoveTask(data, "t1")
	if len(got.Tasks) != 1 || got.Tasks[0].ID != "t2" {
		t.Errorf("删除后任务列表错误: %+v", got.Tasks)
	}
	// 删除不存在的任务是无操作
	got = RemoveTask(got, "missing")
	if len(got.Tasks) != 1 {
		t.Errorf("删除不存在的任务应为无操作: %+v", got.Tasks)
	}
}

func TestRecordStudySessionDailyProgressIncrement(t *testing.T) {
	today := "2024-03-06"
	data := models.DefaultStudyData()

	data = RecordStudySession(data, models.StudySession{
		ID: "s1", Subject: models.SubjectPhysics, Duration: 30, Date: today,
	}, today)
	data = RecordStudySession(data, models.StudySession{
		ID: "s2", Subject: models.SubjectChemistry, Duration: 20, Date: today,
	}, today)

	if len(data.DailyProgress) != 1 {
		t.Fatalf("同一天应只有一行进度，实际 %d 行", len(data.DailyProgress))
	}
	row := data.DailyProgress[0]
	if row.TotalMinutes != 50 {
		t.Errorf("totalMinutes = %d, 期望 50", row.TotalMinutes)
	}
	if row.Subjects.Physics != 30 || row.Subjects.Chemistry != 20 || row.Subjects.Mathematics != 0 {
		t.Errorf("学科分钟数错误: %+v", row.Subjects)
	}
	if len(data.StudySessions) != 2 {
		t.Errorf("学习记录应有 2 条，实际 %d", len(data.StudySessions))
	}
}

func TestRecordStudySessionCreatesRowPerDate(t *testing.T) {
	data := models.DefaultStudyData()
	data = RecordStudySession(data, models.StudySession{
		ID: "s1", Subject: models.SubjectMathematics, Duration: 40, Date: "2024-03-05",
	}, "2024-03-06")
	data = RecordStudySession(data, models.StudySession{
		ID: "s2", Subject: models.SubjectMathematics, Duration: 25, Date: "2024-03-06",
	}, "2024-03-06")

	if len(data.DailyProgress) != 2 {
		t.Fatalf("不同日期应各有一行进度，实际 %d 行", len(data.DailyProgress))
	}
}

func TestAddTaskDoesNotMutateOriginal(t *testing.T) {
	data := AddTask(models.DefaultStudyData(), models.Task{ID: "t1", Content: "a", Date: "2024-03-01"})

	got := AddTask(data, models.Task{ID: "t2", Content: "b", Date: "2024-03-02"})
	if len(data.Tasks) != 1 {
		t.Errorf("旧聚合任务数被改变: %d", len(data.Tasks))
	}
	if len(got.Tasks) != 2 {
		t.Errorf("新聚合任务数错误: %d", len(got.Tasks))
	}
}

func TestParseImportedDataValidation(t *testing.T) {
	cases := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"完整数据", `{"user":{"name":"n","email":"e","profileImage":null},"tasks":[]}`, false},
		{"缺少user", `{"tasks":[]}`, true},
		{"user为null", `{"user":null,"tasks":[]}`, true},
		{"缺少tasks", `{"user":{"name":"n","email":"e","profileImage":null}}`, true},
		{"tasks为null", `{"user":{"name":"n","email":"e","profileImage":null},"tasks":null}`, true},
		{"非法JSON", `{not json`, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseImportedData(tc.raw)
			if (err != nil) != tc.wantErr {
				t.Errorf("ParseImportedData(%q) err = %v, wantErr = %v", tc.raw, err, tc.wantErr)
			}
		})
	}
}
