package models

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestSubjectTypeNullRoundTrip(t *testing.T) {
	// 无学科任务序列化为 subject: null，与前端存储格式一致
	task := Task{ID: "t1", Content: "Revision", Date: "2024-03-06"}

	raw, err := json.Marshal(task)
	if err != nil {
		t.Fatalf("序列化失败: %v", err)
	}
	var asMap map[string]interface{}
	if err := json.Unmarshal(raw, &asMap); err != nil {
		t.Fatalf("反序列化失败: %v", err)
	}
	if value, ok := asMap["subject"]; !ok || value != nil {
		t.Errorf("subject 应序列化为 null: %v", asMap["subject"])
	}

	var restored Task
	if err := json.Unmarshal(raw, &restored); err != nil {
		t.Fatalf("反序列化失败: %v", err)
	}
	if restored.Subject != SubjectNone {
		t.Errorf("subject = %q, 期望空", restored.Subject)
	}
}

func TestSubjectTypeValueRoundTrip(t *testing.T) {
	for _, subject := range []SubjectType{SubjectPhysics, SubjectChemistry, SubjectMathematics} {
		raw, err := json.Marshal(subject)
		if err != nil {
			t.Fatalf("序列化失败: %v", err)
		}
		var restored SubjectType
		if err := json.Unmarshal(raw, &restored); err != nil {
			t.Fatalf("反序列化失败: %v", err)
		}
		if restored != subject {
			t.Errorf("往返后 subject = %q, 期望 %q", restored, subject)
		}
	}
}

func TestDefaultStudyDataJSONShape(t *testing.T) {
	raw, err := json.Marshal(DefaultStudyData())
	if err != nil {
		t.Fatalf("序列化失败: %v", err)
	}

	var asMap map[string]interface{}
	if err := json.Unmarshal(raw, &asMap); err != nil {
		t.Fatalf("反序列化失败: %v", err)
	}
	for _, key := range []string{"user", "tasks", "schedule", "holidays", "studySessions", "dailyProgress", "streak"} {
		if _, ok := asMap[key]; !ok {
			t.Errorf("缺少字段 %q", key)
		}
	}

	// 空集合序列化为 []，而不是 null
	if tasks, ok := asMap["tasks"].([]interface{}); !ok || tasks == nil {
		t.Errorf("tasks 应为空数组: %v", asMap["tasks"])
	}

	var restored StudyData
	if err := json.Unmarshal(raw, &restored); err != nil {
		t.Fatalf("反序列化失败: %v", err)
	}
	if !reflect.DeepEqual(restored, DefaultStudyData()) {
		t.Errorf("初始聚合往返后不一致: %+v", restored)
	}
}

func TestTaskPatchApplyTo(t *testing.T) {
	task := Task{ID: "t1", Content: "old", Date: "2024-03-01", Subject: SubjectPhysics}

	content := "new"
	completed := true
	patched := (&TaskPatch{Content: &content, Completed: &completed}).ApplyTo(task)

	if patched.Content != "new" || !patched.Completed {
		t.Errorf("补丁未生效: %+v", patched)
	}
	if patched.Date != "2024-03-01" || patched.Subject != SubjectPhysics || patched.ID != "t1" {
		t.Errorf("未指定字段被改动: %+v", patched)
	}

	// 空补丁等于无操作
	if got := (&TaskPatch{}).ApplyTo(task); !reflect.DeepEqual(got, task) {
		t.Errorf("空补丁应为无操作: %+v", got)
	}
}
