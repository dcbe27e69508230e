package utils

import "testing"

func TestIsValidDate(t *testing.T) {
	cases := []struct {
		date string
		want bool
	}{
		{"2024-01-05", true},
		{"1999-12-31", true},
		{"05-01-2024", false},
		{"2024/01/05", false},
		{"2024-1-5", false},
		{"", false},
		{"2024-01-05x", false},
	}

	for _, tc := range cases {
		if got := IsValidDate(tc.date); got != tc.want {
			t.Errorf("IsValidDate(%q) = %v, 期望 %v", tc.date, got, tc.want)
		}
	}
}

func TestAddDays(t *testing.T) {
	cases := []struct {
		date string
		days int
		want string
	}{
		{"2024-03-06", 0, "2024-03-06"},
		{"2024-03-06", 1, "2024-03-07"},
		{"2024-03-06", -1, "2024-03-05"},
		{"2024-03-31", 1, "2024-04-01"},
		{"2024-02-28", 1, "2024-02-29"}, // 闰年
		{"2024-01-01", -1, "2023-12-31"},
		{"bad-date", 1, "bad-date"},
	}

	for _, tc := range cases {
		if got := AddDays(tc.date, tc.days); got != tc.want {
			t.Errorf("AddDays(%q, %d) = %q, 期望 %q", tc.date, tc.days, got, tc.want)
		}
	}
}

func TestWeekStart(t *testing.T) {
	cases := []struct {
		date string
		want string
	}{
		{"2024-03-06", "2024-03-03"}, // 周三 -> 周日
		{"2024-03-03", "2024-03-03"}, // 周日是一周的第一天
		{"2024-03-09", "2024-03-03"}, // 周六
		{"2024-03-10", "2024-03-10"}, // 下一个周日
	}

	for _, tc := range cases {
		if got := WeekStart(tc.date); got != tc.want {
			t.Errorf("WeekStart(%q) = %q, 期望 %q", tc.date, got, tc.want)
		}
	}
}

func TestSameMonth(t *testing.T) {
	cases := []struct {
		a, b string
		want bool
	}{
		{"2024-03-01", "2024-03-31", true},
		{"2024-03-01", "2024-04-01", false},
		{"2023-03-01", "2024-03-01", false},
		{"bad", "2024-03-01", false},
	}

	for _, tc := range cases {
		if got := SameMonth(tc.a, tc.b); got != tc.want {
			t.Errorf("SameMonth(%q, %q) = %v, 期望 %v", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestGenerateIDUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := GenerateID()
		if id == "" {
			t.Fatal("生成了空 ID")
		}
		if seen[id] {
			t.Fatalf("生成了重复 ID: %s", id)
		}
		seen[id] = true
	}
}
