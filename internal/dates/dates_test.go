package dates

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2024-03-15", "2024-03-15"},
		{"2024-3-5", "2024-03-05"},
		{"15-03-2024", "2024-03-15"},
		{"5-3-2024", "2024-03-05"},
		{"15/03/2024", "2024-03-15"},
		{"2024/03/15", "2024-03-15"},
		{"2024-03-15T10:30:00Z", "2024-03-15"},
		{" 2024-03-15 ", "2024-03-15"},
		{"yesterday", "yesterday"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestMonthKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2024-03-15", "2024-03"},
		{"15-03-2024", "2024-03"},
		{"31/12/2023", "2023-12"},
		{"2024-03", "2024-03"},
		{"03-2024", "2024-03"},
		{"around 2024-07-99", "2024-07"},
		{"2024-13", Undated},
		{"sometime", Undated},
		{"", Undated},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := MonthKey(tt.in); got != tt.want {
				t.Errorf("MonthKey(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCompare(t *testing.T) {
	if Compare("14-03-2024", "2024-03-15") >= 0 {
		t.Error("expected day-first 14 March before year-first 15 March")
	}
	if Compare("2024-03-15", "15/03/2024") != 0 {
		t.Error("expected equal dates in different encodings to compare equal")
	}
	if Compare("garbage", "2024-01-01") <= 0 {
		t.Error("expected unparseable date to sort after a valid one")
	}
}

func TestCompareMonthKeys(t *testing.T) {
	if CompareMonthKeys("2024-03", "2024-02") >= 0 {
		t.Error("expected newer month first")
	}
	if CompareMonthKeys(Undated, "2020-01") <= 0 {
		t.Error("expected undated bucket last")
	}
}
