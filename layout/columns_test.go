package layout

import "testing"

func TestReplacementColumns_Classify(t *testing.T) {
	table := ReplacementColumns()

	tests := []struct {
		name   string
		x      float64
		want   Column
		wantOK bool
	}{
		{"group lower bound", 35, ColumnGroup, true},
		{"group inside", 50, ColumnGroup, true},
		{"group upper bound is pair", 70, ColumnPair, true},
		{"pair inside", 82, ColumnPair, true},
		{"subject inside", 150, ColumnSubjectOriginal, true},
		{"change lower bound", 250, ColumnChange, true},
		{"change inside", 420, ColumnChange, true},
		{"room inside", 505, ColumnRoom, true},
		{"room upper bound", 510, "", false},
		{"left margin", 10, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := table.Classify(tt.x)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("Classify(%v) = (%q, %v), want (%q, %v)", tt.x, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestScheduleColumns_FirstMatchWins(t *testing.T) {
	table := ScheduleColumns()

	tests := []struct {
		x    float64
		want Column
	}{
		{-2, ColumnDay},
		{43, ColumnDay},
		{89, ""},
		{90, ColumnP1},
		{175, ColumnP1}, // p1 and p2 overlap on [170, 180)
		{180, ColumnP2},
		{255, ColumnP2},
		{335, ColumnP3},
		{415, ColumnP4},
		{499, ColumnP5},
		{500, ""},
	}

	for _, tt := range tests {
		got, _ := table.Classify(tt.x)
		if got != tt.want {
			t.Errorf("Classify(%v) = %q, want %q", tt.x, got, tt.want)
		}
	}
}

func TestColumnTable_HalfOpenRanges(t *testing.T) {
	for _, table := range []ColumnTable{ReplacementColumns(), ScheduleColumns()} {
		for _, r := range table.Ranges() {
			mid := (r.Min + r.Max) / 2
			if !r.Contains(mid) {
				t.Errorf("%s: range should contain midpoint %v", r.Column, mid)
			}
			if r.Contains(r.Max) {
				t.Errorf("%s: range should not contain its upper bound %v", r.Column, r.Max)
			}
		}
	}
}

func TestColumnTable_RangesReturnsCopy(t *testing.T) {
	table := ReplacementColumns()
	ranges := table.Ranges()
	ranges[0].Min = 1000

	r, ok := ReplacementColumns().Range(ColumnGroup)
	if !ok {
		t.Fatal("group range not found")
	}
	if r.Min != 35 {
		t.Errorf("static table was modified through Ranges(): Min = %v", r.Min)
	}
}

func TestColumnTable_Overlaps(t *testing.T) {
	if got := ReplacementColumns().Overlaps(); len(got) != 0 {
		t.Errorf("replacement columns overlaps = %v, want none", got)
	}

	got := ScheduleColumns().Overlaps()
	if len(got) != 4 {
		t.Fatalf("schedule columns overlaps = %v, want 4 neighbouring pairs", got)
	}
	if got[0] != [2]Column{ColumnP1, ColumnP2} {
		t.Errorf("first overlap = %v, want [p1 p2]", got[0])
	}
}
