package layout

import (
	"testing"

	"github.com/ttgt/schedparse/model"
)

// makeItem creates a test item at rounded coordinates
func makeItem(txt string, x, y float64) model.Item {
	return model.NewItem(txt, x, y)
}

func TestLineGrouper_Empty(t *testing.T) {
	lines := NewLineGrouper().Group(nil)
	if len(lines) != 0 {
		t.Errorf("Expected 0 lines, got %d", len(lines))
	}
}

func TestLineGrouper_SingleLine(t *testing.T) {
	items := []model.Item{
		makeItem("World", 145, 700),
		makeItem("Hello", 100, 702),
	}

	lines := NewLineGrouper().Group(items)
	if len(lines) != 1 {
		t.Fatalf("Expected 1 line, got %d", len(lines))
	}
	if got := lines[0].Text(); got != "Hello World" {
		t.Errorf("Expected 'Hello World', got '%s'", got)
	}
	if lines[0].Key != 700 {
		t.Errorf("Expected key 700, got %v", lines[0].Key)
	}
}

func TestLineGrouper_TopToBottom(t *testing.T) {
	items := []model.Item{
		makeItem("bottom", 100, 600),
		makeItem("top", 100, 700),
		makeItem("middle", 100, 650),
	}

	lines := NewLineGrouper().Group(items)
	if len(lines) != 3 {
		t.Fatalf("Expected 3 lines, got %d", len(lines))
	}

	expected := []string{"top", "middle", "bottom"}
	for i, want := range expected {
		if got := lines[i].Text(); got != want {
			t.Errorf("Line %d: expected '%s', got '%s'", i, want, got)
		}
	}
}

func TestLineGrouper_NearestLineWins(t *testing.T) {
	// 104 is within 5 of both 100 and 107; 107 is nearer
	items := []model.Item{
		makeItem("a", 10, 100),
		makeItem("b", 10, 107),
		makeItem("c", 20, 104),
	}

	lines := NewLineGrouper().Group(items)
	if len(lines) != 2 {
		t.Fatalf("Expected 2 lines, got %d", len(lines))
	}
	if got := lines[0].Text(); got != "b c" {
		t.Errorf("Expected 'b c' on the upper line, got '%s'", got)
	}
}

func TestLineGrouper_ToleranceBoundary(t *testing.T) {
	items := []model.Item{
		makeItem("a", 10, 100),
		makeItem("b", 20, 105),
	}

	inclusive := NewLineGrouper().Group(items)
	if len(inclusive) != 1 {
		t.Errorf("inclusive tolerance: expected 1 line, got %d", len(inclusive))
	}

	items[1] = makeItem("b", 20, 110)
	exclusive := NewLineGrouperWithConfig(LineConfig{Tolerance: 10, Exclusive: true}).Group(items)
	if len(exclusive) != 2 {
		t.Errorf("exclusive tolerance: expected 2 lines, got %d", len(exclusive))
	}
}

func TestLineGrouper_RawXOrdering(t *testing.T) {
	items := []model.Item{
		makeItem("second", 100.4, 50),
		makeItem("first", 100.2, 50),
	}

	rounded := NewLineGrouper().Group(items)
	if got := rounded[0].Text(); got != "second first" {
		t.Errorf("equal rounded x should keep insertion order, got '%s'", got)
	}

	raw := NewLineGrouperWithConfig(LineConfig{Tolerance: 5, UseRawX: true}).Group(items)
	if got := raw[0].Text(); got != "first second" {
		t.Errorf("raw x ordering: got '%s'", got)
	}
}

func TestJoinLines(t *testing.T) {
	lines := []Line{
		{Key: 200, Items: []model.Item{makeItem(" Иванов ", 300, 200), makeItem("И.И.", 340, 200)}},
		{Key: 190, Items: []model.Item{makeItem("ауд. 204", 300, 190)}},
	}

	if got := JoinLines(lines); got != "Иванов И.И. ауд. 204" {
		t.Errorf("JoinLines() = '%s'", got)
	}
	if got := JoinLines(nil); got != "" {
		t.Errorf("JoinLines(nil) = '%s', want empty", got)
	}
}
