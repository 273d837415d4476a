package view

import (
	"testing"
)

type MockView struct {
	lines    int
	rendered *[]int
	id       int
}

func (mv *MockView) Render(int) int {
	if mv.rendered != nil {
		*mv.rendered = append(*mv.rendered, mv.id)
	}
	return mv.lines
}

func TestCompositeView_Render(t *testing.T) {
	view1 := &MockView{lines: 3}
	view2 := &MockView{lines: 5}
	view3 := &MockView{lines: 2}

	compositeView := NewCompositeView([]View{view1, view2, view3})

	totalLines := compositeView.Render(80)
	expectedLines := 10

	if totalLines != expectedLines {
		t.Errorf("expected %d lines, got %d", expectedLines, totalLines)
	}
}

func TestCompositeView_FootersRenderLast(t *testing.T) {
	var order []int
	compositeView := NewCompositeView(nil)
	compositeView.AddFooter(&MockView{lines: 1, rendered: &order, id: 3})
	compositeView.AddView(&MockView{lines: 2, rendered: &order, id: 1})
	compositeView.AddView(&MockView{lines: 0, rendered: &order, id: 2})

	if lines := compositeView.Render(80); lines != 3 {
		t.Errorf("expected 3 lines, got %d", lines)
	}
	expected := []int{1, 2, 3}
	if len(order) != len(expected) {
		t.Fatalf("expected render order %v, got %v", expected, order)
	}
	for i := range expected {
		if order[i] != expected[i] {
			t.Errorf("expected render order %v, got %v", expected, order)
			break
		}
	}
}
