package ui

import "testing"

func TestHitTest(t *testing.T) {
	l := NewLayout(4, 2)

	tests := []struct {
		name  string
		x, y  int
		kind  TargetKind
		index int
	}{
		{"first cell left half", l.GridX, l.GridY, TargetCell, 0},
		{"first cell right half", l.GridX + 1, l.GridY, TargetCell, 0},
		{"second cell", l.GridX + 2, l.GridY, TargetCell, 1},
		{"second row", l.GridX, l.GridY + 1, TargetCell, 4},
		{"last cell", l.GridX + 7, l.GridY + 3, TargetCell, 15},
		{"right of grid", l.GridX + 8, l.GridY, TargetNone, 0},
		{"left of grid", l.GridX - 1, l.GridY, TargetNone, 0},
		{"above grid", l.GridX, l.GridY - 1, TargetNone, 0},
		{"below grid", l.GridX, l.GridY + 4, TargetNone, 0},
		{"button start", l.ButtonX, l.ButtonY, TargetButton, 0},
		{"button end", l.ButtonX + l.ButtonWidth - 1, l.ButtonY, TargetButton, 0},
		{"past button", l.ButtonX + l.ButtonWidth, l.ButtonY, TargetNone, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := l.HitTest(tt.x, tt.y)
			if got.Kind != tt.kind {
				t.Fatalf("HitTest(%d, %d).Kind = %d, want %d", tt.x, tt.y, got.Kind, tt.kind)
			}
			if tt.kind == TargetCell && got.Index != tt.index {
				t.Errorf("HitTest(%d, %d).Index = %d, want %d", tt.x, tt.y, got.Index, tt.index)
			}
		})
	}
}

func TestButtonBelowGrid(t *testing.T) {
	for _, columns := range []int{1, 16, 32} {
		l := NewLayout(columns, 1)
		if l.ButtonY != l.GridY+columns+1 {
			t.Errorf("columns=%d: button row %d, want %d", columns, l.ButtonY, l.GridY+columns+1)
		}
		if l.ButtonWidth != len(ButtonLabel) {
			t.Errorf("ButtonWidth = %d, want %d", l.ButtonWidth, len(ButtonLabel))
		}
	}
}

func TestFitCellWidth(t *testing.T) {
	tests := []struct {
		termWidth, columns, preferred int
		want                          int
	}{
		{200, 32, 2, 2},
		{70, 32, 2, 2},
		{69, 32, 2, 1},
		{40, 32, 3, 1},
		{80, 16, 4, 4},
		{0, 16, 2, 1},
		{80, 0, 2, 2},
	}

	for _, tt := range tests {
		got := FitCellWidth(tt.termWidth, tt.columns, tt.preferred)
		if got != tt.want {
			t.Errorf("FitCellWidth(%d, %d, %d) = %d, want %d", tt.termWidth, tt.columns, tt.preferred, got, tt.want)
		}
	}
}

func TestLayoutScrolled(t *testing.T) {
	l := NewLayout(16, 2)

	same := l.Scrolled(0)
	if same != l {
		t.Errorf("Scrolled(0) = %+v, want %+v", same, l)
	}
	if neg := l.Scrolled(-3); neg != l {
		t.Errorf("Scrolled(-3) = %+v, want unchanged", neg)
	}

	s := l.Scrolled(4)
	if s.GridY != l.GridY-4 || s.ButtonY != l.ButtonY-4 {
		t.Errorf("Scrolled(4) moved grid to %d and button to %d", s.GridY, s.ButtonY)
	}
	if s.GridX != l.GridX || s.ButtonX != l.ButtonX {
		t.Error("Scrolled must not move anything sideways")
	}

	if got := s.HitTest(s.GridX, l.GridY-3); got.Kind != TargetCell || got.Index != 16 {
		t.Errorf("HitTest after scroll = %+v, want cell 16", got)
	}
	if got := s.HitTest(s.ButtonX, s.ButtonY); got.Kind != TargetButton {
		t.Errorf("HitTest on scrolled button = %+v", got)
	}
}
