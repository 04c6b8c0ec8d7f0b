package geo

import "testing"

func TestRectEdges(t *testing.T) {
	r := NewRect(10, 20, 80, 30)

	if got := r.Top(); got != 20 {
		t.Errorf("Top() = %v, want 20", got)
	}
	if got := r.Bottom(); got != 50 {
		t.Errorf("Bottom() = %v, want 50", got)
	}
	if got := r.Left(); got != 10 {
		t.Errorf("Left() = %v, want 10", got)
	}
	if got := r.Right(); got != 90 {
		t.Errorf("Right() = %v, want 90", got)
	}
	if c := r.Center(); c.X != 50 || c.Y != 35 {
		t.Errorf("Center() = %+v, want {50 35}", c)
	}
}

func TestRectNegativeExtents(t *testing.T) {
	// Edge accessors normalize rectangles with negative width/height.
	r := NewRect(10, 10, -4, -6)

	if got := r.Left(); got != 6 {
		t.Errorf("Left() = %v, want 6", got)
	}
	if got := r.Right(); got != 10 {
		t.Errorf("Right() = %v, want 10", got)
	}
	if got := r.Top(); got != 4 {
		t.Errorf("Top() = %v, want 4", got)
	}
	if got := r.Bottom(); got != 10 {
		t.Errorf("Bottom() = %v, want 10", got)
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(0, 0, 10, 5)

	tests := []struct {
		x, y float64
		want bool
	}{
		{0, 0, true},
		{10, 5, true}, // inclusive edges
		{5, 2, true},
		{11, 2, false},
		{5, -1, false},
	}

	for _, tt := range tests {
		if got := r.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestPlacementComponents(t *testing.T) {
	tests := []struct {
		placement Placement
		side      Side
		align     Alignment
	}{
		{PlacementBottom, SideBottom, AlignCenter},
		{PlacementTopStart, SideTop, AlignStart},
		{PlacementRightEnd, SideRight, AlignEnd},
		{PlacementLeft, SideLeft, AlignCenter},
	}

	for _, tt := range tests {
		if got := tt.placement.Side(); got != tt.side {
			t.Errorf("%q.Side() = %q, want %q", tt.placement, got, tt.side)
		}
		if got := tt.placement.Alignment(); got != tt.align {
			t.Errorf("%q.Alignment() = %q, want %q", tt.placement, got, tt.align)
		}
	}
}

func TestPlacementOpposite(t *testing.T) {
	if got := PlacementTopStart.Opposite(); got != PlacementBottomStart {
		t.Errorf("Opposite() = %q, want %q", got, PlacementBottomStart)
	}
	if got := PlacementLeft.Opposite(); got != PlacementRight {
		t.Errorf("Opposite() = %q, want %q", got, PlacementRight)
	}
}

func TestParsePlacement(t *testing.T) {
	tests := []struct {
		input   string
		want    Placement
		wantErr bool
	}{
		{"", PlacementBottom, false},
		{"bottom", PlacementBottom, false},
		{"top-end", PlacementTopEnd, false},
		{"middle", "", true},
		{"bottom-middle", "", true},
		{"Bottom", "", true}, // case-sensitive
	}

	for _, tt := range tests {
		got, err := ParsePlacement(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParsePlacement(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParsePlacement(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestPlacementsComplete(t *testing.T) {
	all := Placements()
	if len(all) != 12 {
		t.Fatalf("Placements() returned %d entries, want 12", len(all))
	}
	for _, p := range all {
		if !p.Valid() {
			t.Errorf("placement %q reported invalid", p)
		}
	}
}
