package game

import "testing"

func TestResolveCircleRect_Sides(t *testing.T) {
	rect := Rect{100, 100, 100, 20}

	tests := []struct {
		name   string
		cx, cy float64
		side   Side
	}{
		{"from above", 150, 95, SideTop},
		{"from below", 150, 125, SideBottom},
		{"from the left", 95, 110, SideLeft},
		{"from the right", 205, 110, SideRight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, ok := ResolveCircleRect(tt.cx, tt.cy, 10, rect)
			if !ok {
				t.Fatal("expected a collision")
			}
			if hit.Side != tt.side {
				t.Errorf("expected side %d, got %d", tt.side, hit.Side)
			}
		})
	}
}

func TestResolveCircleRect_Miss(t *testing.T) {
	rect := Rect{100, 100, 100, 20}

	if _, ok := ResolveCircleRect(150, 80, 10, rect); ok {
		t.Error("circle 10 above the rect with radius 10 should not collide")
	}
	if _, ok := ResolveCircleRect(50, 50, 10, rect); ok {
		t.Error("circle far from the rect should not collide")
	}
}

func TestResolveCircleRect_TouchCounts(t *testing.T) {
	rect := Rect{100, 100, 100, 20}

	// Exactly radius away from the top edge still registers.
	hit, ok := ResolveCircleRect(150, 90, 10, rect)
	if !ok {
		t.Fatal("touching circle should collide")
	}
	if hit.Side != SideTop {
		t.Errorf("expected top side, got %d", hit.Side)
	}
	if hit.PX != 150 || hit.PY != 100 {
		t.Errorf("expected closest point (150,100), got (%f,%f)", hit.PX, hit.PY)
	}
}

func TestResolveCircleRect_CornerResolvesVertically(t *testing.T) {
	rect := Rect{100, 100, 100, 20}

	// Overlapping the top-left corner: closest point sits on the top edge,
	// so the contact resolves as a top hit.
	hit, ok := ResolveCircleRect(95, 95, 10, rect)
	if !ok {
		t.Fatal("expected a corner collision")
	}
	if hit.Side != SideTop {
		t.Errorf("expected corner contact to resolve as top, got %d", hit.Side)
	}
}

func TestCircleNearRect_Branches(t *testing.T) {
	rect := Rect{100, 100, 50, 50} // center (125,125), half extents 25

	tests := []struct {
		name   string
		cx, cy float64
		radius float64
		want   bool
	}{
		{"reject on x", 200, 125, 20, false},
		{"reject on y", 125, 200, 20, false},
		{"center over horizontal band", 125, 160, 20, true},
		{"center over vertical band", 160, 125, 20, true},
		{"corner within radius", 155, 155, 20, true},
		{"corner beyond radius", 169, 169, 20, false},
		{"fully inside", 125, 125, 5, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CircleNearRect(tt.cx, tt.cy, tt.radius, rect)
			if got != tt.want {
				t.Errorf("CircleNearRect(%f,%f,r=%f) = %v, want %v", tt.cx, tt.cy, tt.radius, got, tt.want)
			}
		})
	}
}

func TestCircleNearRect_CornerDistance(t *testing.T) {
	rect := Rect{100, 100, 50, 50}

	// dx and dy both exceed the half extents; acceptance hinges on the
	// squared corner distance against the squared radius.
	// Corner at (150,150); circle at (162,166) is 20 away exactly.
	if !CircleNearRect(162, 166, 20, rect) {
		t.Error("corner distance exactly radius should pass")
	}
	if CircleNearRect(162, 166, 19.9, rect) {
		t.Error("corner distance just beyond radius should fail")
	}
}

func TestCircleNearRect_TranslationInvariance(t *testing.T) {
	rect := Rect{100, 100, 50, 50}

	offsets := []Point{{0, 0}, {37, -12}, {-250, 480}, {1000, 1000}}
	probes := []Point{{125, 160}, {160, 160}, {200, 125}, {155, 155}}

	for _, probe := range probes {
		base := CircleNearRect(probe.X, probe.Y, 20, rect)
		for _, off := range offsets {
			moved := Rect{rect.X + off.X, rect.Y + off.Y, rect.W, rect.H}
			got := CircleNearRect(probe.X+off.X, probe.Y+off.Y, 20, moved)
			if got != base {
				t.Errorf("probe (%f,%f) offset (%f,%f): got %v, want %v",
					probe.X, probe.Y, off.X, off.Y, got, base)
			}
		}
	}
}

func TestRect_Accessors(t *testing.T) {
	r := Rect{10, 20, 100, 40}

	if r.Right() != 110 {
		t.Errorf("expected Right=110, got %f", r.Right())
	}
	if r.Bottom() != 60 {
		t.Errorf("expected Bottom=60, got %f", r.Bottom())
	}
	if r.CenterX() != 60 {
		t.Errorf("expected CenterX=60, got %f", r.CenterX())
	}
	if r.CenterY() != 40 {
		t.Errorf("expected CenterY=40, got %f", r.CenterY())
	}
}
