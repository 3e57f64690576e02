package domain

import "testing"

func TestDirectionDelta(t *testing.T) {
	tests := []struct {
		name string
		dir  Direction
		want Position
	}{
		{name: "none", dir: 0, want: Position{}},
		{name: "up", dir: DirectionUp, want: Position{Col: 0, Row: -1}},
		{name: "down", dir: DirectionDown, want: Position{Col: 0, Row: 1}},
		{name: "left", dir: DirectionLeft, want: Position{Col: -1, Row: 0}},
		{name: "right", dir: DirectionRight, want: Position{Col: 1, Row: 0}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.dir.Delta(); got != tc.want {
				t.Fatalf("%v.Delta() = %v, want %v", tc.dir, got, tc.want)
			}
		})
	}
}

func TestDirectionPerpendicular(t *testing.T) {
	all := []Direction{DirectionUp, DirectionDown, DirectionLeft, DirectionRight}
	for _, a := range all {
		for _, b := range all {
			want := a.Vertical() != b.Vertical()
			if got := a.Perpendicular(b); got != want {
				t.Fatalf("%v.Perpendicular(%v) = %v, want %v", a, b, got, want)
			}
		}
		if a.Perpendicular(0) {
			t.Fatalf("%v.Perpendicular(none) should be false", a)
		}
	}
}
