package core

import "testing"

func TestPointMoves(t *testing.T) {
	p := Pt{X: 10, Y: 4}
	if p.Down() != (Pt{10, 5}) || p.DownLeft() != (Pt{9, 5}) || p.DownRight() != (Pt{11, 5}) {
		t.Fatalf("unexpected neighbours of %v", p)
	}
	if got := p.Add(Pt{-2, 1}).Sub(p); got != (Pt{-2, 1}) {
		t.Fatalf("Add/Sub round trip = %v", got)
	}
}

func TestPointString(t *testing.T) {
	if got := (Pt{X: 500}).String(); got != "500,0" {
		t.Fatalf("String() = %q, want 500,0", got)
	}
}
