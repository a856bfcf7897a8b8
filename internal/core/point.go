package core

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Pt2 is a point on an integer lattice. Y grows downward.
type Pt2[T constraints.Signed] struct {
	X, Y T
}

// Pt is the point type used for grid coordinates.
type Pt = Pt2[int]

// Add returns p translated by d.
func (p Pt2[T]) Add(d Pt2[T]) Pt2[T] { return Pt2[T]{p.X + d.X, p.Y + d.Y} }

// Sub returns the offset from o to p.
func (p Pt2[T]) Sub(o Pt2[T]) Pt2[T] { return Pt2[T]{p.X - o.X, p.Y - o.Y} }

func (p Pt2[T]) Down() Pt2[T]      { return Pt2[T]{p.X, p.Y + 1} }
func (p Pt2[T]) DownLeft() Pt2[T]  { return Pt2[T]{p.X - 1, p.Y + 1} }
func (p Pt2[T]) DownRight() Pt2[T] { return Pt2[T]{p.X + 1, p.Y + 1} }

// String formats p the way puzzle input writes waypoints.
func (p Pt2[T]) String() string { return fmt.Sprintf("%d,%d", p.X, p.Y) }
