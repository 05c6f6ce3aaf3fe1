// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package geometry implements the 1-D node/connection primitives consumed
// by the operator algebra and the assembler: Point, Vector, Grid and the
// Grid1DBuilder used to construct a Grid.
package geometry

import (
	"math"

	"github.com/szajek/fractulus/errs"
)

// Point is a node location in up to three dimensions. Y and Z are
// optional; a nil coordinate contributes zero to Vector.Length.
type Point struct {
	X    float64
	Y, Z *float64
}

// NewPoint1D creates a 1-D point.
func NewPoint1D(x float64) Point {
	return Point{X: x}
}

// NewPoint2D creates a 2-D point.
func NewPoint2D(x, y float64) Point {
	return Point{X: x, Y: &y}
}

// NewPoint3D creates a 3-D point.
func NewPoint3D(x, y, z float64) Point {
	return Point{X: x, Y: &y, Z: &z}
}

func coordOrZero(a, b *float64) float64 {
	if a == nil || b == nil {
		return 0
	}
	return *a - *b
}

// Vector connects two points; Length is the Euclidean distance between them.
type Vector struct {
	Start, End Point
}

// Length returns the Euclidean distance between Start and End.
func (v Vector) Length() float64 {
	dx := v.End.X - v.Start.X
	dy := coordOrZero(v.End.Y, v.Start.Y)
	dz := coordOrZero(v.End.Z, v.Start.Z)
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// BoundaryBox is the axis-aligned box enclosing a set of nodes. The spec
// freezes BoundaryBoxFromPoints as the canonical constructor (§9, Open
// Questions): the source's parallel calculate_boundary_box API is not
// carried over.
type BoundaryBox struct {
	Xmin, Xmax float64
	Ymin, Ymax float64
	Zmin, Zmax float64
	HasY, HasZ bool
}

// BoundaryBoxFromPoints computes the boundary box of nodes. An empty
// slice returns a zero-valued box with HasY/HasZ false.
func BoundaryBoxFromPoints(nodes []Point) BoundaryBox {
	var b BoundaryBox
	if len(nodes) == 0 {
		return b
	}
	b.Xmin, b.Xmax = nodes[0].X, nodes[0].X
	b.HasY = nodes[0].Y != nil
	b.HasZ = nodes[0].Z != nil
	if b.HasY {
		b.Ymin, b.Ymax = *nodes[0].Y, *nodes[0].Y
	}
	if b.HasZ {
		b.Zmin, b.Zmax = *nodes[0].Z, *nodes[0].Z
	}
	for _, n := range nodes[1:] {
		b.Xmin, b.Xmax = math.Min(b.Xmin, n.X), math.Max(b.Xmax, n.X)
		if b.HasY && n.Y != nil {
			b.Ymin, b.Ymax = math.Min(b.Ymin, *n.Y), math.Max(b.Ymax, *n.Y)
		}
		if b.HasZ && n.Z != nil {
			b.Zmin, b.Zmax = math.Min(b.Zmin, *n.Z), math.Max(b.Zmax, *n.Z)
		}
	}
	return b
}

// Dimensions returns the box's extent along x (always) and y, z (when present).
func (b BoundaryBox) Dimensions() (dx float64, dy, dz *float64) {
	dx = b.Xmax - b.Xmin
	if b.HasY {
		v := b.Ymax - b.Ymin
		dy = &v
	}
	if b.HasZ {
		v := b.Zmax - b.Zmin
		dz = &v
	}
	return
}

// Grid is a 1-D domain: an ordered sequence of nodes and the connections
// between consecutive nodes.
type Grid struct {
	Nodes       []Point
	Connections []Vector
}

// GetConnections returns the 0, 1 or 2 connections adjacent to node index i:
// the backward connection (i-1 -> i) when i > 0, the forward connection
// (i -> i+1) when i is not the last node.
func (g Grid) GetConnections(i int) []Vector {
	var out []Vector
	if i > 0 {
		out = append(out, g.Connections[i-1])
	}
	if i < len(g.Nodes)-1 {
		out = append(out, g.Connections[i])
	}
	return out
}

// GetByAddress returns the node at an integer address.
func (g Grid) GetByAddress(address float64) Point {
	return g.Nodes[int(address)]
}

// BoundaryBox computes the grid's enclosing box.
func (g Grid) BoundaryBox() BoundaryBox {
	return BoundaryBoxFromPoints(g.Nodes)
}

// Dimensions returns the grid's extent (see BoundaryBox.Dimensions).
func (g Grid) Dimensions() (dx float64, dy, dz *float64) {
	return g.BoundaryBox().Dimensions()
}

// Grid1DBuilder is the mutable builder consumed by Build to produce an
// immutable Grid (the "builder then immutable value" pattern, spec §9).
type Grid1DBuilder struct {
	length float64
	start  float64

	nodes       []Point
	connections []Vector
}

// NewGrid1DBuilder starts a builder for a domain of the given total length.
func NewGrid1DBuilder(length float64) *Grid1DBuilder {
	return &Grid1DBuilder{length: length}
}

// WithStart sets the coordinate of the first node (default 0).
func (b *Grid1DBuilder) WithStart(start float64) *Grid1DBuilder {
	b.start = start
	return b
}

// AddUniformlyDistributedNodes lays down `number` nodes evenly spaced
// across [start, start+length], connecting each consecutive pair.
func (b *Grid1DBuilder) AddUniformlyDistributedNodes(number int) (*Grid1DBuilder, error) {
	if number < 2 {
		return nil, errs.New(errs.DomainTooSmall, "grid needs at least 2 nodes, got %d", number)
	}
	section := b.length / float64(number-1)
	prev := b.AddNodeByCoordinate(b.start)
	for i := 0; i < number-1; i++ {
		next := b.AddNodeByCoordinate(b.start + float64(i+1)*section)
		b.AddConnectionByNodes(prev, next)
		prev = next
	}
	return b, nil
}

// AddNodeByCoordinate appends a single node at the given coordinate.
func (b *Grid1DBuilder) AddNodeByCoordinate(coord float64) Point {
	n := NewPoint1D(coord)
	b.nodes = append(b.nodes, n)
	return n
}

// AddConnectionByNodes appends a connection between two existing nodes.
func (b *Grid1DBuilder) AddConnectionByNodes(start, end Point) Vector {
	v := Vector{Start: start, End: end}
	b.connections = append(b.connections, v)
	return v
}

// Build consumes the builder and returns the immutable Grid.
func (b *Grid1DBuilder) Build() Grid {
	return Grid{Nodes: b.nodes, Connections: b.connections}
}
