package game

import (
	"fmt"
	"math"
)

const (
	MobMinSpeed = 150.0
	MobMaxSpeed = 250.0

	// maxPerturbation bounds the random turn applied to the path tangent.
	maxPerturbation = math.Pi / 4
)

// Path is a closed polyline that mobs spawn on. Offsets wrap around its length.
type Path struct {
	points []Vector2
	// cumulative[i] is the distance from points[0] to points[i] along the path
	cumulative []float64
	length     float64
}

// NewPath builds a closed path through points; the last point joins back to the first.
func NewPath(points ...Vector2) (*Path, error) {
	if len(points) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 points, got %d", ErrInvalidPath, len(points))
	}

	p := &Path{
		points:     append([]Vector2(nil), points...),
		cumulative: make([]float64, len(points)+1),
	}
	for i := range p.points {
		next := p.points[(i+1)%len(p.points)]
		p.cumulative[i+1] = p.cumulative[i] + next.Sub(p.points[i]).Length()
	}
	p.length = p.cumulative[len(points)]

	if p.length == 0 {
		return nil, fmt.Errorf("%w: zero length", ErrInvalidPath)
	}
	return p, nil
}

// ScreenPath returns the clockwise rectangle tracing the edge of a viewport of the given size.
func ScreenPath(size Vector2) (*Path, error) {
	return NewPath(
		Vector2{X: 0, Y: 0},
		Vector2{X: size.X, Y: 0},
		Vector2{X: size.X, Y: size.Y},
		Vector2{X: 0, Y: size.Y},
	)
}

// Length returns the perimeter of the closed path.
func (p *Path) Length() float64 {
	return p.length
}

// Sample returns the position at offset along the path and the rotation of the
// path tangent there.
func (p *Path) Sample(offset float64) (Vector2, float64) {
	offset = math.Mod(offset, p.length)
	if offset < 0 {
		offset += p.length
	}

	for i := range p.points {
		start, end := p.cumulative[i], p.cumulative[i+1]
		if end == start || (offset >= end && i < len(p.points)-1) {
			continue
		}

		a := p.points[i]
		segment := p.points[(i+1)%len(p.points)].Sub(a)
		t := (offset - start) / (end - start)
		return a.Add(segment.Scale(t)), segment.Angle()
	}

	// unreachable for a path with positive length
	last := p.points[len(p.points)-1]
	return last, p.points[0].Sub(last).Angle()
}

// Trajectory is the spawn state for a new mob.
type Trajectory struct {
	Position Vector2
	// Rotation is the mob's facing: the travel direction turned by a quarter.
	Rotation float64
	Velocity Vector2

	// Tangent is the path rotation at the spawn point and Perturbation the random
	// turn applied to it; the travel direction is Tangent+Perturbation.
	Tangent      float64
	Perturbation float64
	Speed        float64
}

// GenerateTrajectory picks a random point on path and launches a mob from it.
func GenerateTrajectory(path *Path, rng RandomSource, minSpeed, maxSpeed float64) Trajectory {
	position, tangent := path.Sample(rng.Float64() * path.Length())

	perturbation := uniform(rng, -maxPerturbation, maxPerturbation)
	direction := tangent + perturbation
	speed := uniform(rng, minSpeed, maxSpeed)

	return Trajectory{
		Position:     position,
		Rotation:     direction + math.Pi/2,
		Velocity:     Vector2{X: speed}.Rotated(direction),
		Tangent:      tangent,
		Perturbation: perturbation,
		Speed:        speed,
	}
}
