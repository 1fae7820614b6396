package ecs_test

// Common test entity types
type Position struct {
	X, Y float64
}

type Body struct {
	Position
	DX, DY float64
}

type Health struct {
	Current int
	Max     int
}
