package facemesh

import "errors"

var (
	// ErrVertexNotFound is returned when a VertexID does not address a
	// vertex of the store.
	ErrVertexNotFound = errors.New("facemesh: vertex not found")

	// ErrDestroyedFace is the panic value of Face methods called after
	// Destroy.
	ErrDestroyedFace = errors.New("facemesh: face is destroyed")

	// ErrEmptyMesh is returned when an operation needs at least one live face.
	ErrEmptyMesh = errors.New("facemesh: mesh has no live faces")
)
