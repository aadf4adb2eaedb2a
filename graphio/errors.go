package graphio

import "errors"

var (
	// ErrInputMismatch indicates differing numbers of graphs and targets.
	ErrInputMismatch = errors.New("graphio: number of graphs and targets differ")

	// ErrFormat indicates malformed graph or label content.
	ErrFormat = errors.New("graphio: malformed input")

	// ErrTooManyVertices indicates a vertex id or count above MaxVertices.
	ErrTooManyVertices = errors.New("graphio: too many vertices")

	// ErrUnknownFormat indicates an unsupported file extension.
	ErrUnknownFormat = errors.New("graphio: unknown graph file format")

	// ErrNoInput indicates an empty list of graph files.
	ErrNoInput = errors.New("graphio: no input files")
)
