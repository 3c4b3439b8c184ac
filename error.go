package balanced

import "errors"

var (
	ErrMinDegree = errors.New("minimum degree must be at least 2")
)
