package btree

import (
	"github.com/imyesung/balanced"
)

var (
	ErrMinDegree = balanced.ErrMinDegree
)
