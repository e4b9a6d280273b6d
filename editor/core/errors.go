package core

import (
	"errors"
)

var (
	// ErrNoNormalization is returned by the category coloring step when no
	// normalization is supplied. Raw category values are never assumed to
	// already lie in the unit interval.
	ErrNoNormalization = errors.New("no normalization supplied for category values")

	// ErrUnknownColorMap is returned when a color map name is not registered.
	ErrUnknownColorMap = errors.New("unknown color map")

	// ErrAssetNotFound is returned by host implementations when a logical
	// path does not resolve to an asset.
	ErrAssetNotFound = errors.New("asset not found")
)
