package disjointset

import (
	"errors"
	"fmt"
)

// Sentinel errors for disjoint-set operations.
var (
	// ErrInvalidIndex indicates an element index outside [0, n].
	ErrInvalidIndex = errors.New("disjointset: element index out of range")

	// ErrInvalidSize indicates a negative n passed to New.
	ErrInvalidSize = errors.New("disjointset: n must be non-negative")

	// ErrUnknownStrategy indicates a Strategy value Union does not know.
	ErrUnknownStrategy = errors.New("disjointset: unknown union strategy")
)

// Strategy selects how Union decides which root survives.
type Strategy int

const (
	// ByRank attaches the lower-rank root under the higher-rank root.
	ByRank Strategy = iota

	// BySize attaches the lower-indexed root under the higher-indexed root
	// and accumulates set sizes.
	BySize

	// BySizeBalanced attaches the smaller set under the larger set.
	BySizeBalanced
)

// String implements fmt.Stringer.
func (s Strategy) String() string {
	switch s {
	case ByRank:
		return "by-rank"
	case BySize:
		return "by-size"
	case BySizeBalanced:
		return "by-size-balanced"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}
