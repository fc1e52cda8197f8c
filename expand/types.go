// Package expand options and sentinel errors.
package expand

import "errors"

// Sentinel errors for expansion and serialization.
var (
	// ErrNilTree indicates a nil tree was passed.
	ErrNilTree = errors.New("expand: tree is nil")

	// ErrNotExpanded indicates serialization of a tree whose root lacks
	// the terminal expanded marker.
	ErrNotExpanded = errors.New("expand: tree has not been expanded")

	// ErrCombinationLimit indicates expansion would generate more terminal
	// trees than the configured cap.
	ErrCombinationLimit = errors.New("expand: combination limit exceeded")
)

// Option tunes expansion via functional arguments.
type Option func(*options)

type options struct {
	// maxCombinations caps the total number of generated terminal trees;
	// 0 means unbounded.
	maxCombinations int
}

func defaultOptions() options {
	return options{maxCombinations: 0}
}

// WithMaxCombinations caps the number of terminal trees Expand may
// generate; crossing the cap aborts with ErrCombinationLimit. The product
// of exclusive branch widths grows multiplicatively, and the core itself
// never bounds it; callers worried about blow-up opt in here.
// n <= 0 disables the cap.
func WithMaxCombinations(n int) Option {
	return func(o *options) {
		if n < 0 {
			n = 0
		}
		o.maxCombinations = n
	}
}
