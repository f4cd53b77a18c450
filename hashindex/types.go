// Package hashindex provides options, entry types and error definitions
// for the open-addressed airport metadata table.
package hashindex

import "errors"

// ErrBadCapacity is returned by New when the initial capacity is below 1.
var ErrBadCapacity = errors.New("hashindex: capacity must be at least 1")

// Load-factor bounds, kept as integer ratios so the checks stay exact:
// grow when (n+1)/cap > growNum/growDen, shrink when n/cap < shrinkNum/shrinkDen.
const (
	growNum   = 3
	growDen   = 4
	shrinkNum = 1
	shrinkDen = 2
)

// Entry is one occupied slot.
type Entry[V any] struct {
	Slot  int
	Key   string
	Value V
}

// slot is a table cell. used distinguishes an empty cell from an entry whose
// key is "" or whose value is the zero V.
type slot[V any] struct {
	key   string
	value V
	used  bool
}

// Option configures a Table at construction time.
type Option func(*options)

type options struct {
	onResize func(from, to int)
}

// WithOnResize registers a callback fired at the start of every rebuild with
// the old and new capacity. A shrink whose rebuild overflows the ceiling
// fires twice: once for the shrink, once for the nested grow.
func WithOnResize(fn func(from, to int)) Option {
	return func(o *options) {
		if fn != nil {
			o.onResize = fn
		}
	}
}
