package mdcode

import "errors"

// ErrNotContiguous reports a fence inside a block quote or another
// container whose markers interleave the code.
var ErrNotContiguous = errors.New("fence content is split by container markers")
