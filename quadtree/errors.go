package quadtree

import "errors"

// ErrOutOfBounds is returned by Insert when the point does not lie within
// the tree's current root bounds. This is a precondition violation per
// spec.md's error taxonomy, not a numerical edge case: callers must keep
// the root bounds large enough for every point they intend to insert
// (package repulsion does this by expanding a tight bounding box with a
// fixed margin before Reset).
var ErrOutOfBounds = errors.New("quadtree: point outside root bounds")
