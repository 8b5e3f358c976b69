package layout

import "errors"

// ErrEmptyGraph is returned by Initialize and Step when the graph has no
// nodes: both operations are domain errors against an empty input, not
// silently-successful no-ops.
var ErrEmptyGraph = errors.New("layout: graph has no nodes")

// ErrInvalidFrameExtents is returned by New when W or H is not strictly
// positive.
var ErrInvalidFrameExtents = errors.New("layout: frame extents must be positive")

// ErrInvalidScalingConstant is returned by New when C is not strictly
// positive.
var ErrInvalidScalingConstant = errors.New("layout: scaling constant C must be positive")

// ErrInvalidCoolingRate is returned by SetCoolingRate when alpha falls
// outside (0, 1].
var ErrInvalidCoolingRate = errors.New("layout: cooling rate must lie in (0, 1]")

// ErrNonFiniteState is returned by Step when an intermediate displacement
// or candidate position is NaN or infinite. Per the propagation policy, the
// engine's node positions are left exactly as they were at the start of the
// failed step: Step buffers candidate positions and only commits them after
// every one has been checked finite.
var ErrNonFiniteState = errors.New("layout: non-finite coordinate encountered during step")
