// Package geometry derives tonearm alignment geometry from a pivot-to-spindle
// distance and a pair of null-point radii.
//
// Compute is a pure function: it validates the inputs, solves the two-null
// condition in closed form, and returns effective length, linear offset,
// offset angle, and overhang. Rejected inputs surface as
// apperr.ErrInvalidGeometry so the CLI can report them without further
// classification.
package geometry
