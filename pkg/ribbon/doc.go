// Package ribbon generates segmented, double-sided strip meshes along a path.
//
// A build samples a [curve.PathCurve] into a rotation-minimizing normal field,
// splits the path into segments roughly one ribbon-width long, and emits a
// quad strip per segment whose vertices are offset half a width to each side
// of the path along the (animated) normal. Each segment carries its own
// [Surface] from a [TileProvider] so neighbouring segments can show different
// tiles.
//
// Builds are pure: the same points, width, time and options always produce
// the same geometry. Animation is done by rebuilding with a new time.
package ribbon
