package engine

// Orientations returns the 6 axis permutations of an item's dimensions,
// each expressed as (width, depth, height) extents along a target space's
// x, y and z axes. The order is fixed so tie-breaks stay deterministic.
func Orientations(l, w, h float64) [6][3]float64 {
	return [6][3]float64{
		{l, w, h},
		{l, h, w},
		{w, l, h},
		{w, h, l},
		{h, l, w},
		{h, w, l},
	}
}
