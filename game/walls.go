package game

// Fortress walls are modeled as axis-aligned segments in a doubled
// coordinate grid: square centers sit at even coordinates (2*file,
// 2*rank) and walls run along odd coordinates between them. Each
// fortress has one opening on each of its two inner sides, so its walls
// are two L-shaped runs per corner, four corners total.
//
// A movement step is blocked when the straight segment between the two
// square centers intersects any wall segment, endpoints included: a
// diagonal passing exactly through a wall corner does not squeeze by.

type wallSegment struct {
	x1, y1 int
	x2, y2 int
}

// fortressWalls lists the eight wall runs in doubled coordinates.
// Corners, in board terms: black A-D x 1-4, grey M-P x 1-4,
// brown M-P x 13-16, white A-D x 13-16.
var fortressWalls = []wallSegment{
	// black (low file, low rank)
	{7, -1, 7, 7},
	{-1, 7, 3, 7},
	// grey (high file, low rank)
	{23, 7, 31, 7},
	{23, -1, 23, 3},
	// brown (high file, high rank)
	{23, 23, 23, 31},
	{27, 23, 31, 23},
	// white (low file, high rank)
	{-1, 23, 7, 23},
	{7, 27, 7, 31},
}

// wallBlocked reports whether the center-to-center segment from one
// square to another crosses a fortress wall. For sliders this is called
// per unit step; for knight jumps the whole leap is one segment.
func wallBlocked(from, to Square) bool {
	ax, ay := from.File()*2, from.Rank()*2
	bx, by := to.File()*2, to.Rank()*2
	for _, w := range fortressWalls {
		if w.y1 == w.y2 {
			// horizontal wall at y = w.y1 spanning [x1, x2]
			if crossesAxis(ay, ax, by, bx, w.y1, w.x1, w.x2) {
				return true
			}
		} else {
			// vertical wall at x = w.x1 spanning [y1, y2]
			if crossesAxis(ax, ay, bx, by, w.x1, w.y1, w.y2) {
				return true
			}
		}
	}
	return false
}

// crossesAxis tests whether the segment (ap,as)-(bp,bs) crosses the
// axis-aligned wall at perpendicular coordinate line spanning [lo, hi]
// along the other axis. ap/bp are the coordinates perpendicular to the
// wall, as/bs the ones parallel to it. Square centers are even and
// walls odd, so the segment can never lie on the wall line.
func crossesAxis(ap, as, bp, bs, line, lo, hi int) bool {
	da, db := ap-line, bp-line
	if (da > 0) == (db > 0) {
		return false
	}
	// Parallel coordinate at the crossing point, scaled by d to stay
	// in integers: s = as + (bs-as)*(line-ap)/d with d = bp-ap.
	d := bp - ap
	num := as*d + (bs-as)*(line-ap)
	if d < 0 {
		d = -d
		num = -num
	}
	return num >= lo*d && num <= hi*d
}
