package game

// Delta is a (file, rank) displacement.
type Delta struct {
	File int
	Rank int
}

var (
	orthogonalDirs = []Delta{
		{File: 1, Rank: 0},
		{File: -1, Rank: 0},
		{File: 0, Rank: 1},
		{File: 0, Rank: -1},
	}
	diagonalDirs = []Delta{
		{File: 1, Rank: 1},
		{File: 1, Rank: -1},
		{File: -1, Rank: 1},
		{File: -1, Rank: -1},
	}
	knightJumps = []Delta{
		{File: 1, Rank: 2},
		{File: 2, Rank: 1},
		{File: 2, Rank: -1},
		{File: 1, Rank: -2},
		{File: -1, Rank: -2},
		{File: -2, Rank: -1},
		{File: -2, Rank: 1},
		{File: -1, Rank: 2},
	}
	kingSteps = []Delta{
		{File: 1, Rank: 0}, {File: 1, Rank: 1}, {File: 0, Rank: 1}, {File: -1, Rank: 1},
		{File: -1, Rank: 0}, {File: -1, Rank: -1}, {File: 0, Rank: -1}, {File: 1, Rank: -1},
	}
)

// Profile is the static movement template for a piece kind. The hybrid
// queen slides like a rook and bishop and additionally jumps like a
// knight.
type Profile struct {
	Slides []Delta
	Jumps  []Delta
	Steps  []Delta

	DoubleStep bool // pawn double-step from its home row
	EnPassant  bool // reserved; this variant has no en passant capture
	Castles    bool // participates in castling
	Promotes   bool
}

var catalog = [King + 1]Profile{
	Pawn:   {DoubleStep: true, Promotes: true},
	Knight: {Jumps: knightJumps},
	Bishop: {Slides: diagonalDirs},
	Rook:   {Slides: orthogonalDirs, Castles: true},
	Queen:  {Slides: append(append([]Delta(nil), orthogonalDirs...), diagonalDirs...), Jumps: knightJumps},
	King:   {Steps: kingSteps, Castles: true},
}

// ProfileOf returns the movement template for pt. Pawn movement is
// color-relative; see PawnForward.
func ProfileOf(pt PieceType) Profile {
	if int(pt) >= len(catalog) {
		return Profile{}
	}
	return catalog[pt]
}

// pawnForward is each color's forward direction: the four armies face
// the board center from the four sides.
var pawnForward = [NumColors]Delta{
	White: {File: 0, Rank: -1},
	Brown: {File: -1, Rank: 0},
	Grey:  {File: 0, Rank: 1},
	Black: {File: 1, Rank: 0},
}

// PawnForward returns the forward direction for color's pawns.
func PawnForward(color Color) Delta { return pawnForward[color] }

// pawnCaptures holds the two diagonal-forward capture directions.
var pawnCaptures = buildPawnCaptures()

func buildPawnCaptures() [NumColors][2]Delta {
	var out [NumColors][2]Delta
	for _, color := range Colors {
		fwd := pawnForward[color]
		if fwd.File == 0 {
			out[color] = [2]Delta{{File: 1, Rank: fwd.Rank}, {File: -1, Rank: fwd.Rank}}
		} else {
			out[color] = [2]Delta{{File: fwd.File, Rank: 1}, {File: fwd.File, Rank: -1}}
		}
	}
	return out
}

// pawnHomeRow reports whether sq is on color's pawn starting row, where
// the double-step is available.
func pawnHomeRow(color Color, sq Square) bool {
	file, rank := sq.File(), sq.Rank()
	switch color {
	case Grey:
		return rank == 3 && file >= 4 && file <= 11
	case White:
		return rank == 12 && file >= 4 && file <= 11
	case Brown:
		return file == 12 && rank >= 4 && rank <= 11
	case Black:
		return file == 3 && rank >= 4 && rank <= 11
	default:
		return false
	}
}

// progress is the 1-based rank-equivalent distance a color has covered:
// its back row is 1 and its pawns start on 2.
func progress(color Color, sq Square) int {
	switch color {
	case Grey:
		return sq.Rank() - 1
	case White:
		return 14 - sq.Rank()
	case Brown:
		return 14 - sq.File()
	case Black:
		return sq.File() - 1
	default:
		return 0
	}
}

// PromotionPolicy decides where pawns may promote. The threshold is the
// minimum rank-equivalent progress per color; the default of 8 mirrors
// the classical 8th rank, and by default the zone extends into fortress
// interiors.
type PromotionPolicy struct {
	Threshold         [NumColors]int
	IncludeFortresses bool
}

// DefaultPromotionPolicy is the variant rule: promotion on or beyond
// the 8th-rank equivalent, fortress interiors included.
func DefaultPromotionPolicy() PromotionPolicy {
	return PromotionPolicy{
		Threshold:         [NumColors]int{White: 8, Brown: 8, Grey: 8, Black: 8},
		IncludeFortresses: true,
	}
}

// ClassicalPromotionPolicy keeps the same threshold but excludes
// fortress interiors from the promotion zone.
func ClassicalPromotionPolicy() PromotionPolicy {
	p := DefaultPromotionPolicy()
	p.IncludeFortresses = false
	return p
}

// Eligible reports whether a pawn of color landing on sq may promote.
func (p PromotionPolicy) Eligible(color Color, sq Square) bool {
	if progress(color, sq) < p.Threshold[color] {
		return false
	}
	if !p.IncludeFortresses && insideFortress(sq) {
		return false
	}
	return true
}
