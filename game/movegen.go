package game

import "iter"

// occupancy classes for a candidate destination, seen from the moving
// piece's side. Frozen enemy pieces cannot be captured and behave like
// friendly blockers.
type landing uint8

const (
	landEmpty landing = iota
	landCapture
	landBlocked
)

func (b *Board) classify(sq Square, mover Color) landing {
	c := b.cells[sq]
	if !c.occupied {
		return landEmpty
	}
	if c.piece.Color.Team() == mover.Team() || b.frozen[c.piece.Color] {
		return landBlocked
	}
	return landCapture
}

// PseudoLegal yields every pseudo-legal move for the piece on from:
// geometry, occupancy, fortress walls and castling preconditions are
// applied, but not check consequences. A frozen color's pieces yield
// nothing. The sequence is lazy; ranging may stop early.
func (b *Board) PseudoLegal(from Square) iter.Seq[Move] {
	return func(yield func(Move) bool) {
		if !from.Playable() {
			return
		}
		piece, ok := b.PieceAt(from)
		if !ok || b.frozen[piece.Color] {
			return
		}

		emit := func(mv Move) bool {
			if piece.Type == Pawn && b.policy.Eligible(piece.Color, mv.To) {
				mv.CanPromote = true
			}
			return yield(mv)
		}

		if piece.Type == Pawn {
			b.pawnMoves(from, piece.Color, emit)
			return
		}

		prof := ProfileOf(piece.Type)
		for _, dir := range prof.Slides {
			cur := from
			for {
				next, ok := offsetSquare(cur, dir.File, dir.Rank)
				if !ok || wallBlocked(cur, next) {
					break
				}
				switch b.classify(next, piece.Color) {
				case landEmpty:
					if !emit(Move{From: from, To: next}) {
						return
					}
					cur = next
					continue
				case landCapture:
					if !emit(Move{From: from, To: next}) {
						return
					}
				}
				break
			}
		}
		for _, jump := range prof.Jumps {
			to, ok := offsetSquare(from, jump.File, jump.Rank)
			if !ok || wallBlocked(from, to) {
				continue
			}
			if b.classify(to, piece.Color) == landBlocked {
				continue
			}
			if !emit(Move{From: from, To: to}) {
				return
			}
		}
		for _, step := range prof.Steps {
			to, ok := offsetSquare(from, step.File, step.Rank)
			if !ok || wallBlocked(from, to) {
				continue
			}
			if b.classify(to, piece.Color) == landBlocked {
				continue
			}
			if !emit(Move{From: from, To: to}) {
				return
			}
		}

		if piece.Type == King {
			for _, side := range []CastlingSide{CastleKingside, CastleQueenside} {
				mv, ok := b.castleMove(piece.Color, from, side)
				if !ok {
					continue
				}
				if !emit(mv) {
					return
				}
			}
		}
	}
}

// movesFor yields the pseudo-legal moves of every piece of color.
func (b *Board) movesFor(color Color) iter.Seq[Move] {
	return func(yield func(Move) bool) {
		for idx := 0; idx < NumSquares; idx++ {
			c := b.cells[idx]
			if !c.occupied || c.piece.Color != color {
				continue
			}
			for mv := range b.PseudoLegal(Square(idx)) {
				if !yield(mv) {
					return
				}
			}
		}
	}
}

func (b *Board) pawnMoves(from Square, color Color, emit func(Move) bool) {
	fwd := pawnForward[color]
	if one, ok := offsetSquare(from, fwd.File, fwd.Rank); ok && !wallBlocked(from, one) {
		if b.classify(one, color) == landEmpty {
			if !emit(Move{From: from, To: one}) {
				return
			}
			if pawnHomeRow(color, from) {
				if two, ok := offsetSquare(one, fwd.File, fwd.Rank); ok && !wallBlocked(one, two) {
					if b.classify(two, color) == landEmpty {
						if !emit(Move{From: from, To: two}) {
							return
						}
					}
				}
			}
		}
	}
	for _, d := range pawnCaptures[color] {
		to, ok := offsetSquare(from, d.File, d.Rank)
		if !ok || wallBlocked(from, to) {
			continue
		}
		if b.classify(to, color) == landCapture {
			if !emit(Move{From: from, To: to}) {
				return
			}
		}
	}
}

// ---------------------------
// castling
// ---------------------------

type castleGeometry struct {
	kingFrom Square
	kingTo   Square
	rookFrom Square
	rookTo   Square
	between  []Square // must be empty
	path     []Square // king transit, origin included; must be safe
}

var castleTable = buildCastleTable()

func buildCastleTable() [NumColors][2]castleGeometry {
	at := func(file, rank int) Square { return Square(rank*BoardSize + file) }
	// grey frame, back row rank index 2
	base := [2]castleGeometry{
		CastleKingside: {
			kingFrom: at(8, 2), kingTo: at(10, 2),
			rookFrom: at(11, 2), rookTo: at(9, 2),
			between: []Square{at(9, 2), at(10, 2)},
			path:    []Square{at(8, 2), at(9, 2), at(10, 2)},
		},
		CastleQueenside: {
			kingFrom: at(8, 2), kingTo: at(6, 2),
			rookFrom: at(4, 2), rookTo: at(7, 2),
			between: []Square{at(5, 2), at(6, 2), at(7, 2)},
			path:    []Square{at(8, 2), at(7, 2), at(6, 2)},
		},
	}
	var table [NumColors][2]castleGeometry
	for _, color := range Colors {
		times := setupRotations[color]
		for side, g := range base {
			rg := castleGeometry{
				kingFrom: rotated(g.kingFrom, times),
				kingTo:   rotated(g.kingTo, times),
				rookFrom: rotated(g.rookFrom, times),
				rookTo:   rotated(g.rookTo, times),
			}
			for _, sq := range g.between {
				rg.between = append(rg.between, rotated(sq, times))
			}
			for _, sq := range g.path {
				rg.path = append(rg.path, rotated(sq, times))
			}
			table[color][side] = rg
		}
	}
	return table
}

// castleMove builds the castling king move for color on side when every
// precondition holds: the right is still held, king and rook stand on
// their original squares, the between squares are empty, and no square
// on the king's path is attacked by a live enemy.
func (b *Board) castleMove(color Color, from Square, side CastlingSide) (Move, bool) {
	g := castleTable[color][side]
	if from != g.kingFrom || !b.castling.HasSide(color, side) {
		return Move{}, false
	}
	rook, ok := b.PieceAt(g.rookFrom)
	if !ok || rook.Type != Rook || rook.Color != color {
		return Move{}, false
	}
	for _, sq := range g.between {
		if b.cells[sq].occupied {
			return Move{}, false
		}
	}
	for _, sq := range g.path {
		if b.attackedByEnemies(sq, color) {
			return Move{}, false
		}
	}
	return Move{From: from, To: g.kingTo, Castle: side, IsCastle: true}, true
}

// castleSideFor matches a bare from/to king move against color's
// castling geometry, for callers that did not set the castle flags.
func castleSideFor(color Color, from, to Square) (CastlingSide, bool) {
	for _, side := range []CastlingSide{CastleKingside, CastleQueenside} {
		g := castleTable[color][side]
		if g.kingFrom == from && g.kingTo == to {
			return side, true
		}
	}
	return 0, false
}

// ---------------------------
// attack detection
// ---------------------------

// attacked reports whether a piece of color by attacks target. Pawn
// attacks are the diagonal captures only; castling never attacks.
func (b *Board) attacked(target Square, by Color) bool {
	for idx := 0; idx < NumSquares; idx++ {
		c := b.cells[idx]
		if !c.occupied || c.piece.Color != by {
			continue
		}
		if b.pieceAttacks(c.piece, Square(idx), target) {
			return true
		}
	}
	return false
}

// attackedByEnemies reports whether any live enemy of color attacks
// target. Frozen colors deliver no attacks.
func (b *Board) attackedByEnemies(target Square, of Color) bool {
	team := of.Team()
	for _, c := range Colors {
		if c.Team() == team || b.frozen[c] {
			continue
		}
		if b.attacked(target, c) {
			return true
		}
	}
	return false
}

func (b *Board) pieceAttacks(piece Piece, from, target Square) bool {
	switch piece.Type {
	case Pawn:
		for _, d := range pawnCaptures[piece.Color] {
			if to, ok := offsetSquare(from, d.File, d.Rank); ok && to == target && !wallBlocked(from, to) {
				return true
			}
		}
		return false
	case Knight:
		return jumpReaches(from, target, knightJumps)
	case King:
		df, dr := target.File()-from.File(), target.Rank()-from.Rank()
		if df < -1 || df > 1 || dr < -1 || dr > 1 || (df == 0 && dr == 0) {
			return false
		}
		return target.Playable() && !wallBlocked(from, target)
	case Bishop:
		return b.slideReaches(from, target, diagonalDirs)
	case Rook:
		return b.slideReaches(from, target, orthogonalDirs)
	case Queen:
		if b.slideReaches(from, target, orthogonalDirs) || b.slideReaches(from, target, diagonalDirs) {
			return true
		}
		return jumpReaches(from, target, knightJumps)
	default:
		return false
	}
}

func jumpReaches(from, target Square, jumps []Delta) bool {
	df, dr := target.File()-from.File(), target.Rank()-from.Rank()
	for _, j := range jumps {
		if j.File == df && j.Rank == dr {
			return target.Playable() && !wallBlocked(from, target)
		}
	}
	return false
}

// slideReaches walks the ray from from toward target along one of dirs,
// honoring occupancy and fortress walls.
func (b *Board) slideReaches(from, target Square, dirs []Delta) bool {
	df, dr := target.File()-from.File(), target.Rank()-from.Rank()
	step, ok := rayStep(df, dr, dirs)
	if !ok {
		return false
	}
	cur := from
	for {
		next, ok := offsetSquare(cur, step.File, step.Rank)
		if !ok || wallBlocked(cur, next) {
			return false
		}
		if next == target {
			return true
		}
		if b.cells[next].occupied {
			return false
		}
		cur = next
	}
}

func rayStep(df, dr int, dirs []Delta) (Delta, bool) {
	if df == 0 && dr == 0 {
		return Delta{}, false
	}
	for _, d := range dirs {
		if d.File == sign(df) && d.Rank == sign(dr) {
			// alignment: orthogonal needs one zero axis, diagonal
			// equal magnitudes
			if d.File == 0 || d.Rank == 0 {
				if df == 0 || dr == 0 {
					return d, true
				}
				return Delta{}, false
			}
			if abs(df) == abs(dr) {
				return d, true
			}
			return Delta{}, false
		}
	}
	return Delta{}, false
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	default:
		return 0
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
