package game

// kingSquare locates color's king.
func (b *Board) kingSquare(color Color) (Square, bool) {
	for idx := 0; idx < NumSquares; idx++ {
		c := b.cells[idx]
		if c.occupied && c.piece.Color == color && c.piece.Type == King {
			return Square(idx), true
		}
	}
	return 0, false
}

// colorInCheck reports whether color's king is attacked by a live
// enemy on the current position.
func (b *Board) colorInCheck(color Color) bool {
	king, ok := b.kingSquare(color)
	if !ok {
		return false
	}
	return b.attackedByEnemies(king, color)
}

// hasEscape reports whether color has any pseudo-legal move after
// which its own king is out of check. A frozen color is probed as if
// live, so a freeze lifts once the check can be answered again.
func (b *Board) hasEscape(color Color) bool {
	if b.frozen[color] {
		probe := *b
		probe.frozen[color] = false
		return probe.hasEscape(color)
	}
	for mv := range b.movesFor(color) {
		piece, ok := b.PieceAt(mv.From)
		if !ok {
			continue
		}
		sim := b.simulate(mv, piece)
		if !sim.colorInCheck(color) {
			return true
		}
	}
	return false
}

// refreshStatus recomputes the per-color check and frozen flags after
// mover's move, then settles the winner. Checks are evaluated against
// the frozen set from before this move; the new frozen set is then
// derived in one pass so no color's freeze depends on another's from
// the same ply.
func (b *Board) refreshStatus(mover Color) {
	var checked, kingless [NumColors]bool
	for _, color := range Colors {
		if _, ok := b.kingSquare(color); !ok {
			// a captured king can never be rescued; the color is
			// permanently frozen
			kingless[color] = true
			continue
		}
		checked[color] = b.colorInCheck(color)
	}

	// a color freezes when checked with no answer, and thaws once the
	// check is gone or answerable again
	var frozen [NumColors]bool
	for _, color := range Colors {
		frozen[color] = kingless[color] || (checked[color] && !b.hasEscape(color))
	}
	b.checked = checked
	b.frozen = frozen

	if b.hasWinner {
		return
	}
	// the mover's enemies are examined first so a mutual wipe-out on
	// one ply falls to the mover
	enemy := mover.Team().Opponent()
	for _, team := range []Team{enemy, mover.Team()} {
		pair := team.Colors()
		if b.frozen[pair[0]] && b.frozen[pair[1]] {
			b.winner = team.Opponent()
			b.hasWinner = true
			return
		}
	}
}
