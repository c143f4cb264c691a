package game

// Validate checks mv for the side to move without mutating the board.
// The boolean reports whether Apply would accept the move; the Reason
// is Valid, a warning (move accepted but a color will freeze), or the
// first failed condition.
func (b *Board) Validate(mv Move) (bool, Reason) {
	if !mv.From.Playable() || !mv.To.Playable() {
		return false, OutOfBounds
	}
	piece, ok := b.PieceAt(mv.From)
	if !ok {
		return false, NotYourPiece
	}
	if piece.Color != b.turn {
		return false, NotYourTurn
	}
	if target, ok := b.PieceAt(mv.To); ok && target.Color.Team() == piece.Color.Team() {
		return false, FriendlyFire
	}
	if mv.HasPromotion {
		if piece.Type != Pawn || mv.Promotion == Pawn || mv.Promotion == King {
			return false, MalformedPromotion
		}
		if !b.policy.Eligible(piece.Color, mv.To) {
			return false, MalformedPromotion
		}
	}

	found := false
	for cand := range b.PseudoLegal(mv.From) {
		if cand.To == mv.To {
			found = true
			break
		}
	}
	if !found {
		if piece.Type == King {
			if _, ok := castleSideFor(piece.Color, mv.From, mv.To); ok {
				return false, CastlingForbidden
			}
		}
		return false, NoSuchPseudoMove
	}

	sim := b.simulate(mv, piece)
	if sim.colorInCheck(piece.Color) {
		if sim.hasEscape(piece.Color) {
			return false, WouldExposeSelfCheck
		}
		return true, CheckmateYourself
	}
	mate := piece.Color.Teammate()
	if !b.frozen[mate] && sim.colorInCheck(mate) {
		if sim.hasEscape(mate) {
			return false, WouldExposeTeammateCheck
		}
		return true, CheckmateTeammate
	}
	return true, Valid
}

// simulate returns a scratch board with mv's piece movement applied:
// capture, promotion and the castling rook relocation, but no status
// refresh and no history. The scratch board shares no mutable state
// with b.
func (b *Board) simulate(mv Move, piece Piece) *Board {
	sim := &Board{
		cells:    b.cells,
		turn:     b.turn,
		checked:  b.checked,
		frozen:   b.frozen,
		castling: b.castling,
		policy:   b.policy,
	}
	sim.cells[mv.From] = cell{}
	moved := piece
	if mv.HasPromotion {
		moved.Type = mv.Promotion
	}
	sim.cells[mv.To] = cell{piece: moved, occupied: true}
	if piece.Type == King {
		if side, ok := castleSideFor(piece.Color, mv.From, mv.To); ok {
			g := castleTable[piece.Color][side]
			if rook, ok := sim.PieceAt(g.rookFrom); ok && rook.Type == Rook && rook.Color == piece.Color {
				sim.cells[g.rookFrom] = cell{}
				sim.cells[g.rookTo] = cell{piece: rook, occupied: true}
			}
		}
	}
	return sim
}
