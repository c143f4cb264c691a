package game

import "fmt"

// moveRecord holds everything needed to reverse one executed move.
// Castling rights are deliberately absent: rights loss is monotonic
// and survives undo.
type moveRecord struct {
	move  Move
	mover Color
	piece Piece // as it stood on From before the move

	captured   Piece
	hasCapture bool

	isCastle bool
	castle   CastlingSide
	rookFrom Square
	rookTo   Square

	prevChecked   [NumColors]bool
	prevFrozen    [NumColors]bool
	prevWinner    Team
	prevHadWinner bool
}

// Apply validates and executes mv for the side to move. Warning
// reasons (CheckmateYourself, CheckmateTeammate) do not block
// execution; callers wanting confirmation should Validate first. A
// hard-invalid move, or any move after the winner is decided, returns
// an error wrapping ErrInvariantViolation.
func (b *Board) Apply(mv Move) error {
	if b.hasWinner {
		return fmt.Errorf("%w: game already decided for %s", ErrInvariantViolation, b.winner)
	}
	ok, reason := b.Validate(mv)
	if !ok {
		return fmt.Errorf("%w: %s: %s", ErrInvariantViolation, mv, reason.Message())
	}

	piece := b.cells[mv.From].piece
	rec := moveRecord{
		move:          mv,
		mover:         piece.Color,
		piece:         piece,
		prevChecked:   b.checked,
		prevFrozen:    b.frozen,
		prevWinner:    b.winner,
		prevHadWinner: b.hasWinner,
	}

	if target := b.cells[mv.To]; target.occupied {
		rec.captured = target.piece
		rec.hasCapture = true
		b.graveyard = append(b.graveyard, target.piece)
		b.revokeRightsForCapture(target.piece, mv.To)
	}

	moved := piece
	if mv.HasPromotion {
		moved.Type = mv.Promotion
	}
	b.cells[mv.From] = cell{}
	b.cells[mv.To] = cell{piece: moved, occupied: true}

	if piece.Type == King {
		if side, ok := castleSideFor(piece.Color, mv.From, mv.To); ok {
			g := castleTable[piece.Color][side]
			rook := b.cells[g.rookFrom].piece
			b.cells[g.rookFrom] = cell{}
			b.cells[g.rookTo] = cell{piece: rook, occupied: true}
			rec.isCastle = true
			rec.castle = side
			rec.rookFrom = g.rookFrom
			rec.rookTo = g.rookTo
		}
		b.castling = b.castling.WithoutColor(piece.Color)
	}
	if piece.Type == Rook {
		b.revokeRookRight(piece.Color, mv.From)
	}

	b.stack = append(b.stack, rec)
	b.refreshStatus(piece.Color)
	b.advanceTurn(piece.Color)
	return nil
}

// revokeRookRight drops the castling right tied to a rook leaving its
// original square.
func (b *Board) revokeRookRight(color Color, from Square) {
	for _, side := range []CastlingSide{CastleKingside, CastleQueenside} {
		if castleTable[color][side].rookFrom == from {
			b.castling = b.castling.Without(CastlingRight(color, side))
		}
	}
}

// revokeRightsForCapture drops the victim's rights when a king or a
// rook on its original square is captured.
func (b *Board) revokeRightsForCapture(victim Piece, at Square) {
	switch victim.Type {
	case King:
		b.castling = b.castling.WithoutColor(victim.Color)
	case Rook:
		b.revokeRookRight(victim.Color, at)
	}
}

// advanceTurn hands the turn to the next live color after mover. With
// every color frozen the turn stays put; the winner is already set in
// that case.
func (b *Board) advanceTurn(mover Color) {
	next := (mover + 1) % NumColors
	for i := 0; i < NumColors; i++ {
		if !b.frozen[next] {
			b.turn = next
			return
		}
		next = (next + 1) % NumColors
	}
}

// NextTurn advances the turn pointer n times, skipping frozen colors.
// It returns an error wrapping ErrInvariantViolation when every color
// is frozen.
func (b *Board) NextTurn(n int) error {
	for step := 0; step < n; step++ {
		next := (b.turn + 1) % NumColors
		moved := false
		for i := 0; i < NumColors; i++ {
			if !b.frozen[next] {
				b.turn = next
				moved = true
				break
			}
			next = (next + 1) % NumColors
		}
		if !moved {
			return fmt.Errorf("%w: all colors frozen", ErrInvariantViolation)
		}
	}
	return nil
}

// Pop reverses the most recent applied move and reports whether one
// was undone. Turn, check, frozen and winner state return to their
// pre-move values; castling rights do not.
func (b *Board) Pop() bool {
	if len(b.stack) == 0 {
		return false
	}
	rec := b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]

	if rec.isCastle {
		rook := b.cells[rec.rookTo].piece
		b.cells[rec.rookTo] = cell{}
		b.cells[rec.rookFrom] = cell{piece: rook, occupied: true}
	}

	b.cells[rec.move.To] = cell{}
	b.cells[rec.move.From] = cell{piece: rec.piece, occupied: true}
	if rec.hasCapture {
		b.cells[rec.move.To] = cell{piece: rec.captured, occupied: true}
		b.graveyard = b.graveyard[:len(b.graveyard)-1]
	}

	b.checked = rec.prevChecked
	b.frozen = rec.prevFrozen
	b.winner = rec.prevWinner
	b.hasWinner = rec.prevHadWinner
	b.turn = rec.mover
	return true
}
