package game

import "strings"

type cell struct {
	piece    Piece
	occupied bool
}

// Board is the full game state: piece placement, side to move, per-color
// check and frozen flags, castling rights, the capture graveyard and the
// applied-move stack.
//
// Board is not safe for concurrent use; callers that share one across
// goroutines must serialize access.
type Board struct {
	cells   [NumSquares]cell
	turn    Color
	checked [NumColors]bool
	frozen  [NumColors]bool

	castling  CastlingRights
	graveyard []Piece
	stack     []moveRecord

	winner    Team
	hasWinner bool

	// basePlies counts moves played before a snapshot restore; the
	// stack only holds moves applied since.
	basePlies int

	policy PromotionPolicy
}

// startRow is the canonical back row in the grey frame, files E through L.
var startRow = [8]PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// setupRotations maps each color to the number of clockwise quarter
// turns applied to the grey-frame layout.
var setupRotations = [NumColors]int{Grey: 0, Brown: 1, White: 2, Black: 3}

// NewBoard returns a board in the initial position with the default
// promotion policy.
func NewBoard() *Board {
	return NewBoardWithPolicy(DefaultPromotionPolicy())
}

// NewBoardWithPolicy returns a board in the initial position using the
// given promotion policy.
func NewBoardWithPolicy(policy PromotionPolicy) *Board {
	b := &Board{
		turn:   White,
		policy: policy,
	}
	b.setup()
	for _, c := range Colors {
		b.castling = b.castling.With(CastlingRightsForColor(c))
	}
	return b
}

func (b *Board) setup() {
	place := func(color Color, file, rank int, pt PieceType) {
		sq := rotated(Square(rank*BoardSize+file), setupRotations[color])
		b.cells[sq] = cell{piece: Piece{Type: pt, Color: color}, occupied: true}
	}
	for _, color := range Colors {
		for i, pt := range startRow {
			place(color, 4+i, 2, pt)
		}
		for f := 4; f <= 11; f++ {
			place(color, f, 3, Pawn)
		}
		// fortress reserves
		place(color, 13, 2, Knight)
		place(color, 14, 0, Bishop)
		place(color, 15, 3, Rook)
	}
}

// Turn returns the color to move.
func (b *Board) Turn() Color { return b.turn }

// InCheck reports whether color's king is currently attacked.
func (b *Board) InCheck(color Color) bool { return b.checked[color] }

// Frozen reports whether color is checkmated and skipped in the turn
// order.
func (b *Board) Frozen(color Color) bool { return b.frozen[color] }

// FrozenColors returns the frozen colors in turn order.
func (b *Board) FrozenColors() []Color {
	var out []Color
	for _, c := range Colors {
		if b.frozen[c] {
			out = append(out, c)
		}
	}
	return out
}

// Winner returns the winning team once one team has both colors frozen.
func (b *Board) Winner() (Team, bool) { return b.winner, b.hasWinner }

// PieceAt returns the piece on sq, if any.
func (b *Board) PieceAt(sq Square) (Piece, bool) {
	c := b.cells[sq]
	return c.piece, c.occupied
}

// Graveyard returns the captured pieces in capture order.
func (b *Board) Graveyard() []Piece {
	out := make([]Piece, len(b.graveyard))
	copy(out, b.graveyard)
	return out
}

// Moves returns all applied moves in order.
func (b *Board) Moves() []Move {
	out := make([]Move, len(b.stack))
	for i, rec := range b.stack {
		out[i] = rec.move
	}
	return out
}

// MoveCount returns the number of completed rounds.
func (b *Board) MoveCount() int { return (b.basePlies + len(b.stack)) / NumColors }

// CastlingRights returns the current rights bitmask.
func (b *Board) CastlingRights() CastlingRights { return b.castling }

// MayCastle reports whether color still holds the right on side. This
// is the bookkeeping right only; path and check conditions are tested
// at move generation time.
func (b *Board) MayCastle(color Color, side CastlingSide) bool {
	return b.castling.HasSide(color, side)
}

// Policy returns the board's promotion policy.
func (b *Board) Policy() PromotionPolicy { return b.policy }

// colorInitials indexes by Color; black renders as "k" to keep brown
// unambiguous.
var colorInitials = [NumColors]string{White: "w", Brown: "b", Grey: "g", Black: "k"}

// String renders the board as a 16-row grid, rank 16 at the top. Each
// playable square is two characters: color initial then piece letter,
// or ".." when empty. Non-playable corners render as spaces.
func (b *Board) String() string {
	var sb strings.Builder
	for rank := BoardSize - 1; rank >= 0; rank-- {
		for file := 0; file < BoardSize; file++ {
			if file > 0 {
				sb.WriteByte(' ')
			}
			sq := Square(rank*BoardSize + file)
			if !sq.Playable() {
				sb.WriteString("  ")
				continue
			}
			c := b.cells[sq]
			if !c.occupied {
				sb.WriteString("..")
				continue
			}
			sb.WriteString(colorInitials[c.piece.Color])
			sb.WriteString(c.piece.Type.String())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
