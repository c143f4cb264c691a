package game

import (
	"strings"
	"testing"
)

// placed is a test-position entry: a piece on a named square.
type placed struct {
	sq    string
	piece Piece
}

func pc(color Color, pt PieceType) Piece { return Piece{Type: pt, Color: color} }

// buildBoard assembles an arbitrary position with no castling rights
// and no history. Check and frozen flags start clear; they settle on
// the first Apply.
func buildBoard(t *testing.T, turn Color, pieces []placed) *Board {
	t.Helper()
	b := &Board{turn: turn, policy: DefaultPromotionPolicy()}
	for _, p := range pieces {
		sq, err := ParseSquare(p.sq)
		if err != nil {
			t.Fatalf("bad test square %q: %v", p.sq, err)
		}
		if b.cells[sq].occupied {
			t.Fatalf("duplicate test square %q", p.sq)
		}
		b.cells[sq] = cell{piece: p.piece, occupied: true}
	}
	return b
}

func TestInitialSetup(t *testing.T) {
	b := NewBoard()

	kings := []struct {
		color Color
		sq    string
	}{
		{White, "H14"},
		{Brown, "N9"},
		{Grey, "I3"},
		{Black, "C8"},
	}
	for _, k := range kings {
		piece, ok := b.PieceAt(MustSquare(k.sq))
		if !ok {
			t.Fatalf("no piece on %s", k.sq)
		}
		if piece.Type != King || piece.Color != k.color {
			t.Fatalf("piece on %s = %s, want %s king", k.sq, piece, k.color)
		}
	}

	spots := []struct {
		sq    string
		piece Piece
	}{
		{"I14", pc(White, Queen)},
		{"H3", pc(Grey, Queen)},
		{"E3", pc(Grey, Rook)},
		{"L3", pc(Grey, Rook)},
		{"E4", pc(Grey, Pawn)},
		// grey fortress reserves
		{"N3", pc(Grey, Knight)},
		{"O1", pc(Grey, Bishop)},
		{"P4", pc(Grey, Rook)},
		// rotated armies
		{"M5", pc(Brown, Pawn)},
		{"H13", pc(White, Pawn)},
		{"D8", pc(Black, Pawn)},
	}
	for _, s := range spots {
		piece, ok := b.PieceAt(MustSquare(s.sq))
		if !ok {
			t.Fatalf("no piece on %s", s.sq)
		}
		if piece != s.piece {
			t.Fatalf("piece on %s = %s, want %s", s.sq, piece, s.piece)
		}
	}

	counts := map[Color]int{}
	for i := 0; i < NumSquares; i++ {
		if piece, ok := b.PieceAt(Square(i)); ok {
			counts[piece.Color]++
		}
	}
	for _, color := range Colors {
		// 8 back-row pieces, 8 pawns, 3 fortress reserves
		if counts[color] != 19 {
			t.Fatalf("%s has %d pieces, want 19", color, counts[color])
		}
	}

	if b.Turn() != White {
		t.Fatalf("opening turn = %s, want white", b.Turn())
	}
	for _, color := range Colors {
		for _, side := range []CastlingSide{CastleKingside, CastleQueenside} {
			if !b.MayCastle(color, side) {
				t.Fatalf("%s should open with the %s castling right", color, side)
			}
		}
	}
	if _, ok := b.Winner(); ok {
		t.Fatal("fresh board should have no winner")
	}
}

func TestNextTurnCycles(t *testing.T) {
	b := NewBoard()
	order := []Color{White, Brown, Grey, Black, White}
	for i, want := range order {
		if b.Turn() != want {
			t.Fatalf("step %d: turn = %s, want %s", i, b.Turn(), want)
		}
		if err := b.NextTurn(1); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
	}
}

func TestNextTurnSkipsFrozen(t *testing.T) {
	b := NewBoard()
	b.frozen[Brown] = true

	seen := []Color{b.Turn()}
	for i := 0; i < 3; i++ {
		if err := b.NextTurn(1); err != nil {
			t.Fatalf("advance %d: %v", i, err)
		}
		seen = append(seen, b.Turn())
	}
	want := []Color{White, Grey, Black, White}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("turn sequence %v, want %v", seen, want)
		}
	}

	for _, color := range Colors {
		b.frozen[color] = true
	}
	if err := b.NextTurn(1); err == nil {
		t.Fatal("NextTurn with all colors frozen should fail")
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	b := NewBoard()
	if err := b.Apply(Move{From: MustSquare("H13"), To: MustSquare("H11")}); err != nil {
		t.Fatalf("opening move: %v", err)
	}

	snap := b.Snapshot()
	restored, err := FromSnapshot(snap)
	if err != nil {
		t.Fatalf("FromSnapshot: %v", err)
	}

	if restored.Turn() != b.Turn() {
		t.Fatalf("restored turn = %s, want %s", restored.Turn(), b.Turn())
	}
	if restored.CastlingRights() != b.CastlingRights() {
		t.Fatalf("restored rights = %s, want %s", restored.CastlingRights(), b.CastlingRights())
	}
	if restored.String() != b.String() {
		t.Fatalf("restored layout differs:\n%s\nwant:\n%s", restored.String(), b.String())
	}
	for _, color := range Colors {
		if restored.InCheck(color) != b.InCheck(color) || restored.Frozen(color) != b.Frozen(color) {
			t.Fatalf("restored status for %s differs", color)
		}
	}
	if restored.MoveCount() != b.MoveCount() {
		t.Fatalf("restored move count = %d, want %d", restored.MoveCount(), b.MoveCount())
	}
}

func TestSnapshotRestoresFrozenAndWinner(t *testing.T) {
	b := winnerEndgame(t)
	if err := b.Apply(Move{From: MustSquare("H13"), To: MustSquare("D13")}); err != nil {
		t.Fatalf("Apply: %v", err)
	}

	restored, err := FromSnapshot(b.Snapshot())
	if err != nil {
		t.Fatalf("FromSnapshot: %v", err)
	}

	if !restored.Frozen(White) || !restored.Frozen(Grey) {
		t.Fatal("restored board should keep both losing colors frozen")
	}
	if !restored.InCheck(White) || !restored.InCheck(Grey) {
		t.Fatal("restored board should keep the check flags")
	}
	if restored.Frozen(Brown) || restored.Frozen(Black) {
		t.Fatal("the winning colors must stay live")
	}
	winner, ok := restored.Winner()
	if !ok || winner != TeamBrownBlack {
		t.Fatalf("restored winner = (%s, %v), want %s", winner, ok, TeamBrownBlack)
	}
	if restored.Turn() != b.Turn() {
		t.Fatalf("restored turn = %s, want %s", restored.Turn(), b.Turn())
	}

	err = restored.Apply(Move{From: MustSquare("C8"), To: MustSquare("D9")})
	if err == nil {
		t.Fatal("a restored decided game must refuse further moves")
	}
}

func TestBoardString(t *testing.T) {
	out := NewBoard().String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != BoardSize {
		t.Fatalf("board render has %d lines, want %d", len(lines), BoardSize)
	}
	if !strings.Contains(out, "gK") {
		t.Fatal("render should contain the grey king")
	}
	if !strings.Contains(out, "kP") {
		t.Fatal("render should contain a black pawn")
	}
}
