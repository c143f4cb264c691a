package game

import "testing"

func collectMoves(b *Board, from Square) map[string]Move {
	out := make(map[string]Move)
	for mv := range b.PseudoLegal(from) {
		out[mv.To.String()] = mv
	}
	return out
}

func TestQueenKnightJumpsFromOpening(t *testing.T) {
	b := NewBoard()
	moves := collectMoves(b, MustSquare("I14"))

	// every slide is blocked by the white army, so the opening queen
	// moves are exactly the two open knight-style jumps
	if len(moves) != 2 {
		t.Fatalf("opening queen has %d moves, want 2: %v", len(moves), moves)
	}
	for _, to := range []string{"H12", "J12"} {
		if _, ok := moves[to]; !ok {
			t.Fatalf("opening queen should reach %s; got %v", to, moves)
		}
	}
}

func TestQueenSlides(t *testing.T) {
	b := buildBoard(t, White, []placed{
		{"H8", pc(White, Queen)},
		{"H11", pc(Black, Pawn)},
		{"K8", pc(Grey, Pawn)}, // teammate blocks without capture
	})
	moves := collectMoves(b, MustSquare("H8"))

	if _, ok := moves["H11"]; !ok {
		t.Fatal("queen should capture the black pawn on H11")
	}
	if _, ok := moves["H12"]; ok {
		t.Fatal("queen must stop on the captured pawn's square")
	}
	if _, ok := moves["J8"]; !ok {
		t.Fatal("queen should slide up to the teammate on K8")
	}
	if _, ok := moves["K8"]; ok {
		t.Fatal("queen must not capture a teammate")
	}
	if _, ok := moves["J9"]; !ok {
		t.Fatal("queen should keep its knight-style jump in the open")
	}
}

func TestPawnMoves(t *testing.T) {
	t.Run("double step from home", func(t *testing.T) {
		b := NewBoard()
		moves := collectMoves(b, MustSquare("D8"))
		for _, to := range []string{"E8", "F8"} {
			if _, ok := moves[to]; !ok {
				t.Fatalf("black home pawn should reach %s; got %v", to, moves)
			}
		}
		if len(moves) != 2 {
			t.Fatalf("black home pawn has %d moves, want 2: %v", len(moves), moves)
		}
	})

	t.Run("captures are diagonal only", func(t *testing.T) {
		b := buildBoard(t, Grey, []placed{
			{"E5", pc(Grey, Pawn)},
			{"F6", pc(Black, Pawn)},
			{"D6", pc(White, Pawn)}, // teammate, not a target
			{"E6", pc(Black, Rook)}, // straight ahead, blocks the push
		})
		moves := collectMoves(b, MustSquare("E5"))
		if _, ok := moves["F6"]; !ok {
			t.Fatal("pawn should capture diagonally on F6")
		}
		if _, ok := moves["D6"]; ok {
			t.Fatal("pawn must not capture its teammate")
		}
		if _, ok := moves["E6"]; ok {
			t.Fatal("pawn must not capture straight ahead")
		}
	})

	t.Run("promotion flagged at the threshold", func(t *testing.T) {
		b := buildBoard(t, Black, []placed{
			{"I8", pc(Black, Pawn)},
		})
		moves := collectMoves(b, MustSquare("I8"))
		mv, ok := moves["J8"]
		if !ok {
			t.Fatalf("pawn should advance to J8; got %v", moves)
		}
		if !mv.CanPromote {
			t.Fatal("advance to the eighth-rank equivalent should flag promotion")
		}
	})
}

func TestFrozenPiecesBlockWithoutBeingTargets(t *testing.T) {
	b := buildBoard(t, White, []placed{
		{"H8", pc(White, Rook)},
		{"H10", pc(Black, Pawn)},
	})
	b.frozen[Black] = true

	moves := collectMoves(b, MustSquare("H8"))
	if _, ok := moves["H9"]; !ok {
		t.Fatal("rook should slide up to the frozen pawn")
	}
	if _, ok := moves["H10"]; ok {
		t.Fatal("a frozen color's piece must not be capturable")
	}
	if _, ok := moves["H11"]; ok {
		t.Fatal("a frozen color's piece must still block the ray")
	}

	if got := collectMoves(b, MustSquare("H10")); len(got) != 0 {
		t.Fatalf("a frozen color's piece should generate no moves, got %v", got)
	}
}

func TestCastleGeneration(t *testing.T) {
	t.Run("kingside", func(t *testing.T) {
		b := buildBoard(t, Grey, []placed{
			{"I3", pc(Grey, King)},
			{"L3", pc(Grey, Rook)},
		})
		b.castling = CastlingRightsForColor(Grey)

		moves := collectMoves(b, MustSquare("I3"))
		mv, ok := moves["K3"]
		if !ok {
			t.Fatalf("king should castle kingside; got %v", moves)
		}
		if !mv.IsCastle || mv.Castle != CastleKingside {
			t.Fatalf("castle move not flagged: %+v", mv)
		}
	})

	t.Run("queenside", func(t *testing.T) {
		b := buildBoard(t, Grey, []placed{
			{"I3", pc(Grey, King)},
			{"E3", pc(Grey, Rook)},
		})
		b.castling = CastlingRightsForColor(Grey)

		moves := collectMoves(b, MustSquare("I3"))
		mv, ok := moves["G3"]
		if !ok {
			t.Fatalf("king should castle queenside; got %v", moves)
		}
		if !mv.IsCastle || mv.Castle != CastleQueenside {
			t.Fatalf("castle move not flagged: %+v", mv)
		}
	})

	t.Run("blocked without the right", func(t *testing.T) {
		b := buildBoard(t, Grey, []placed{
			{"I3", pc(Grey, King)},
			{"L3", pc(Grey, Rook)},
		})
		if _, ok := collectMoves(b, MustSquare("I3"))["K3"]; ok {
			t.Fatal("castling must require the bookkeeping right")
		}
	})

	t.Run("blocked through an attacked path", func(t *testing.T) {
		b := buildBoard(t, Grey, []placed{
			{"I3", pc(Grey, King)},
			{"L3", pc(Grey, Rook)},
			{"J9", pc(Brown, Rook)}, // covers J3 on the king's path
		})
		b.castling = CastlingRightsForColor(Grey)

		if _, ok := collectMoves(b, MustSquare("I3"))["K3"]; ok {
			t.Fatal("castling must not cross an attacked square")
		}
		ok, reason := b.Validate(Move{From: MustSquare("I3"), To: MustSquare("K3")})
		if ok || reason != CastlingForbidden {
			t.Fatalf("Validate = (%v, %s), want (false, %s)", ok, reason, CastlingForbidden)
		}
	})

	t.Run("blocked by occupied between squares", func(t *testing.T) {
		b := buildBoard(t, Grey, []placed{
			{"I3", pc(Grey, King)},
			{"L3", pc(Grey, Rook)},
			{"J3", pc(Grey, Bishop)},
		})
		b.castling = CastlingRightsForColor(Grey)

		if _, ok := collectMoves(b, MustSquare("I3"))["K3"]; ok {
			t.Fatal("castling must not jump an occupied square")
		}
	})
}
