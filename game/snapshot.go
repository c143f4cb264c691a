package game

import "fmt"

// PieceState is one occupied square in a snapshot.
type PieceState struct {
	Square string `json:"square"`
	Type   string `json:"type"`
	Color  string `json:"color"`
}

// GravePiece is one captured piece in a snapshot.
type GravePiece struct {
	Type  string `json:"type"`
	Color string `json:"color"`
}

// Snapshot is the serializable form of a board. It carries the full
// position plus derived status so a restore needs no replay; the
// applied-move stack is recorded as notation only, so a restored board
// cannot undo past the snapshot point.
type Snapshot struct {
	Turn      string       `json:"turn"`
	Pieces    []PieceState `json:"pieces"`
	Castling  string       `json:"castling"`
	Checked   []string     `json:"checked,omitempty"`
	Frozen    []string     `json:"frozen,omitempty"`
	Graveyard []GravePiece `json:"graveyard,omitempty"`
	Moves     []string     `json:"moves,omitempty"`
	Plies     int          `json:"plies"`
	Winner    string       `json:"winner,omitempty"`
}

// Snapshot captures the board's current state.
func (b *Board) Snapshot() Snapshot {
	snap := Snapshot{
		Turn:     b.turn.String(),
		Castling: b.castling.String(),
		Plies:    b.basePlies + len(b.stack),
	}
	for idx := 0; idx < NumSquares; idx++ {
		c := b.cells[idx]
		if !c.occupied {
			continue
		}
		snap.Pieces = append(snap.Pieces, PieceState{
			Square: Square(idx).String(),
			Type:   c.piece.Type.String(),
			Color:  c.piece.Color.String(),
		})
	}
	for _, color := range Colors {
		if b.checked[color] {
			snap.Checked = append(snap.Checked, color.String())
		}
		if b.frozen[color] {
			snap.Frozen = append(snap.Frozen, color.String())
		}
	}
	for _, p := range b.graveyard {
		snap.Graveyard = append(snap.Graveyard, GravePiece{Type: p.Type.String(), Color: p.Color.String()})
	}
	for _, rec := range b.stack {
		snap.Moves = append(snap.Moves, rec.move.String())
	}
	if b.hasWinner {
		snap.Winner = b.winner.String()
	}
	return snap
}

// FromSnapshot rebuilds a board from a snapshot taken with
// Board.Snapshot. The snapshot's recorded check, frozen and winner
// state is authoritative and is restored as-is.
func FromSnapshot(snap Snapshot) (*Board, error) {
	return FromSnapshotWithPolicy(snap, DefaultPromotionPolicy())
}

// FromSnapshotWithPolicy is FromSnapshot with an explicit promotion
// policy for subsequent moves.
func FromSnapshotWithPolicy(snap Snapshot, policy PromotionPolicy) (*Board, error) {
	b := &Board{policy: policy, basePlies: snap.Plies}

	turn, ok := ParseColor(snap.Turn)
	if !ok {
		return nil, fmt.Errorf("snapshot: unknown turn color %q", snap.Turn)
	}
	b.turn = turn

	rights, err := ParseCastlingRights(snap.Castling)
	if err != nil {
		return nil, fmt.Errorf("snapshot: %w", err)
	}
	b.castling = rights

	for _, ps := range snap.Pieces {
		sq, err := ParseSquare(ps.Square)
		if err != nil {
			return nil, fmt.Errorf("snapshot: %w", err)
		}
		pt, ok := ParsePieceType(ps.Type)
		if !ok {
			return nil, fmt.Errorf("snapshot: unknown piece type %q", ps.Type)
		}
		color, ok := ParseColor(ps.Color)
		if !ok {
			return nil, fmt.Errorf("snapshot: unknown color %q", ps.Color)
		}
		if b.cells[sq].occupied {
			return nil, fmt.Errorf("snapshot: square %s listed twice", sq)
		}
		b.cells[sq] = cell{piece: Piece{Type: pt, Color: color}, occupied: true}
	}

	for _, name := range snap.Checked {
		color, ok := ParseColor(name)
		if !ok {
			return nil, fmt.Errorf("snapshot: unknown checked color %q", name)
		}
		b.checked[color] = true
	}
	for _, name := range snap.Frozen {
		color, ok := ParseColor(name)
		if !ok {
			return nil, fmt.Errorf("snapshot: unknown frozen color %q", name)
		}
		b.frozen[color] = true
	}

	for _, gp := range snap.Graveyard {
		pt, ok := ParsePieceType(gp.Type)
		if !ok {
			return nil, fmt.Errorf("snapshot: unknown piece type %q", gp.Type)
		}
		color, ok := ParseColor(gp.Color)
		if !ok {
			return nil, fmt.Errorf("snapshot: unknown color %q", gp.Color)
		}
		b.graveyard = append(b.graveyard, Piece{Type: pt, Color: color})
	}

	if snap.Winner != "" {
		team, ok := parseTeam(snap.Winner)
		if !ok {
			return nil, fmt.Errorf("snapshot: unknown winner %q", snap.Winner)
		}
		b.winner = team
		b.hasWinner = true
	}
	return b, nil
}

func parseTeam(s string) (Team, bool) {
	switch s {
	case TeamWhiteGrey.String():
		return TeamWhiteGrey, true
	case TeamBrownBlack.String():
		return TeamBrownBlack, true
	default:
		return 0, false
	}
}
