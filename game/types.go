package game

import (
	"fmt"
	"strings"
)

// Color identifies one of the four players, in turn order.
type Color uint8

const (
	White Color = iota
	Brown
	Grey
	Black
)

// NumColors is the number of players in a game.
const NumColors = 4

// Colors lists all colors in turn order.
var Colors = [NumColors]Color{White, Brown, Grey, Black}

// Teammate returns the color seated diametrically opposite c.
func (c Color) Teammate() Color { return (c + 2) % NumColors }

func (c Color) Team() Team {
	if c == White || c == Grey {
		return TeamWhiteGrey
	}
	return TeamBrownBlack
}

func (c Color) Index() int { return int(c) }

func (c Color) String() string {
	switch c {
	case White:
		return "white"
	case Brown:
		return "brown"
	case Grey:
		return "grey"
	case Black:
		return "black"
	default:
		return fmt.Sprintf("color(%d)", uint8(c))
	}
}

func ParseColor(s string) (Color, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "white":
		return White, true
	case "brown":
		return Brown, true
	case "grey", "gray":
		return Grey, true
	case "black":
		return Black, true
	default:
		return White, false
	}
}

// Team is a pairing of two colors sharing a win/loss outcome.
type Team uint8

const (
	TeamWhiteGrey Team = iota
	TeamBrownBlack
)

func (t Team) Colors() [2]Color {
	if t == TeamWhiteGrey {
		return [2]Color{White, Grey}
	}
	return [2]Color{Brown, Black}
}

func (t Team) Opponent() Team {
	if t == TeamWhiteGrey {
		return TeamBrownBlack
	}
	return TeamWhiteGrey
}

func (t Team) Contains(c Color) bool { return c.Team() == t }

func (t Team) String() string {
	if t == TeamWhiteGrey {
		return "white/grey"
	}
	return "brown/black"
}

type PieceType uint8

const (
	Pawn PieceType = iota
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the one-letter initial used in board dumps.
func (p PieceType) String() string {
	switch p {
	case Pawn:
		return "P"
	case Knight:
		return "N"
	case Bishop:
		return "B"
	case Rook:
		return "R"
	case Queen:
		return "Q"
	case King:
		return "K"
	default:
		return fmt.Sprintf("piece(%d)", uint8(p))
	}
}

// Name returns the long piece name.
func (p PieceType) Name() string {
	switch p {
	case Pawn:
		return "pawn"
	case Knight:
		return "knight"
	case Bishop:
		return "bishop"
	case Rook:
		return "rook"
	case Queen:
		return "queen"
	case King:
		return "king"
	default:
		return "?"
	}
}

// ParsePieceType accepts one-letter initials or long names.
func ParsePieceType(s string) (PieceType, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "p", "pawn":
		return Pawn, true
	case "n", "knight":
		return Knight, true
	case "b", "bishop":
		return Bishop, true
	case "r", "rook":
		return Rook, true
	case "q", "queen":
		return Queen, true
	case "k", "king":
		return King, true
	default:
		return 0, false
	}
}

// Piece is a piece kind together with its owner. Position is implied by
// the square holding it.
type Piece struct {
	Type  PieceType
	Color Color
}

func (p Piece) String() string { return p.Color.String() + " " + p.Type.Name() }

type CastlingSide uint8

const (
	CastleKingside CastlingSide = iota
	CastleQueenside
)

func (cs CastlingSide) String() string {
	switch cs {
	case CastleKingside:
		return "kingside"
	case CastleQueenside:
		return "queenside"
	default:
		return "?"
	}
}

// CastlingRights is a bitmask with one bit per color and side.
type CastlingRights uint8

const (
	CastlingNone CastlingRights = 0
	CastlingAll  CastlingRights = 0xFF
)

func CastlingRight(color Color, side CastlingSide) CastlingRights {
	return 1 << (uint(color)*2 + uint(side))
}

func CastlingRightsForColor(color Color) CastlingRights {
	return 3 << (uint(color) * 2)
}

func (cr CastlingRights) Has(right CastlingRights) bool { return cr&right != 0 }

func (cr CastlingRights) HasSide(color Color, side CastlingSide) bool {
	return cr.Has(CastlingRight(color, side))
}

func (cr CastlingRights) With(right CastlingRights) CastlingRights { return cr | right }

func (cr CastlingRights) Without(right CastlingRights) CastlingRights { return cr &^ right }

func (cr CastlingRights) WithoutColor(color Color) CastlingRights {
	return cr.Without(CastlingRightsForColor(color))
}

func (cr CastlingRights) String() string {
	if cr == CastlingNone {
		return "-"
	}
	parts := make([]string, 0, NumColors)
	for _, color := range Colors {
		var b strings.Builder
		if cr.HasSide(color, CastleKingside) {
			b.WriteByte('K')
		}
		if cr.HasSide(color, CastleQueenside) {
			b.WriteByte('Q')
		}
		if b.Len() > 0 {
			parts = append(parts, color.String()+":"+b.String())
		}
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, ",")
}

func ParseCastlingRights(s string) (CastlingRights, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" || trimmed == "-" {
		return CastlingNone, nil
	}
	var rights CastlingRights
	for _, part := range strings.Split(trimmed, ",") {
		name, sides, ok := strings.Cut(part, ":")
		if !ok {
			return CastlingNone, fmt.Errorf("invalid castling entry %q", part)
		}
		color, ok := ParseColor(name)
		if !ok {
			return CastlingNone, fmt.Errorf("invalid castling color %q", name)
		}
		for _, r := range sides {
			switch r {
			case 'K':
				rights = rights.With(CastlingRight(color, CastleKingside))
			case 'Q':
				rights = rights.With(CastlingRight(color, CastleQueenside))
			default:
				return CastlingNone, fmt.Errorf("invalid castling flag %q", string(r))
			}
		}
	}
	return rights, nil
}

func (cr CastlingRights) MarshalText() ([]byte, error) { return []byte(cr.String()), nil }

func (cr *CastlingRights) UnmarshalText(text []byte) error {
	parsed, err := ParseCastlingRights(string(text))
	if err != nil {
		return err
	}
	*cr = parsed
	return nil
}

// Reason classifies the outcome of validating a move.
type Reason uint8

const (
	Valid Reason = iota
	OutOfBounds
	NotYourPiece
	NotYourTurn
	NoSuchPseudoMove
	FriendlyFire
	WouldExposeSelfCheck
	WouldExposeTeammateCheck
	CheckmateTeammate
	CheckmateYourself
	MalformedPromotion
	CastlingForbidden
)

// Warning reports whether the reason marks a legal move that merely
// carries a freeze consequence the caller may want to confirm.
func (r Reason) Warning() bool {
	return r == CheckmateTeammate || r == CheckmateYourself
}

func (r Reason) String() string {
	switch r {
	case Valid:
		return "Valid"
	case OutOfBounds:
		return "OutOfBounds"
	case NotYourPiece:
		return "NotYourPiece"
	case NotYourTurn:
		return "NotYourTurn"
	case NoSuchPseudoMove:
		return "NoSuchPseudoMove"
	case FriendlyFire:
		return "FriendlyFire"
	case WouldExposeSelfCheck:
		return "WouldExposeSelfCheck"
	case WouldExposeTeammateCheck:
		return "WouldExposeTeammateCheck"
	case CheckmateTeammate:
		return "CheckmateTeammate"
	case CheckmateYourself:
		return "CheckmateYourself"
	case MalformedPromotion:
		return "MalformedPromotion"
	case CastlingForbidden:
		return "CastlingForbidden"
	default:
		return fmt.Sprintf("reason(%d)", uint8(r))
	}
}

// Message returns the player-facing explanation for a rejection.
func (r Reason) Message() string {
	switch r {
	case Valid:
		return "ok"
	case OutOfBounds:
		return "that square is not part of the board"
	case NotYourPiece:
		return "you can't move nothing"
	case NotYourTurn:
		return "it's not this piece's turn"
	case NoSuchPseudoMove:
		return "you can't move there"
	case FriendlyFire:
		return "friendly fire is disabled"
	case WouldExposeSelfCheck:
		return "this move would leave your king in check"
	case WouldExposeTeammateCheck:
		return "this move would leave your teammate's king in check"
	case CheckmateTeammate:
		return "this move checkmates your teammate"
	case CheckmateYourself:
		return "this move checkmates you"
	case MalformedPromotion:
		return "this promotion is not allowed"
	case CastlingForbidden:
		return "castling is not possible here"
	default:
		return "rejected"
	}
}

// Move is a candidate move from one square to another with an optional
// promotion choice. Validity is a property of (Move, Board) at
// validation time, not of the move itself.
type Move struct {
	From Square
	To   Square

	// Promotion is honored only when HasPromotion is set.
	Promotion    PieceType
	HasPromotion bool

	// CanPromote is flagged by the move generator when To lies on or
	// beyond the mover's promotion threshold.
	CanPromote bool

	// Castle metadata, flagged by the generator on castling king moves.
	Castle   CastlingSide
	IsCastle bool
}

func (m Move) String() string {
	var b strings.Builder
	b.WriteString(m.From.String())
	b.WriteByte('-')
	b.WriteString(m.To.String())
	if m.HasPromotion {
		b.WriteByte('=')
		b.WriteString(m.Promotion.String())
	}
	return b.String()
}
