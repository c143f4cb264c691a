package game

import (
	"fmt"
	"strconv"
)

// Square is a linear index into the 16x16 grid, rank-major: index =
// rank*16 + file, with file 0 = 'A' and rank 0 = rank "1".
type Square uint8

const (
	// BoardSize is the width of the full addressable grid.
	BoardSize = 16
	// NumSquares is the size of the full addressable grid, including
	// the permanently non-playable cells outside the cross shape.
	NumSquares = BoardSize * BoardSize
)

func (s Square) File() int { return int(s) & (BoardSize - 1) }
func (s Square) Rank() int { return int(s) >> 4 }

func (s Square) Index() int { return int(s) }

// Playable reports whether the square lies inside the playable
// cross-plus-fortress shape. Non-playable squares are permanently
// unoccupiable, which is distinct from empty.
func (s Square) Playable() bool { return playableMask[s] }

// String renders the notation form, e.g. "E5".
func (s Square) String() string {
	return string(rune('A'+s.File())) + strconv.Itoa(s.Rank()+1)
}

// SquareAt converts zero-based (file, rank) coordinates to a Square.
func SquareAt(file, rank int) (Square, error) {
	if file < 0 || file >= BoardSize || rank < 0 || rank >= BoardSize {
		return 0, &AddressError{Input: fmt.Sprintf("(%d,%d)", file, rank)}
	}
	sq := Square(rank*BoardSize + file)
	if !sq.Playable() {
		return 0, &AddressError{Input: fmt.Sprintf("(%d,%d)", file, rank)}
	}
	return sq, nil
}

// SquareFromIndex converts a linear index to a Square.
func SquareFromIndex(index int) (Square, error) {
	if index < 0 || index >= NumSquares || !Square(index).Playable() {
		return 0, &AddressError{Input: strconv.Itoa(index)}
	}
	return Square(index), nil
}

// ParseSquare parses notation such as "E5", "e5" or the zero-padded
// "E05" form.
func ParseSquare(notation string) (Square, error) {
	if len(notation) < 2 || len(notation) > 3 {
		return 0, &AddressError{Input: notation}
	}
	file := int(notation[0])
	switch {
	case file >= 'A' && file <= 'P':
		file -= 'A'
	case file >= 'a' && file <= 'p':
		file -= 'a'
	default:
		return 0, &AddressError{Input: notation}
	}
	rank, err := strconv.Atoi(notation[1:])
	if err != nil || rank < 1 || rank > BoardSize {
		return 0, &AddressError{Input: notation}
	}
	sq := Square((rank-1)*BoardSize + file)
	if !sq.Playable() {
		return 0, &AddressError{Input: notation}
	}
	return sq, nil
}

// MustSquare is ParseSquare for trusted literals; it panics on bad input.
func MustSquare(notation string) Square {
	sq, err := ParseSquare(notation)
	if err != nil {
		panic(err)
	}
	return sq
}

var playableMask = buildPlayableMask()

// buildPlayableMask carves the cross shape out of the 16x16 grid: the
// rows behind the top and bottom armies lose files E-L, the rows behind
// the side armies lose files A-B and O-P. The four 4x4 corners that
// survive are the fortresses.
func buildPlayableMask() [NumSquares]bool {
	var mask [NumSquares]bool
	for i := range mask {
		mask[i] = true
	}
	for _, rank := range []int{0, 1, 14, 15} {
		for file := 4; file <= 11; file++ {
			mask[rank*BoardSize+file] = false
		}
	}
	for rank := 4; rank <= 11; rank++ {
		for _, file := range []int{0, 1, 14, 15} {
			mask[rank*BoardSize+file] = false
		}
	}
	return mask
}

// offsetSquare returns the square displaced by (df, dr), or false when
// the result leaves the board or lands on a non-playable cell.
func offsetSquare(from Square, df, dr int) (Square, bool) {
	file := from.File() + df
	rank := from.Rank() + dr
	if file < 0 || file >= BoardSize || rank < 0 || rank >= BoardSize {
		return 0, false
	}
	sq := Square(rank*BoardSize + file)
	if !sq.Playable() {
		return 0, false
	}
	return sq, true
}

// rotated maps a square clockwise around the board center, times
// quarter turns. The canonical layout is described for grey and rotated
// into place for the other three colors.
func rotated(sq Square, times int) Square {
	file, rank := sq.File(), sq.Rank()
	for i := 0; i < times; i++ {
		file, rank = BoardSize-1-rank, file
	}
	return Square(rank*BoardSize + file)
}

// insideFortress reports whether the square lies in one of the four 4x4
// corner regions.
func insideFortress(sq Square) bool {
	file, rank := sq.File(), sq.Rank()
	return (file <= 3 || file >= 12) && (rank <= 3 || rank >= 12)
}
