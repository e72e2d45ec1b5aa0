package domain

import "errors"

// Cell is a single board square: Empty, or a disc owned by Black or White.
// The numeric values double as the wire format used by the frontend.
type Cell int8

const (
	Empty Cell = 0
	Black Cell = 1
	White Cell = -1
)

// Size is the board edge length.
const Size = 8

// Errors returned by domain operations.
var (
	ErrOutOfBounds = errors.New("out of bounds")
	ErrOccupied    = errors.New("cell occupied")
	ErrNoCapture   = errors.New("move captures nothing")
	ErrBadPlayer   = errors.New("player must be 1 (black) or -1 (white)")
	ErrBadBoard    = errors.New("board must be 8x8 with cells in {-1, 0, 1}")
)

// Valid reports whether c is a playable side.
func (c Cell) Valid() bool { return c == Black || c == White }

// Opponent returns the other side. Only meaningful for Black and White.
func (c Cell) Opponent() Cell { return -c }

func (c Cell) String() string {
	switch c {
	case Black:
		return "black"
	case White:
		return "white"
	default:
		return "empty"
	}
}

// Board is a fixed 8x8 grid stored row-major. It has value semantics:
// passing a Board copies it, so callers always keep an untouched snapshot.
type Board [Size][Size]Cell

// NewBoard returns the standard Othello starting position.
func NewBoard() Board {
	var b Board
	mid := Size / 2
	b[mid-1][mid-1], b[mid][mid] = White, White
	b[mid-1][mid], b[mid][mid-1] = Black, Black
	return b
}

// Move is a zero-indexed (row, col) coordinate.
type Move struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func inBounds(r, c int) bool { return r >= 0 && r < Size && c >= 0 && c < Size }

// BoardFromGrid validates and converts the wire representation.
func BoardFromGrid(grid [][]int) (Board, error) {
	var b Board
	if len(grid) != Size {
		return b, ErrBadBoard
	}
	for r, row := range grid {
		if len(row) != Size {
			return b, ErrBadBoard
		}
		for c, v := range row {
			cell := Cell(v)
			if cell != Empty && !cell.Valid() {
				return b, ErrBadBoard
			}
			b[r][c] = cell
		}
	}
	return b, nil
}

// PlayerFromInt validates the wire player value.
func PlayerFromInt(v int) (Cell, error) {
	p := Cell(v)
	if !p.Valid() {
		return Empty, ErrBadPlayer
	}
	return p, nil
}

// Grid returns the wire representation of the board.
func (b Board) Grid() [][]int {
	grid := make([][]int, Size)
	for r := 0; r < Size; r++ {
		grid[r] = make([]int, Size)
		for c := 0; c < Size; c++ {
			grid[r][c] = int(b[r][c])
		}
	}
	return grid
}

// Count returns the number of cells holding v.
func (b Board) Count(v Cell) int {
	n := 0
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if b[r][c] == v {
				n++
			}
		}
	}
	return n
}

// Winner compares disc counts; Empty means a tie.
func (b Board) Winner() Cell {
	black, white := b.Count(Black), b.Count(White)
	switch {
	case black > white:
		return Black
	case white > black:
		return White
	default:
		return Empty
	}
}
