package game

import (
	"errors"
	"fmt"
)

// BoardSize is the number of cells on the grid.
const BoardSize = 9

var ErrMalformedBoard = errors.New("malformed board")

// Board is the 9-cell grid, row-major: index/3 is the row and index%3
// is the column. The zero value is the empty board.
type Board struct {
	cells [BoardSize]Mark
}

// NewBoard - builds a Board from exactly nine cell values, each of
// which must be EmptyCell, MarkX or MarkO.
func NewBoard(cells []Mark) (Board, error) {
	if len(cells) != BoardSize {
		return Board{}, fmt.Errorf("%w: expected %d cells, got %d", ErrMalformedBoard, BoardSize, len(cells))
	}

	var board Board
	for i, cell := range cells {
		if cell != EmptyCell && !cell.isPlayable() {
			return Board{}, fmt.Errorf("%w: cell %d holds %q", ErrMalformedBoard, i, string(cell))
		}
		board.cells[i] = cell
	}

	return board, nil
}

// ParseBoard - builds a Board from a nine-character row-major string.
// 'X' and 'O' place marks; '.' and ' ' leave the cell empty.
func ParseBoard(s string) (Board, error) {
	if len(s) != BoardSize {
		return Board{}, fmt.Errorf("%w: expected %d characters, got %d", ErrMalformedBoard, BoardSize, len(s))
	}

	var board Board
	for i := 0; i < BoardSize; i++ {
		switch s[i] {
		case 'X':
			board.cells[i] = MarkX
		case 'O':
			board.cells[i] = MarkO
		case '.', ' ':
			board.cells[i] = EmptyCell
		default:
			return Board{}, fmt.Errorf("%w: unexpected character %q at cell %d", ErrMalformedBoard, s[i], i)
		}
	}

	return board, nil
}

// Cell - returns the mark at the given index, or EmptyCell.
func (that Board) Cell(index int) Mark {
	return that.cells[index]
}

// Cells - returns a copy of all nine cells.
func (that Board) Cells() [BoardSize]Mark {
	return that.cells
}

// Count - returns how many cells hold the given mark.
func (that Board) Count(mark Mark) int {
	count := 0
	for _, cell := range that.cells {
		if cell == mark {
			count++
		}
	}
	return count
}

// EmptyCount - returns how many cells are unoccupied.
func (that Board) EmptyCount() int {
	return that.Count(EmptyCell)
}

// WithCell - returns a copy of the board with the given cell set to
// mark. It does not check that the cell was empty; MakeMove does.
func (that Board) WithCell(index int, mark Mark) Board {
	board := that
	board.cells[index] = mark
	return board
}
