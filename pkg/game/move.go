package game

import (
	"errors"
	"fmt"
)

var (
	ErrCellOccupied = errors.New("cell is already occupied")
	ErrInvalidCell  = errors.New("invalid cell index")
)

// Move records a single placement: the mark placed, the target cell,
// and the positions before and after. Both positions are independent
// values that remain usable on their own.
type Move struct {
	Mark   Mark
	Cell   int
	Before Position
	After  Position
}

// MakeMove - places the current mark into the given cell and returns
// the move linking the receiver to the resulting position. It fails
// with ErrInvalidCell if the index is outside the board and with
// ErrCellOccupied if the cell is taken. The receiver is not mutated.
func (that Position) MakeMove(cell int) (Move, error) {
	if cell < 0 || cell >= BoardSize {
		return Move{}, fmt.Errorf("%w: cell %d", ErrInvalidCell, cell)
	}

	if that.board.Cell(cell) != EmptyCell {
		return Move{}, fmt.Errorf("%w: cell %d", ErrCellOccupied, cell)
	}

	mark := that.CurrentMark()

	after, err := NewPosition(that.board.WithCell(cell, mark), that.startingMark)
	if err != nil {
		return Move{}, fmt.Errorf("could not build position after move: %w", err)
	}

	return Move{
		Mark:   mark,
		Cell:   cell,
		Before: that,
		After:  after,
	}, nil
}
