package game

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidPosition = errors.New("invalid position")

	// WinCombos lists the 8 winning lines: 3 rows, 3 columns, 2 diagonals.
	WinCombos = [][3]int{
		{0, 1, 2},
		{3, 4, 5},
		{6, 7, 8},
		{0, 3, 6},
		{1, 4, 7},
		{2, 5, 8},
		{0, 4, 8},
		{2, 4, 6},
	}
)

// Position is a Board together with the mark that moved first. It is
// the unit of game state: every derived quantity (whose turn it is,
// winner, legal moves) comes from here. Positions are validated at
// construction and never change afterwards.
type Position struct {
	board        Board
	startingMark Mark

	winner       Mark
	winningCells []int
}

// NewPosition - validates the board against the rules of alternating
// play and returns the position. It fails with ErrInvalidPosition if
// the starting mark is not X or O, if the mark counts could not arise
// from alternating play that opened with the starting mark, or if both
// marks complete a winning line.
func NewPosition(board Board, startingMark Mark) (Position, error) {
	if !startingMark.isPlayable() {
		return Position{}, fmt.Errorf("%w: starting mark %q is not %q or %q", ErrInvalidPosition, string(startingMark), MarkX, MarkO)
	}

	started := board.Count(startingMark)
	other := board.Count(startingMark.Other())
	if started < other || started > other+1 {
		return Position{}, fmt.Errorf("%w: %d %q marks against %d %q marks with %q starting", ErrInvalidPosition, started, startingMark, other, startingMark.Other(), startingMark)
	}

	lineX := winningLine(board, MarkX)
	lineO := winningLine(board, MarkO)
	if lineX != nil && lineO != nil {
		return Position{}, fmt.Errorf("%w: both marks complete a winning line", ErrInvalidPosition)
	}

	position := Position{board: board, startingMark: startingMark}
	switch {
	case lineX != nil:
		position.winner, position.winningCells = MarkX, lineX
	case lineO != nil:
		position.winner, position.winningCells = MarkO, lineO
	}

	return position, nil
}

// NewInitialPosition - returns the empty-board position with the given
// mark to move first.
func NewInitialPosition(startingMark Mark) (Position, error) {
	return NewPosition(Board{}, startingMark)
}

// Board - returns the position's board.
func (that Position) Board() Board {
	return that.board
}

// StartingMark - returns the mark that moved on turn one.
func (that Position) StartingMark() Mark {
	return that.startingMark
}

// CurrentMark - returns whose turn it is. Marks strictly alternate
// starting with the starting mark, so equal counts mean the starting
// mark moves next.
func (that Position) CurrentMark() Mark {
	if that.board.Count(MarkX) == that.board.Count(MarkO) {
		return that.startingMark
	}
	return that.startingMark.Other()
}

// GameNotStarted - reports whether no mark has been placed yet.
func (that Position) GameNotStarted() bool {
	return that.board.EmptyCount() == BoardSize
}

// Winner - returns the winning mark, or EmptyCell if there is none.
func (that Position) Winner() Mark {
	return that.winner
}

// WinningCells - returns the cell indices of the winning line in
// ascending order, or nil if there is no winner.
func (that Position) WinningCells() []int {
	if that.winningCells == nil {
		return nil
	}

	cells := make([]int, len(that.winningCells))
	copy(cells, that.winningCells)
	return cells
}

// Tie - reports whether the board is full with no winner.
func (that Position) Tie() bool {
	return that.winner == EmptyCell && that.board.EmptyCount() == 0
}

// GameOver - reports whether the game has ended, by win or by tie.
func (that Position) GameOver() bool {
	return that.winner != EmptyCell || that.Tie()
}

// PossibleMoves - returns a move for every empty cell in ascending
// index order, or nothing once the game is over.
func (that Position) PossibleMoves() []Move {
	if that.GameOver() {
		return nil
	}

	var moves []Move
	for i := 0; i < BoardSize; i++ {
		if that.board.cells[i] != EmptyCell {
			continue
		}

		move, err := that.MakeMove(i)
		if err != nil {
			continue
		}
		moves = append(moves, move)
	}

	return moves
}

// winningLine - returns the first line fully held by mark, or nil.
func winningLine(board Board, mark Mark) []int {
	for _, combo := range WinCombos {
		if board.cells[combo[0]] == mark && board.cells[combo[1]] == mark && board.cells[combo[2]] == mark {
			return []int{combo[0], combo[1], combo[2]}
		}
	}
	return nil
}
