// Package game implements the rules of 3x3 tic-tac-toe: an immutable
// board, positions with win/tie detection, and pure move application.
// Values are never mutated after construction and may be shared freely.
package game

// Mark is one of the two player symbols placed in a cell.
type Mark string

const (
	MarkX Mark = "X"
	MarkO Mark = "O"

	// EmptyCell is the zero Mark and marks an unoccupied cell.
	EmptyCell Mark = ""
)

// Other - returns the opposing mark.
func (that Mark) Other() Mark {
	if that == MarkX {
		return MarkO
	}
	return MarkX
}

func (that Mark) isPlayable() bool {
	return that == MarkX || that == MarkO
}
