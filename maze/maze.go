/*
Package maze provides a generator for perfect rectangular mazes.

A maze is described only by which walls between adjacent cells are open. Vertical passages join a
cell to its right-hand neighbour and horizontal passages join a cell to the one below it. Every maze
built here is a spanning tree over its cells: exactly one path links any two cells.

Mazes are produced by a randomized depth-first backtracker driven by an injected Source, so a fixed
seed always yields the same maze. Once built, a Maze is immutable and safe to share between goroutines.
*/
package maze

import (
	"errors"
	"strings"
)

var (
	ErrInvalidDimensions = errors.New("invalid maze dimensions")
	ErrMalformedGrid     = errors.New("passage grid does not match maze dimensions")
	ErrNotPerfect        = errors.New("passages do not form a spanning tree")
	ErrInvalidMove       = errors.New("invalid move request")
	ErrOutOfBounds       = errors.New("position is out of the maze")
)

// Maze is a finished perfect maze.
type Maze struct {
	rows        int
	cols        int
	verticals   [][]bool // rows x cols-1; true when (r,c) and (r,c+1) are joined
	horizontals [][]bool // rows-1 x cols; true when (r,c) and (r+1,c) are joined
}

// FromPassages rebuilds a maze from its passage grids.
// The grids are copied and must describe a spanning tree over rows x cols cells.
func FromPassages(rows, cols int, verticals, horizontals [][]bool) (*Maze, error) {
	if rows < 1 || cols < 1 {
		return nil, ErrInvalidDimensions
	}
	if !hasShape(verticals, rows, cols-1) || !hasShape(horizontals, rows-1, cols) {
		return nil, ErrMalformedGrid
	}

	m := &Maze{
		rows:        rows,
		cols:        cols,
		verticals:   copyGrid(verticals),
		horizontals: copyGrid(horizontals),
	}

	if m.PassageCount() != rows*cols-1 || m.Reachable(CellPosition{}) != rows*cols {
		return nil, ErrNotPerfect
	}

	return m, nil
}

// Rows returns the number of rows.
func (m *Maze) Rows() int {
	return m.rows
}

// Cols returns the number of columns.
func (m *Maze) Cols() int {
	return m.cols
}

// VerticalOpen reports whether cell (row, col) is joined to (row, col+1).
func (m *Maze) VerticalOpen(row, col int) bool {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols-1 {
		return false
	}
	return m.verticals[row][col]
}

// HorizontalOpen reports whether cell (row, col) is joined to (row+1, col).
func (m *Maze) HorizontalOpen(row, col int) bool {
	if row < 0 || row >= m.rows-1 || col < 0 || col >= m.cols {
		return false
	}
	return m.horizontals[row][col]
}

// Verticals returns a copy of the vertical passage grid.
func (m *Maze) Verticals() [][]bool {
	return copyGrid(m.verticals)
}

// Horizontals returns a copy of the horizontal passage grid.
func (m *Maze) Horizontals() [][]bool {
	return copyGrid(m.horizontals)
}

// PassageCount returns the number of open passages.
func (m *Maze) PassageCount() int {
	count := 0
	for _, grid := range [][][]bool{m.verticals, m.horizontals} {
		for _, row := range grid {
			for _, open := range row {
				if open {
					count++
				}
			}
		}
	}
	return count
}

// Start is the cell where a consumer spawns the moving entity.
func (m *Maze) Start() CellPosition {
	return CellPosition{Row: 0, Col: 0}
}

// Goal is the cell where a consumer places the target.
func (m *Maze) Goal() CellPosition {
	return CellPosition{Row: m.rows - 1, Col: m.cols - 1}
}

// InBound checks whether a position lies on the grid.
func (m *Maze) InBound(pos CellPosition) bool {
	return pos.Row >= 0 && pos.Row < m.rows && pos.Col >= 0 && pos.Col < m.cols
}

// CanMove reports whether the passage leaving pos in direction d is open.
func (m *Maze) CanMove(pos CellPosition, d Direction) bool {
	if !m.InBound(pos) {
		return false
	}

	switch d {
	case Up:
		return m.HorizontalOpen(pos.Row-1, pos.Col)
	case Down:
		return m.HorizontalOpen(pos.Row, pos.Col)
	case Left:
		return m.VerticalOpen(pos.Row, pos.Col-1)
	case Right:
		return m.VerticalOpen(pos.Row, pos.Col)
	default:
		return false
	}
}

// IsValidMove checks if a move is valid (i.e., the connecting wall is open).
func (m *Maze) IsValidMove(move Move) bool {
	if move.From.Step(move.Direction) != move.To {
		return false
	}
	return m.CanMove(move.From, move.Direction)
}

// NewValidMove builds the move leaving pos in direction d, or fails with ErrInvalidMove.
func (m *Maze) NewValidMove(pos CellPosition, d Direction) (Move, error) {
	move := Move{From: pos, To: pos.Step(d), Direction: d}
	if !m.IsValidMove(move) {
		return Move{}, ErrInvalidMove
	}
	return move, nil
}

// Neighbors returns the cells reachable from pos in a single step.
func (m *Maze) Neighbors(pos CellPosition) []CellPosition {
	var result []CellPosition
	for _, d := range Directions {
		if m.CanMove(pos, d) {
			result = append(result, pos.Step(d))
		}
	}
	return result
}

// String provides a textual representation of the maze.
func (m *Maze) String() string {
	var output strings.Builder

	// Top boundary
	output.WriteString("+" + strings.Repeat("---+", m.cols) + "\n")

	for row := 0; row < m.rows; row++ {
		output.WriteString("|")
		for col := 0; col < m.cols; col++ {
			if m.VerticalOpen(row, col) {
				output.WriteString("    ")
			} else {
				output.WriteString("   |")
			}
		}
		output.WriteString("\n")

		output.WriteString("+")
		for col := 0; col < m.cols; col++ {
			if m.HorizontalOpen(row, col) {
				output.WriteString("   +")
			} else {
				output.WriteString("---+")
			}
		}
		output.WriteString("\n")
	}

	return output.String()
}

func newGrid(rows, cols int) [][]bool {
	grid := make([][]bool, rows)
	for i := range grid {
		grid[i] = make([]bool, cols)
	}
	return grid
}

func copyGrid(src [][]bool) [][]bool {
	dst := make([][]bool, len(src))
	for i := range src {
		dst[i] = append([]bool(nil), src[i]...)
		if dst[i] == nil {
			dst[i] = []bool{}
		}
	}
	return dst
}

func hasShape(grid [][]bool, rows, cols int) bool {
	if len(grid) != rows {
		return false
	}
	for _, row := range grid {
		if len(row) != cols {
			return false
		}
	}
	return true
}
