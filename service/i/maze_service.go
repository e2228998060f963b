package i

import "github.com/beka-birhanu/backtrack-maze/maze"

// MazeService builds mazes and lets callers share and reproduce them.
type MazeService interface {
	// Generate builds a fresh random maze and returns it together with its share code.
	Generate(rows, cols int) (*maze.Maze, string, error)

	// GenerateSeeded builds the maze described by the recipe and returns its share code.
	GenerateSeeded(r maze.Recipe) (*maze.Maze, string, error)

	// Restore rebuilds the maze a share code was issued for.
	Restore(code string) (*maze.Maze, error)

	// Export serializes a maze with the configured encoder.
	Export(m *maze.Maze) ([]byte, error)

	// Import decodes a maze produced by Export.
	Import(b []byte) (*maze.Maze, error)
}
