package maze

// Recipe holds everything needed to rebuild a maze: its dimensions and the seed of its source.
type Recipe struct {
	Rows int
	Cols int
	Seed int64
}

// Build generates the maze described by the recipe. The same recipe always yields the same maze.
func (r Recipe) Build() (*Maze, error) {
	return Generate(r.Rows, r.Cols, NewSource(r.Seed))
}
