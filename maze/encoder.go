package maze

// Encoder serializes mazes. Implementations must rebuild through FromPassages when decoding.
type Encoder interface {
	Marshal(m *Maze) ([]byte, error)
	Unmarshal(b []byte) (*Maze, error)
}
