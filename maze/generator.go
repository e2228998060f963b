package maze

import (
	"math/rand"
	"time"
)

// Source supplies uniform random integers in [0, n). *rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// NewSource returns a deterministic source for the given seed.
func NewSource(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// RandomSource returns a source seeded from the clock.
func RandomSource() *rand.Rand {
	return NewSource(time.Now().UnixNano())
}

// candidate is a neighbour considered while stepping through a cell.
type candidate struct {
	pos CellPosition
	dir Direction
}

// frame is one level of the depth-first walk: a cell and the shuffled neighbours still to try.
type frame struct {
	neighbors [4]candidate
	next      int
	pos       CellPosition
}

// generator owns the grids for the duration of a single Generate call.
type generator struct {
	rows        int
	cols        int
	rng         Source
	visited     [][]bool
	verticals   [][]bool
	horizontals [][]bool
}

// Generate builds a perfect maze of rows x cols cells with a randomized depth-first backtracker.
// A nil rng falls back to RandomSource.
func Generate(rows, cols int, rng Source) (*Maze, error) {
	if rows < 1 || cols < 1 {
		return nil, ErrInvalidDimensions
	}
	if rng == nil {
		rng = RandomSource()
	}

	g := &generator{
		rows:        rows,
		cols:        cols,
		rng:         rng,
		visited:     newGrid(rows, cols),
		verticals:   newGrid(rows, cols-1),
		horizontals: newGrid(rows-1, cols),
	}

	start := CellPosition{Row: rng.Intn(rows), Col: rng.Intn(cols)}
	g.walk(start)

	return &Maze{
		rows:        rows,
		cols:        cols,
		verticals:   g.verticals,
		horizontals: g.horizontals,
	}, nil
}

// walk runs the depth-first traversal from start.
// Each frame tries its neighbours in shuffled order and a new frame is pushed as soon as a
// passage is opened, so the order of visits matches a recursive descent.
func (g *generator) walk(start CellPosition) {
	stack := []*frame{}
	if f := g.enter(start); f != nil {
		stack = append(stack, f)
	}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		if top.next == len(top.neighbors) {
			stack = stack[:len(stack)-1]
			continue
		}

		c := top.neighbors[top.next]
		top.next++

		if !g.inBound(c.pos) || g.visited[c.pos.Row][c.pos.Col] {
			continue
		}

		g.open(top.pos, c.dir)
		if f := g.enter(c.pos); f != nil {
			stack = append(stack, f)
		}
	}
}

// enter marks pos visited and returns its frame, or nil when pos was already visited.
func (g *generator) enter(pos CellPosition) *frame {
	if g.visited[pos.Row][pos.Col] {
		return nil
	}
	g.visited[pos.Row][pos.Col] = true

	f := &frame{pos: pos}
	for i, d := range Directions {
		f.neighbors[i] = candidate{pos: pos.Step(d), dir: d}
	}
	shuffle(f.neighbors[:], g.rng)
	return f
}

// open removes the wall between pos and its neighbour in direction d.
func (g *generator) open(pos CellPosition, d Direction) {
	switch d {
	case Left:
		g.verticals[pos.Row][pos.Col-1] = true
	case Right:
		g.verticals[pos.Row][pos.Col] = true
	case Up:
		g.horizontals[pos.Row-1][pos.Col] = true
	case Down:
		g.horizontals[pos.Row][pos.Col] = true
	}
}

func (g *generator) inBound(pos CellPosition) bool {
	return pos.Row >= 0 && pos.Row < g.rows && pos.Col >= 0 && pos.Col < g.cols
}

// shuffle is a Fisher-Yates shuffle walking from the back of the slice.
// All four candidates are shuffled before any bounds filtering.
func shuffle(a []candidate, rng Source) {
	for counter := len(a); counter > 0; {
		index := rng.Intn(counter)
		counter--
		a[counter], a[index] = a[index], a[counter]
	}
}
