package maze

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// zeroSource always picks the first index.
type zeroSource struct{}

func (zeroSource) Intn(int) int { return 0 }

// scriptedSource replays a fixed list of picks.
type scriptedSource struct {
	picks []int
}

func (s *scriptedSource) Intn(n int) int {
	v := s.picks[0]
	s.picks = s.picks[1:]
	return v % n
}

// recursiveGenerate is a direct recursive rendering of the backtracker used as a reference.
func recursiveGenerate(rows, cols int, rng Source) *Maze {
	visited := newGrid(rows, cols)
	verticals := newGrid(rows, cols-1)
	horizontals := newGrid(rows-1, cols)

	var visit func(pos CellPosition)
	visit = func(pos CellPosition) {
		if visited[pos.Row][pos.Col] {
			return
		}
		visited[pos.Row][pos.Col] = true

		neighbors := make([]candidate, 0, 4)
		for _, d := range Directions {
			neighbors = append(neighbors, candidate{pos: pos.Step(d), dir: d})
		}
		shuffle(neighbors, rng)

		for _, n := range neighbors {
			if n.pos.Row < 0 || n.pos.Row >= rows || n.pos.Col < 0 || n.pos.Col >= cols {
				continue
			}
			if visited[n.pos.Row][n.pos.Col] {
				continue
			}
			switch n.dir {
			case Left:
				verticals[pos.Row][pos.Col-1] = true
			case Right:
				verticals[pos.Row][pos.Col] = true
			case Up:
				horizontals[pos.Row-1][pos.Col] = true
			case Down:
				horizontals[pos.Row][pos.Col] = true
			}
			visit(n.pos)
		}
	}

	visit(CellPosition{Row: rng.Intn(rows), Col: rng.Intn(cols)})
	return &Maze{rows: rows, cols: cols, verticals: verticals, horizontals: horizontals}
}

func TestGenerate(t *testing.T) {
	dimensions := []struct {
		rows int
		cols int
	}{
		{1, 1}, {1, 2}, {2, 1}, {1, 5}, {5, 1}, {2, 2}, {3, 7}, {7, 3}, {10, 10}, {25, 40},
	}

	for _, dim := range dimensions {
		for seed := int64(1); seed <= 5; seed++ {
			t.Run(fmt.Sprintf("%dx%d seed %d", dim.rows, dim.cols, seed), func(t *testing.T) {
				m, err := Generate(dim.rows, dim.cols, NewSource(seed))
				require.NoError(t, err)

				assert.Equal(t, dim.rows, m.Rows())
				assert.Equal(t, dim.cols, m.Cols())
				assert.True(t, hasShape(m.verticals, dim.rows, dim.cols-1))
				assert.True(t, hasShape(m.horizontals, dim.rows-1, dim.cols))

				// Spanning tree: n-1 edges and every cell reachable.
				assert.Equal(t, dim.rows*dim.cols-1, m.PassageCount())
				assert.Equal(t, dim.rows*dim.cols, m.Reachable(CellPosition{}))
				assert.Equal(t, dim.rows*dim.cols, m.Reachable(m.Goal()))
			})
		}
	}
}

func TestGenerateInvalidDimensions(t *testing.T) {
	for _, dim := range [][2]int{{0, 1}, {1, 0}, {0, 0}, {-1, 3}, {3, -2}} {
		m, err := Generate(dim[0], dim[1], NewSource(1))
		assert.ErrorIs(t, err, ErrInvalidDimensions)
		assert.Nil(t, m)
	}
}

func TestGenerateDeterminism(t *testing.T) {
	t.Run("same seed gives same grids", func(t *testing.T) {
		a, err := Generate(12, 9, NewSource(42))
		require.NoError(t, err)
		b, err := Generate(12, 9, NewSource(42))
		require.NoError(t, err)

		assert.Equal(t, a.Verticals(), b.Verticals())
		assert.Equal(t, a.Horizontals(), b.Horizontals())
	})

	t.Run("seeds change the maze", func(t *testing.T) {
		base, err := Generate(12, 9, NewSource(1))
		require.NoError(t, err)

		differs := false
		for seed := int64(2); seed <= 6; seed++ {
			other, err := Generate(12, 9, NewSource(seed))
			require.NoError(t, err)
			if !assert.ObjectsAreEqual(base.Verticals(), other.Verticals()) {
				differs = true
			}
		}
		assert.True(t, differs)
	})

	t.Run("matches recursive descent", func(t *testing.T) {
		for seed := int64(1); seed <= 10; seed++ {
			want := recursiveGenerate(15, 20, NewSource(seed))
			got, err := Generate(15, 20, NewSource(seed))
			require.NoError(t, err)

			assert.Equal(t, want.verticals, got.verticals)
			assert.Equal(t, want.horizontals, got.horizontals)
		}
	})

	t.Run("nil source still builds a perfect maze", func(t *testing.T) {
		m, err := Generate(6, 6, nil)
		require.NoError(t, err)
		assert.Equal(t, 35, m.PassageCount())
	})
}

func TestGenerateDegenerate(t *testing.T) {
	t.Run("single cell", func(t *testing.T) {
		m, err := Generate(1, 1, NewSource(7))
		require.NoError(t, err)
		assert.Equal(t, 0, m.PassageCount())
		assert.Equal(t, 1, m.Reachable(CellPosition{}))
		assert.Equal(t, m.Start(), m.Goal())
	})

	t.Run("single row", func(t *testing.T) {
		m, err := Generate(1, 5, NewSource(7))
		require.NoError(t, err)
		assert.Equal(t, [][]bool{{true, true, true, true}}, m.Verticals())
		assert.Empty(t, m.Horizontals())
	})

	t.Run("single column", func(t *testing.T) {
		m, err := Generate(5, 1, NewSource(7))
		require.NoError(t, err)
		assert.Equal(t, [][]bool{{true}, {true}, {true}, {true}}, m.Horizontals())
		for _, row := range m.Verticals() {
			assert.Empty(t, row)
		}
	})
}

func TestGenerateZeroSource(t *testing.T) {
	m, err := Generate(2, 2, zeroSource{})
	require.NoError(t, err)

	assert.Equal(t, 3, m.PassageCount())
	assert.Equal(t, 4, m.Reachable(CellPosition{}))

	// Always picking index 0 orders the candidates right, down, left, up from (0,0).
	assert.Equal(t, [][]bool{{true}, {true}}, m.Verticals())
	assert.Equal(t, [][]bool{{false, true}}, m.Horizontals())
}

func TestShuffle(t *testing.T) {
	t.Run("every permutation is reachable", func(t *testing.T) {
		seen := map[[4]Direction]struct{}{}
		for a := 0; a < 4; a++ {
			for b := 0; b < 3; b++ {
				for c := 0; c < 2; c++ {
					cands := make([]candidate, 0, 4)
					for _, d := range Directions {
						cands = append(cands, candidate{dir: d})
					}
					shuffle(cands, &scriptedSource{picks: []int{a, b, c, 0}})

					var order [4]Direction
					for i, cand := range cands {
						order[i] = cand.dir
					}
					seen[order] = struct{}{}
				}
			}
		}
		assert.Len(t, seen, 24)
	})

	t.Run("consumes one pick per position", func(t *testing.T) {
		src := &scriptedSource{picks: []int{3, 2, 1, 0, 99}}
		cands := make([]candidate, 4)
		shuffle(cands, src)
		assert.Equal(t, []int{99}, src.picks)
	})
}

func TestRecipe(t *testing.T) {
	r := Recipe{Rows: 8, Cols: 11, Seed: 1234}

	a, err := r.Build()
	require.NoError(t, err)
	b, err := r.Build()
	require.NoError(t, err)

	assert.Equal(t, a.String(), b.String())
	assert.Equal(t, 87, a.PassageCount())

	_, err = Recipe{Rows: 0, Cols: 3, Seed: 1}.Build()
	assert.ErrorIs(t, err, ErrInvalidDimensions)
}
