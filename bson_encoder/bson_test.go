package bsonenc

import (
	"testing"

	"github.com/beka-birhanu/backtrack-maze/maze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestBSON(t *testing.T) {
	encoder := &BSON{}

	t.Run("round trip", func(t *testing.T) {
		for _, dim := range [][2]int{{1, 1}, {1, 6}, {6, 1}, {8, 8}} {
			m, err := maze.Generate(dim[0], dim[1], maze.NewSource(21))
			require.NoError(t, err)

			b, err := encoder.Marshal(m)
			require.NoError(t, err)

			decoded, err := encoder.Unmarshal(b)
			require.NoError(t, err)
			assert.Equal(t, m.String(), decoded.String())
			assert.Equal(t, m.PassageCount(), decoded.PassageCount())
		}
	})

	t.Run("document fields", func(t *testing.T) {
		m, err := maze.Generate(2, 3, maze.NewSource(4))
		require.NoError(t, err)

		b, err := encoder.Marshal(m)
		require.NoError(t, err)

		var raw bson.M
		require.NoError(t, bson.Unmarshal(b, &raw))
		assert.EqualValues(t, 2, raw["rows"])
		assert.EqualValues(t, 3, raw["cols"])
		assert.Contains(t, raw, "verticals")
		assert.Contains(t, raw, "horizontals")
	})

	t.Run("invalid bytes", func(t *testing.T) {
		_, err := encoder.Unmarshal([]byte{0x01, 0x02})
		assert.Error(t, err)
	})

	t.Run("malformed grid", func(t *testing.T) {
		b, err := bson.Marshal(document{Rows: 2, Cols: 2, Verticals: [][]bool{{true}}, Horizontals: [][]bool{{true, false}}})
		require.NoError(t, err)

		_, err = encoder.Unmarshal(b)
		assert.ErrorIs(t, err, maze.ErrMalformedGrid)
	})
}
