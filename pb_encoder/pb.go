// Package pb encodes mazes in the protobuf wire format.
//
// The message layout is
//
//	message Maze {
//	  uint32 rows = 1;
//	  uint32 cols = 2;
//	  bytes verticals = 3;   // row-major bitset, least significant bit first
//	  bytes horizontals = 4; // row-major bitset, least significant bit first
//	}
package pb

import (
	"errors"
	"fmt"

	"github.com/beka-birhanu/backtrack-maze/maze"
	"google.golang.org/protobuf/encoding/protowire"
)

const (
	rowsField        protowire.Number = 1
	colsField        protowire.Number = 2
	verticalsField   protowire.Number = 3
	horizontalsField protowire.Number = 4

	maxCells = 1 << 24
)

var _ maze.Encoder = &Protobuf{}

var (
	errTooLarge    = errors.New("maze is too large to decode")
	errBitsetSize  = errors.New("bitset length does not match maze dimensions")
	errUnknownType = errors.New("unexpected wire type")
)

type Protobuf struct{}

// Marshal implements maze.Encoder.
func (p *Protobuf) Marshal(m *maze.Maze) ([]byte, error) {
	var b []byte
	b = protowire.AppendTag(b, rowsField, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(m.Rows()))
	b = protowire.AppendTag(b, colsField, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(m.Cols()))
	b = protowire.AppendTag(b, verticalsField, protowire.BytesType)
	b = protowire.AppendBytes(b, packBits(m.Verticals()))
	b = protowire.AppendTag(b, horizontalsField, protowire.BytesType)
	b = protowire.AppendBytes(b, packBits(m.Horizontals()))
	return b, nil
}

// Unmarshal implements maze.Encoder.
func (p *Protobuf) Unmarshal(b []byte) (*maze.Maze, error) {
	var (
		rows, cols                   uint64
		verticalBits, horizontalBits []byte
	)

	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return nil, fmt.Errorf("reading tag: %w", protowire.ParseError(n))
		}
		b = b[n:]

		switch {
		case (num == rowsField || num == colsField) && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return nil, fmt.Errorf("reading field %d: %w", num, protowire.ParseError(n))
			}
			if num == rowsField {
				rows = v
			} else {
				cols = v
			}
			b = b[n:]
		case (num == verticalsField || num == horizontalsField) && typ == protowire.BytesType:
			v, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return nil, fmt.Errorf("reading field %d: %w", num, protowire.ParseError(n))
			}
			if num == verticalsField {
				verticalBits = v
			} else {
				horizontalBits = v
			}
			b = b[n:]
		case num >= rowsField && num <= horizontalsField:
			return nil, fmt.Errorf("field %d: %w", num, errUnknownType)
		default:
			n := protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return nil, fmt.Errorf("skipping field %d: %w", num, protowire.ParseError(n))
			}
			b = b[n:]
		}
	}

	if rows < 1 || cols < 1 {
		return nil, maze.ErrInvalidDimensions
	}
	if rows > maxCells || cols > maxCells || rows*cols > maxCells {
		return nil, errTooLarge
	}

	verticals, err := unpackBits(verticalBits, int(rows), int(cols)-1)
	if err != nil {
		return nil, err
	}
	horizontals, err := unpackBits(horizontalBits, int(rows)-1, int(cols))
	if err != nil {
		return nil, err
	}

	return maze.FromPassages(int(rows), int(cols), verticals, horizontals)
}

// packBits flattens a grid row by row into a bitset.
func packBits(grid [][]bool) []byte {
	total := 0
	for _, row := range grid {
		total += len(row)
	}

	bits := make([]byte, (total+7)/8)
	i := 0
	for _, row := range grid {
		for _, open := range row {
			if open {
				bits[i/8] |= 1 << (i % 8)
			}
			i++
		}
	}
	return bits
}

// unpackBits is the inverse of packBits for a rows x cols grid.
func unpackBits(bits []byte, rows, cols int) ([][]bool, error) {
	if len(bits) != (rows*cols+7)/8 {
		return nil, errBitsetSize
	}

	grid := make([][]bool, rows)
	i := 0
	for r := range grid {
		grid[r] = make([]bool, cols)
		for c := range grid[r] {
			grid[r][c] = bits[i/8]&(1<<(i%8)) != 0
			i++
		}
	}
	return grid, nil
}
