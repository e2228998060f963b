// Package bsonenc encodes mazes as BSON documents.
package bsonenc

import (
	"github.com/beka-birhanu/backtrack-maze/maze"
	"go.mongodb.org/mongo-driver/bson"
)

var _ maze.Encoder = &BSON{}

// document is the stored form of a maze.
type document struct {
	Rows        int      `bson:"rows"`
	Cols        int      `bson:"cols"`
	Verticals   [][]bool `bson:"verticals"`
	Horizontals [][]bool `bson:"horizontals"`
}

type BSON struct{}

// Marshal implements maze.Encoder.
func (e *BSON) Marshal(m *maze.Maze) ([]byte, error) {
	return bson.Marshal(document{
		Rows:        m.Rows(),
		Cols:        m.Cols(),
		Verticals:   m.Verticals(),
		Horizontals: m.Horizontals(),
	})
}

// Unmarshal implements maze.Encoder.
func (e *BSON) Unmarshal(b []byte) (*maze.Maze, error) {
	var doc document
	if err := bson.Unmarshal(b, &doc); err != nil {
		return nil, err
	}
	return maze.FromPassages(doc.Rows, doc.Cols, doc.Verticals, doc.Horizontals)
}
