// Package layout turns a maze into the plain geometry a physics or rendering layer needs:
// static wall segments, the goal box and the spawn point of the ball.
package layout

import (
	"errors"

	"github.com/beka-birhanu/backtrack-maze/maze"
)

const (
	defaultWallThickness   = 3
	defaultBorderThickness = 2

	goalScale       = 0.7
	ballRadiusRatio = 4
)

// Labels attached to rectangles.
const (
	LabelBorder = "border"
	LabelWall   = "wall"
	LabelGoal   = "goal"
	LabelBall   = "ball"
)

var ErrInvalidConfig = errors.New("invalid layout config")

// Config sets the size of the playing field. Zero thicknesses fall back to defaults.
type Config struct {
	Width           float64
	Height          float64
	WallThickness   float64
	BorderThickness float64
}

// Rect is an axis-aligned rectangle given by its centre and size.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
	Label  string
}

// Circle is given by its centre and radius.
type Circle struct {
	X      float64
	Y      float64
	Radius float64
	Label  string
}

// Layout is the geometry of one maze on a field of a given size.
type Layout struct {
	UnitX   float64 // Width of a cell
	UnitY   float64 // Height of a cell
	Borders []Rect
	Walls   []Rect // One per closed passage
	Goal    Rect
	Ball    Circle
}

// Build derives the layout of m on the field described by cfg.
func Build(m *maze.Maze, cfg Config) (*Layout, error) {
	if m == nil || cfg.Width <= 0 || cfg.Height <= 0 || cfg.WallThickness < 0 || cfg.BorderThickness < 0 {
		return nil, ErrInvalidConfig
	}
	if cfg.WallThickness == 0 {
		cfg.WallThickness = defaultWallThickness
	}
	if cfg.BorderThickness == 0 {
		cfg.BorderThickness = defaultBorderThickness
	}

	unitX := cfg.Width / float64(m.Cols())
	unitY := cfg.Height / float64(m.Rows())

	l := &Layout{
		UnitX:   unitX,
		UnitY:   unitY,
		Borders: borders(cfg),
		Goal: Rect{
			X:      cfg.Width - unitX/2,
			Y:      cfg.Height - unitY/2,
			Width:  unitX * goalScale,
			Height: unitY * goalScale,
			Label:  LabelGoal,
		},
		Ball: Circle{
			X:      unitX / 2,
			Y:      unitY / 2,
			Radius: min(unitX, unitY) / ballRadiusRatio,
			Label:  LabelBall,
		},
	}

	for row := 0; row < m.Rows()-1; row++ {
		for col := 0; col < m.Cols(); col++ {
			if m.HorizontalOpen(row, col) {
				continue
			}
			l.Walls = append(l.Walls, Rect{
				X:      float64(col)*unitX + unitX/2,
				Y:      float64(row)*unitY + unitY,
				Width:  unitX,
				Height: cfg.WallThickness,
				Label:  LabelWall,
			})
		}
	}

	for row := 0; row < m.Rows(); row++ {
		for col := 0; col < m.Cols()-1; col++ {
			if m.VerticalOpen(row, col) {
				continue
			}
			l.Walls = append(l.Walls, Rect{
				X:      float64(col)*unitX + unitX,
				Y:      float64(row)*unitY + unitY/2,
				Width:  cfg.WallThickness,
				Height: unitY,
				Label:  LabelWall,
			})
		}
	}

	return l, nil
}

// borders frames the field: top, bottom, left, right.
func borders(cfg Config) []Rect {
	return []Rect{
		{X: cfg.Width / 2, Y: 0, Width: cfg.Width, Height: cfg.BorderThickness, Label: LabelBorder},
		{X: cfg.Width / 2, Y: cfg.Height, Width: cfg.Width, Height: cfg.BorderThickness, Label: LabelBorder},
		{X: 0, Y: cfg.Height / 2, Width: cfg.BorderThickness, Height: cfg.Height, Label: LabelBorder},
		{X: cfg.Width, Y: cfg.Height / 2, Width: cfg.BorderThickness, Height: cfg.Height, Label: LabelBorder},
	}
}
