package service

import (
	"errors"
	"fmt"
	"log"
	"math/rand"
	"strconv"
	"sync"
	"time"

	"github.com/beka-birhanu/backtrack-maze/config"
	"github.com/beka-birhanu/backtrack-maze/maze"
	"github.com/beka-birhanu/backtrack-maze/service/i"
	"github.com/google/uuid"
)

const (
	defaultMaxDimension = 200
	defaultCodeTTL      = 30 * 24 * time.Hour

	rowsClaim = "rows"
	colsClaim = "cols"
	seedClaim = "seed"
	idClaim   = "jti"
)

var (
	ErrTooLarge          = errors.New("maze dimension exceeds the configured maximum")
	ErrInvalidCode       = errors.New("invalid maze code")
	ErrMissingDependency = errors.New("maze service dependency not provided")
)

var _ i.MazeService = &MazeService{}

// MazeService generates mazes and issues share codes that reproduce them.
type MazeService struct {
	tokenizer    i.Tokenizer
	encoder      maze.Encoder
	logger       *log.Logger
	maxDimension int
	codeTTL      time.Duration
	seeds        *rand.Rand
	seedsMu      sync.Mutex
}

type Config struct {
	Tokenizer    i.Tokenizer
	Encoder      maze.Encoder
	Logger       *log.Logger
	MaxDimension int           // Largest accepted row or column count, 0 means 200
	CodeTTL      time.Duration // Lifetime of share codes, 0 means 30 days
}

func NewMazeService(c *Config) (*MazeService, error) {
	if c.Tokenizer == nil || c.Encoder == nil || c.Logger == nil {
		return nil, ErrMissingDependency
	}

	ms := &MazeService{
		tokenizer:    c.Tokenizer,
		encoder:      c.Encoder,
		logger:       c.Logger,
		maxDimension: c.MaxDimension,
		codeTTL:      c.CodeTTL,
		seeds:        maze.RandomSource(),
	}
	if ms.maxDimension <= 0 {
		ms.maxDimension = defaultMaxDimension
	}
	if ms.codeTTL <= 0 {
		ms.codeTTL = defaultCodeTTL
	}

	return ms, nil
}

// Generate implements i.MazeService.
func (s *MazeService) Generate(rows, cols int) (*maze.Maze, string, error) {
	s.seedsMu.Lock()
	seed := s.seeds.Int63()
	s.seedsMu.Unlock()

	return s.GenerateSeeded(maze.Recipe{Rows: rows, Cols: cols, Seed: seed})
}

// GenerateSeeded implements i.MazeService.
func (s *MazeService) GenerateSeeded(r maze.Recipe) (*maze.Maze, string, error) {
	if r.Rows > s.maxDimension || r.Cols > s.maxDimension {
		s.logger.Printf("%s[ERROR]%s rejected %dx%d maze: limit is %d", config.LogErrorColor, config.LogColorReset, r.Rows, r.Cols, s.maxDimension)
		return nil, "", ErrTooLarge
	}

	m, err := r.Build()
	if err != nil {
		s.logger.Printf("%s[ERROR]%s generating %dx%d maze: %s", config.LogErrorColor, config.LogColorReset, r.Rows, r.Cols, err)
		return nil, "", err
	}

	code, err := s.tokenizer.Generate(map[string]interface{}{
		rowsClaim: r.Rows,
		colsClaim: r.Cols,
		seedClaim: strconv.FormatInt(r.Seed, 10),
		idClaim:   uuid.New().String(),
	}, s.codeTTL)
	if err != nil {
		s.logger.Printf("%s[ERROR]%s signing maze code: %s", config.LogErrorColor, config.LogColorReset, err)
		return nil, "", fmt.Errorf("signing maze code: %w", err)
	}

	s.logger.Printf("%s[INFO]%s generated %dx%d maze with seed %d", config.LogInfoColor, config.LogColorReset, r.Rows, r.Cols, r.Seed)
	return m, code, nil
}

// Restore implements i.MazeService.
func (s *MazeService) Restore(code string) (*maze.Maze, error) {
	claims, err := s.tokenizer.Decode(code)
	if err != nil {
		s.logger.Printf("%s[ERROR]%s decoding maze code: %s", config.LogErrorColor, config.LogColorReset, err)
		return nil, ErrInvalidCode
	}

	r, err := recipeFromClaims(claims)
	if err != nil {
		s.logger.Printf("%s[ERROR]%s reading maze code claims: %s", config.LogErrorColor, config.LogColorReset, err)
		return nil, ErrInvalidCode
	}

	if r.Rows > s.maxDimension || r.Cols > s.maxDimension {
		s.logger.Printf("%s[ERROR]%s restored code exceeds limit: %dx%d", config.LogErrorColor, config.LogColorReset, r.Rows, r.Cols)
		return nil, ErrTooLarge
	}

	m, err := r.Build()
	if err != nil {
		s.logger.Printf("%s[ERROR]%s rebuilding maze from code: %s", config.LogErrorColor, config.LogColorReset, err)
		return nil, ErrInvalidCode
	}

	s.logger.Printf("%s[INFO]%s restored %dx%d maze %v", config.LogInfoColor, config.LogColorReset, r.Rows, r.Cols, claims[idClaim])
	return m, nil
}

// Export implements i.MazeService.
func (s *MazeService) Export(m *maze.Maze) ([]byte, error) {
	b, err := s.encoder.Marshal(m)
	if err != nil {
		s.logger.Printf("%s[ERROR]%s encoding maze: %s", config.LogErrorColor, config.LogColorReset, err)
		return nil, err
	}
	return b, nil
}

// Import implements i.MazeService.
func (s *MazeService) Import(b []byte) (*maze.Maze, error) {
	m, err := s.encoder.Unmarshal(b)
	if err != nil {
		s.logger.Printf("%s[ERROR]%s decoding maze: %s", config.LogErrorColor, config.LogColorReset, err)
		return nil, err
	}
	return m, nil
}

// recipeFromClaims reads dimensions and seed back out of decoded token claims.
// Numeric claims arrive as float64 after JSON decoding; the seed travels as a decimal string.
func recipeFromClaims(claims map[string]interface{}) (maze.Recipe, error) {
	rows, ok := claims[rowsClaim].(float64)
	if !ok {
		return maze.Recipe{}, fmt.Errorf("claim %q missing", rowsClaim)
	}
	cols, ok := claims[colsClaim].(float64)
	if !ok {
		return maze.Recipe{}, fmt.Errorf("claim %q missing", colsClaim)
	}
	seedStr, ok := claims[seedClaim].(string)
	if !ok {
		return maze.Recipe{}, fmt.Errorf("claim %q missing", seedClaim)
	}

	seed, err := strconv.ParseInt(seedStr, 10, 64)
	if err != nil {
		return maze.Recipe{}, fmt.Errorf("claim %q: %w", seedClaim, err)
	}

	return maze.Recipe{Rows: int(rows), Cols: int(cols), Seed: seed}, nil
}
