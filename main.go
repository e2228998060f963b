package main

import (
	"fmt"
	"log"
	"os"
	"time"

	bsonenc "github.com/beka-birhanu/backtrack-maze/bson_encoder"
	"github.com/beka-birhanu/backtrack-maze/config"
	"github.com/beka-birhanu/backtrack-maze/infrastruture/token"
	"github.com/beka-birhanu/backtrack-maze/layout"
	"github.com/beka-birhanu/backtrack-maze/maze"
	pb "github.com/beka-birhanu/backtrack-maze/pb_encoder"
	"github.com/beka-birhanu/backtrack-maze/service"
	"github.com/beka-birhanu/backtrack-maze/service/i"
)

// Global variables for dependencies
var (
	appLogger    *log.Logger
	jwtTokenizer i.Tokenizer
	mazeEncoder  maze.Encoder
	mazeService  i.MazeService
)

func initJWTTokenizer() {
	jwtTokenizer = token.NewJwtService(config.Envs.CodeSecret, config.Envs.CodeIssuer)
	appLogger.Printf("%s[INFO]%s JWT tokenizer initialized", config.LogInfoColor, config.LogColorReset)
}

func initEncoder() {
	switch config.Envs.Format {
	case config.FormatBSON:
		mazeEncoder = &bsonenc.BSON{}
	default:
		mazeEncoder = &pb.Protobuf{}
	}
	appLogger.Printf("%s[INFO]%s maze encoder initialized", config.LogInfoColor, config.LogColorReset)
}

func initMazeService() {
	serviceLogger := config.NewLogger("MAZE-SERVICE", config.ColorCyan, os.Stderr)

	var err error
	mazeService, err = service.NewMazeService(&service.Config{
		Tokenizer:    jwtTokenizer,
		Encoder:      mazeEncoder,
		Logger:       serviceLogger,
		MaxDimension: config.Envs.MaxDimension,
		CodeTTL:      time.Duration(config.Envs.CodeTTLHours) * time.Hour,
	})
	if err != nil {
		appLogger.Printf("%s[ERROR]%s creating maze service: %v", config.LogErrorColor, config.LogColorReset, err)
		os.Exit(1)
	}
	appLogger.Printf("%s[INFO]%s maze service initialized", config.LogInfoColor, config.LogColorReset)
}

// buildMaze restores the configured share code, or generates a new maze and its code.
func buildMaze() (*maze.Maze, string, error) {
	if config.Envs.Code != "" {
		m, err := mazeService.Restore(config.Envs.Code)
		return m, config.Envs.Code, err
	}
	if config.Envs.Seed != 0 {
		return mazeService.GenerateSeeded(maze.Recipe{Rows: config.Envs.Rows, Cols: config.Envs.Cols, Seed: config.Envs.Seed})
	}
	return mazeService.Generate(config.Envs.Rows, config.Envs.Cols)
}

func main() {
	appLogger = config.NewLogger("APP", config.ColorGreen, os.Stderr)
	config.Load()

	initJWTTokenizer()
	initEncoder()
	initMazeService()

	m, code, err := buildMaze()
	if err != nil {
		appLogger.Printf("%s[ERROR]%s building maze: %v", config.LogErrorColor, config.LogColorReset, err)
		os.Exit(1)
	}

	if config.Envs.Format != config.FormatASCII {
		payload, err := mazeService.Export(m)
		if err != nil {
			appLogger.Printf("%s[ERROR]%s exporting maze: %v", config.LogErrorColor, config.LogColorReset, err)
			os.Exit(1)
		}
		if _, err := os.Stdout.Write(payload); err != nil {
			appLogger.Printf("%s[ERROR]%s writing maze: %v", config.LogErrorColor, config.LogColorReset, err)
			os.Exit(1)
		}
		appLogger.Printf("%s[INFO]%s share code: %s", config.LogInfoColor, config.LogColorReset, code)
		return
	}

	l, err := layout.Build(m, layout.Config{Width: config.Envs.FieldWidth, Height: config.Envs.FieldHeight})
	if err != nil {
		appLogger.Printf("%s[ERROR]%s building layout: %v", config.LogErrorColor, config.LogColorReset, err)
		os.Exit(1)
	}

	path, err := m.Solve(m.Start(), m.Goal())
	if err != nil {
		appLogger.Printf("%s[ERROR]%s solving maze: %v", config.LogErrorColor, config.LogColorReset, err)
		os.Exit(1)
	}

	fmt.Print(m.String())
	fmt.Printf("size: %dx%d, passages: %d, walls: %d, solution length: %d\n", m.Rows(), m.Cols(), m.PassageCount(), len(l.Walls), len(path))
	fmt.Printf("code: %s\n", code)
}
