package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/nbutton23/zxcvbn-go"
)

const (
	minSecretStrengthScore = 3

	FormatASCII = "ascii"
	FormatPB    = "pb"
	FormatBSON  = "bson"
)

var ErrWeakSecret = errors.New("weak maze code secret")

// Config holds the application's configuration values.
type Config struct {
	Rows         int     // Number of maze rows
	Cols         int     // Number of maze columns
	Seed         int64   // Seed for the maze, 0 draws a random one
	Code         string  // Share code of a maze to restore instead of generating
	Format       string  // Output format: ascii, pb or bson
	MaxDimension int     // Largest accepted row or column count
	CodeSecret   string  // Secret key for signing share codes
	CodeIssuer   string  // Issuer claim for share codes
	CodeTTLHours int     // Lifetime of share codes in hours
	FieldWidth   float64 // Width of the playing field handed to the layout
	FieldHeight  float64 // Height of the playing field handed to the layout
}

// Envs holds the application's configuration once Load has run.
var Envs Config

// Load reads the configuration from the environment into Envs.
// It loads environment variables from a .env file first when one exists.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}

	Envs = Config{
		Rows:         getEnvAsIntWithDefault("MAZE_ROWS", 10),
		Cols:         getEnvAsIntWithDefault("MAZE_COLS", 10),
		Seed:         int64(getEnvAsIntWithDefault("MAZE_SEED", 0)),
		Code:         getEnvWithDefault("MAZE_CODE", ""),
		Format:       getEnvWithDefault("MAZE_FORMAT", FormatASCII),
		MaxDimension: getEnvAsIntWithDefault("MAZE_MAX_DIMENSION", 200),
		CodeSecret:   mustGetEnv("MAZE_CODE_SECRET"),
		CodeIssuer:   getEnvWithDefault("MAZE_CODE_ISSUER", "backtrack-maze"),
		CodeTTLHours: getEnvAsIntWithDefault("MAZE_CODE_TTL_HOURS", 720),
		FieldWidth:   float64(getEnvAsIntWithDefault("MAZE_FIELD_WIDTH", 800)),
		FieldHeight:  float64(getEnvAsIntWithDefault("MAZE_FIELD_HEIGHT", 600)),
	}

	if err := ValidateSecret(Envs.CodeSecret); err != nil {
		log.Fatalf("[APP] [FATAL] MAZE_CODE_SECRET rejected: %v", err)
	}
	if err := ValidateFormat(Envs.Format); err != nil {
		log.Fatalf("[APP] [FATAL] MAZE_FORMAT rejected: %v", err)
	}

	return Envs
}

// ValidateSecret checks the strength of the share code secret.
func ValidateSecret(secret string) error {
	result := zxcvbn.PasswordStrength(secret, nil)
	if result.Score < minSecretStrengthScore {
		return ErrWeakSecret
	}
	return nil
}

// ValidateFormat checks the output format name.
func ValidateFormat(format string) error {
	switch format {
	case FormatASCII, FormatPB, FormatBSON:
		return nil
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// mustGetEnv retrieves the value of an environment variable or logs a fatal error if not set.
func mustGetEnv(key string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		log.Fatalf("[APP] [FATAL] Environment variable %s is not set", key)
	}
	return value
}

// getEnvAsIntWithDefault retrieves an integer environment variable, falling back to a default when unset.
// A value that cannot be parsed is fatal.
func getEnvAsIntWithDefault(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be an integer: %v", key, err)
	}
	return value
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
