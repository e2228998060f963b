package config

import (
	"io"
	"log"
)

// Level tags, wrapped around [INFO] and [ERROR] in log lines.
const (
	LogErrorColor = "\033[31m"
	LogInfoColor  = "\033[32m"
	LogColorReset = "\033[0m"
)

// Color constants for logger prefixes
const (
	ColorGreen   = "\033[32m"
	ColorBlue    = "\033[34m"
	ColorMagenta = "\033[35m"
	ColorCyan    = "\033[36m"
	ColorReset   = "\033[0m"
)

// NewLogger returns a logger whose lines start with a coloured [NAME] tag.
func NewLogger(name, color string, w io.Writer) *log.Logger {
	return log.New(w, color+"["+name+"]"+ColorReset+" ", log.LstdFlags)
}
