package process

import (
	"regexp"
	"strings"

	"github.com/yildizm/go-logparser"
)

// Level represents the severity detected on an output line
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelFatal
)

// String methods for Level
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	case LevelFatal:
		return "FATAL"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel parses string to Level
func ParseLevel(s string) Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return LevelDebug
	case "INFO":
		return LevelInfo
	case "WARN", "WARNING":
		return LevelWarn
	case "ERROR", "CRITICAL":
		return LevelError
	case "FATAL":
		return LevelFatal
	default:
		return LevelInfo
	}
}

var (
	// Python exception and warning class names end in the keyword
	errorKeywords   = regexp.MustCompile(`(?i)(\btraceback|\w*error|\w*exception|\bfailed)\b`)
	warningKeywords = regexp.MustCompile(`(?i)\w*warn(ing)?\b`)
)

// Classifier detects the level of renderer output lines.
// It is not safe for concurrent use; each stream pump owns one.
type Classifier struct {
	parser logparser.Parser
}

// NewClassifier creates a classifier backed by a plain-text log parser
func NewClassifier() *Classifier {
	return &Classifier{parser: logparser.NewWithFormat(logparser.FormatText)}
}

// Classify returns the higher of the parsed log level and the level implied
// by keywords. Python tracebacks carry no level field of their own.
func (c *Classifier) Classify(text string) Level {
	level := LevelInfo
	if entries, err := c.parser.ParseString(text); err == nil && len(entries) > 0 && entries[0].Level != "" {
		level = ParseLevel(entries[0].Level)
	}

	switch {
	case errorKeywords.MatchString(text):
		if level < LevelError {
			level = LevelError
		}
	case warningKeywords.MatchString(text):
		if level < LevelWarn {
			level = LevelWarn
		}
	}
	return level
}
