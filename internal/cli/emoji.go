package cli

import (
	"github.com/yildizm/sortflow/internal/emoji"
	"github.com/yildizm/sortflow/internal/process"
)

// GetEmoji is a wrapper for the shared emoji package
func GetEmoji(key string) string {
	return emoji.GetEmoji(key)
}

// GetLevelEmoji returns emoji for a classified output line
func GetLevelEmoji(level process.Level) string {
	switch level {
	case process.LevelFatal, process.LevelError:
		return GetEmoji("error")
	case process.LevelWarn:
		return GetEmoji("warning")
	default:
		return GetEmoji("info")
	}
}

// GetResultEmoji returns the emoji for a finished job
func GetResultEmoji(result process.Result) string {
	if result.Success() {
		return GetEmoji("success")
	}
	return GetEmoji("error")
}
