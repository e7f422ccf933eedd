package log

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
)

// ANSI escape codes for the level prefixes.
const (
	infoColor  = "\033[34m"
	warnColor  = "\033[33m"
	errorColor = "\033[31m"
	debugColor = "\033[94m"
)

// DebugMode enables Debug output. Off unless the caller turns it on.
var DebugMode = false

func prefix(color, level string, skip int) string {
	_, filePath, line, ok := runtime.Caller(skip)
	if !ok {
		return color + "[" + level + "]\033[0m"
	}

	file := filepath.Base(filePath)
	lineStr := strconv.Itoa(line)
	return color + "[" + level + "] \033[35m" + file + ":" + lineStr + ":\033[0m"
}

func print(args ...any) (int, error) {
	w := os.Stdout
	var buf bytes.Buffer
	for i, arg := range args {
		if i > 0 {
			buf.WriteByte(' ')
		}
		_, err := fmt.Fprint(&buf, arg)
		if err != nil {
			return 0, err
		}
	}

	if buf.Len() > 0 {
		buf.WriteByte('\n')
		return w.Write(buf.Bytes())
	}

	return 0, nil
}

// Info logs informational messages in blue with the caller's file and line.
func Info(args ...any) {
	print(append([]any{prefix(infoColor, "Info", 2)}, args...)...)
}

// InfoSkip is Info with extra stack frames skipped for wrappers.
func InfoSkip(skip int, args ...any) {
	print(append([]any{prefix(infoColor, "Info", skip+2)}, args...)...)
}

// Warn logs warning messages in yellow.
func Warn(args ...any) {
	print(append([]any{prefix(warnColor, "Warn", 2)}, args...)...)
}

// WarnSkip is Warn with extra stack frames skipped for wrappers.
func WarnSkip(skip int, args ...any) {
	print(append([]any{prefix(warnColor, "Warn", skip+2)}, args...)...)
}

// Error logs error messages in red.
func Error(args ...any) {
	print(append([]any{prefix(errorColor, "Error", 2)}, args...)...)
}

// ErrorSkip is Error with extra stack frames skipped for wrappers.
func ErrorSkip(skip int, args ...any) {
	print(append([]any{prefix(errorColor, "Error", skip+2)}, args...)...)
}

// Debug logs debug messages when DebugMode is on.
func Debug(args ...any) {
	if DebugMode {
		print(append([]any{prefix(debugColor, "Debug", 2)}, args...)...)
	}
}

// DebugSkip is Debug with extra stack frames skipped for wrappers.
func DebugSkip(skip int, args ...any) {
	if DebugMode {
		print(append([]any{prefix(debugColor, "Debug", skip+2)}, args...)...)
	}
}
