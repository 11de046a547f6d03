package logger

import (
	"fmt"
	"time"

	"github.com/fatih/color"
)

func timestamp() string {
	return time.Now().Format("15:04:05")
}

// Info logs general information (blue)
func Info(format string, args ...interface{}) {
	color.Blue("[%s] %s", timestamp(), fmt.Sprintf(format, args...))
}

// Success logs a success (green)
func Success(format string, args ...interface{}) {
	color.Green("[%s] ✓ %s", timestamp(), fmt.Sprintf(format, args...))
}

// Warning logs a warning (yellow)
func Warning(format string, args ...interface{}) {
	color.Yellow("[%s] ⚠ %s", timestamp(), fmt.Sprintf(format, args...))
}

// Error logs an error (red)
func Error(format string, args ...interface{}) {
	color.Red("[%s] ✗ %s", timestamp(), fmt.Sprintf(format, args...))
}

// Debug logs debugging detail (cyan)
func Debug(format string, args ...interface{}) {
	color.Cyan("[%s] %s", timestamp(), fmt.Sprintf(format, args...))
}

// Request logs an inbound HTTP request
func Request(method, path, ip string) {
	color.Yellow("[%s] %s %s from %s", timestamp(), method, path, ip)
}
