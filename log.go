package vlist

import (
	"log/slog"
	"os"
)

// vlistLogLevel controls logging verbosity for all engine components.
// Default is LevelInfo, which suppresses Debug messages.
// SetVerbose(true) sets it to LevelDebug.
var vlistLogLevel = new(slog.LevelVar)

// vlistLogger is the logger for engine debugging (metrics rebuilds,
// end-reached signaling, height clamping).
var vlistLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: vlistLogLevel}))

// SetVerbose enables or disables verbose/debug logging for the engine.
// Call this from main() after parsing flags.
func SetVerbose(v bool) {
	if v {
		vlistLogLevel.Set(slog.LevelDebug)
	} else {
		vlistLogLevel.Set(slog.LevelInfo)
	}
}

// SetLogger replaces the engine's logger. Useful for routing engine debug
// output into an application's structured logging setup.
func SetLogger(l *slog.Logger) {
	if l != nil {
		vlistLogger = l
	}
}
