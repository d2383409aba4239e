package caption

import (
	"log/slog"

	"github.com/gogpu/gg"

	"github.com/gogpu/caption/internal/logging"
)

// SetLogger configures the logger for caption, its sub-packages and the gg
// rendering backend. By default nothing is logged. Pass nil to restore the
// silent default.
//
// SetLogger is safe for concurrent use.
//
// Log levels used by caption:
//   - [slog.LevelDebug]: frame renders, font resolution, drag start
//   - [slog.LevelInfo]: image loaded, export finished
//   - [slog.LevelWarn]: skipped frames, failed system font scan
//
// Example:
//
//	caption.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	logging.Set(l)
	gg.SetLogger(l)
}

// Logger returns the current logger. It never returns nil.
func Logger() *slog.Logger {
	return logging.Logger()
}
