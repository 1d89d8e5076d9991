package diag

import (
	"context"
	"log/slog"
)

// LevelTraceBin sits below slog.LevelDebug, mirroring the source's
// TRACE_BIN_LOG_LEVEL (5, below logging.DEBUG's 10): byte-by-byte decode
// trace that is noisier than ordinary debug logging.
const LevelTraceBin = slog.Level(-8)

// Trace emits a LevelTraceBin record carrying ctx's fields as attributes,
// the way structs.py's logger.log(TRACE_BIN_LOG_LEVEL, ...) calls carry
// the active _log_context. No-ops cheaply when the level is disabled.
func Trace(logger *slog.Logger, ctx Context, msg string, args ...any) {
	if logger == nil || !logger.Enabled(context.Background(), LevelTraceBin) {
		return
	}
	attrs := make([]any, 0, len(ctx.fields)*2+len(args))
	for _, f := range ctx.fields {
		attrs = append(attrs, slog.String(f.Key, f.Value))
	}
	attrs = append(attrs, args...)
	logger.Log(context.Background(), LevelTraceBin, msg, attrs...)
}
