package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docscrape"
)

// Ensure LoggingPageWriter implements docscrape.PageWriter.
var _ docscrape.PageWriter = (*LoggingPageWriter)(nil)

// LoggingPageWriter wraps a PageWriter with debug logging.
type LoggingPageWriter struct {
	next   docscrape.PageWriter
	logger *slog.Logger
}

// NewLoggingPageWriter creates a new LoggingPageWriter.
func NewLoggingPageWriter(next docscrape.PageWriter, logger *slog.Logger) *LoggingPageWriter {
	return &LoggingPageWriter{next: next, logger: logger}
}

// SavePage delegates to the wrapped writer and logs the operation.
func (w *LoggingPageWriter) SavePage(ctx context.Context, page *docscrape.Page) (err error) {
	defer func(begin time.Time) {
		level := slog.LevelDebug
		if err != nil {
			level = slog.LevelWarn
		}
		w.logger.Log(ctx, level, "save page",
			"url", page.URL,
			"bytes", len(page.Content),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return w.next.SavePage(ctx, page)
}
