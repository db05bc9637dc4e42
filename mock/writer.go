package mock

import (
	"context"

	"github.com/fwojciec/docscrape"
)

// Compile-time interface verification.
var (
	_ docscrape.PageWriter = (*PageWriter)(nil)
	_ docscrape.FileWriter = (*FileWriter)(nil)
)

// PageWriter is a mock implementation of docscrape.PageWriter.
type PageWriter struct {
	SavePageFn func(ctx context.Context, page *docscrape.Page) error
}

func (w *PageWriter) SavePage(ctx context.Context, page *docscrape.Page) error {
	return w.SavePageFn(ctx, page)
}

// FileWriter is a mock implementation of docscrape.FileWriter.
type FileWriter struct {
	WriteFileFn func(path string, content []byte) error
}

func (w *FileWriter) WriteFile(path string, content []byte) error {
	return w.WriteFileFn(path, content)
}
