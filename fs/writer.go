// Package fs provides file-based storage for scraped pages and the
// combined documentation outputs.
package fs

import (
	"context"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/fwojciec/docscrape"
)

// URLToPath converts a page URL to a slash-separated file path relative to
// the output directory. The path is the URL path below baseURL with
// surrounding slashes trimmed and the markdown extension appended; the base
// page itself becomes index.md. Query strings and fragments are ignored.
//
// Example: base https://example.com/docs/, page https://example.com/docs/api/users → api/users.md
func URLToPath(rawURL, baseURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", docscrape.Errorf(docscrape.EINVALID, "invalid page URL %q: %v", rawURL, err)
	}
	b, err := url.Parse(baseURL)
	if err != nil {
		return "", docscrape.Errorf(docscrape.EINVALID, "invalid base URL %q: %v", baseURL, err)
	}

	rel := strings.TrimPrefix(u.Path, strings.TrimSuffix(b.Path, "/"))
	rel = strings.Trim(rel, "/")
	if rel == "" {
		return "index" + docscrape.MarkdownExt, nil
	}

	rel = path.Clean(rel)
	if rel == ".." || strings.HasPrefix(rel, "../") {
		return "", docscrape.Errorf(docscrape.EINVALID, "page URL %q escapes output directory", rawURL)
	}

	return rel + docscrape.MarkdownExt, nil
}

// FormatPage formats a page with an HTML comment block holding its origin
// URL and scrape timestamp.
func FormatPage(page *docscrape.Page) string {
	var b strings.Builder
	b.WriteString("<!--\n")
	b.WriteString("Original URL: ")
	b.WriteString(page.URL)
	b.WriteString("\nScraped on: ")
	b.WriteString(page.ScrapedAt.Format(time.RFC3339))
	b.WriteString("\n-->\n\n")
	b.WriteString(page.Content)
	return b.String()
}

// Compile-time interface verification.
var (
	_ docscrape.PageWriter = (*Writer)(nil)
	_ docscrape.FileWriter = (*Writer)(nil)
)

// Writer writes pages as markdown files below a directory.
// Writes are not atomic; a crash mid-write leaves a partial file.
type Writer struct {
	baseDir string
	baseURL string
}

// NewWriter creates a new Writer that writes pages scraped below baseURL
// into baseDir.
func NewWriter(baseDir, baseURL string) *Writer {
	return &Writer{baseDir: baseDir, baseURL: baseURL}
}

// SavePage writes a page to disk as a markdown file.
func (w *Writer) SavePage(ctx context.Context, page *docscrape.Page) error {
	if err := page.Validate(); err != nil {
		return err
	}

	relPath, err := URLToPath(page.URL, w.baseURL)
	if err != nil {
		return err
	}

	return w.WriteFile(filepath.Join(w.baseDir, filepath.FromSlash(relPath)), []byte(FormatPage(page)))
}

// WriteFile writes content to path, creating parent directories.
func (w *Writer) WriteFile(path string, content []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return docscrape.Errorf(docscrape.EIO, "create directory for %s: %v", path, err)
	}
	if err := os.WriteFile(path, content, 0644); err != nil {
		return docscrape.Errorf(docscrape.EIO, "write %s: %v", path, err)
	}
	return nil
}
