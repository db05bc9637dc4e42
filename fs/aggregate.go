package fs

import (
	"context"
	iofs "io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/fwojciec/docscrape"
)

// TextExt is the extension of the plain-text combined output.
const TextExt = ".txt"

// Aggregator merges the markdown files below a directory into one
// combined markdown document and one plain-text document.
type Aggregator struct {
	Files  docscrape.FileWriter
	Logger *slog.Logger
}

// NewAggregator creates a new Aggregator that writes through files.
func NewAggregator(files docscrape.FileWriter, logger *slog.Logger) *Aggregator {
	return &Aggregator{Files: files, Logger: logger}
}

// Aggregate combines every markdown file below rootDir and writes
// {outputDir}/{baseName}.md (with table of contents) and
// {outputDir}/{baseName}.txt (body only).
//
// A missing or unreadable rootDir is logged and produces an empty document.
// A previous {baseName}.md at the top of rootDir is never read back in.
func (a *Aggregator) Aggregate(ctx context.Context, rootDir, outputDir, baseName string) (*docscrape.Combined, error) {
	files, err := a.ReadMarkdownFiles(os.DirFS(rootDir), baseName+docscrape.MarkdownExt)
	if err != nil {
		a.logger().Warn("cannot read pages, combined document will be empty",
			"root", rootDir,
			"err", err,
		)
		files = nil
	}

	combined := docscrape.Combine(files)

	mdPath := filepath.Join(outputDir, baseName+docscrape.MarkdownExt)
	if err := a.Files.WriteFile(mdPath, []byte(combined.Markdown())); err != nil {
		return nil, err
	}
	txtPath := filepath.Join(outputDir, baseName+TextExt)
	if err := a.Files.WriteFile(txtPath, []byte(combined.Text())); err != nil {
		return nil, err
	}

	a.logger().Debug("aggregated pages",
		"files", len(files),
		"markdown", mdPath,
		"text", txtPath,
	)
	return combined, nil
}

// ReadMarkdownFiles reads every markdown file in fsys. Each directory's
// files are read in lexical order before its subdirectories, which are
// themselves visited in lexical order. Names listed in skip are ignored at
// the top level only. Unreadable subdirectories and files are logged and
// skipped; only an unreadable root is an error.
func (a *Aggregator) ReadMarkdownFiles(fsys iofs.FS, skip ...string) ([]docscrape.MarkdownFile, error) {
	skipped := make(map[string]bool, len(skip))
	for _, name := range skip {
		skipped[name] = true
	}

	var files []docscrape.MarkdownFile
	if err := a.readDir(fsys, ".", skipped, &files); err != nil {
		return nil, err
	}
	return files, nil
}

func (a *Aggregator) readDir(fsys iofs.FS, dir string, skipped map[string]bool, files *[]docscrape.MarkdownFile) error {
	entries, err := iofs.ReadDir(fsys, dir)
	if err != nil {
		return err
	}

	var subdirs []string
	for _, entry := range entries {
		name := path.Join(dir, entry.Name())
		if entry.IsDir() {
			subdirs = append(subdirs, name)
			continue
		}
		if !strings.HasSuffix(entry.Name(), docscrape.MarkdownExt) || skipped[name] {
			continue
		}

		content, err := iofs.ReadFile(fsys, name)
		if err != nil {
			a.logger().Warn("skipping unreadable file", "path", name, "err", err)
			continue
		}
		*files = append(*files, docscrape.MarkdownFile{Path: name, Content: string(content)})
	}

	for _, sub := range subdirs {
		if err := a.readDir(fsys, sub, nil, files); err != nil {
			a.logger().Warn("skipping unreadable directory", "path", sub, "err", err)
		}
	}
	return nil
}

func (a *Aggregator) logger() *slog.Logger {
	if a.Logger != nil {
		return a.Logger
	}
	return slog.New(slog.DiscardHandler)
}
