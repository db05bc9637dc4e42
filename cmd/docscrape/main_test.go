package main_test

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fwojciec/docscrape"
	main "github.com/fwojciec/docscrape/cmd/docscrape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Story: CLI Help and Input
//
// Users either pass the documentation URL as an argument or type it when
// prompted. Invalid settings are rejected before any request is made.

func TestCLI_ShowsHelpWhenAsked(t *testing.T) {
	t.Parallel()

	// Given: a CLI instance
	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	// When: running with --help flag
	err := m.Run(context.Background(), []string{"--help"}, strings.NewReader(""), &stdout, &stderr)

	// Then: help is displayed without error
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "docscrape")
	assert.Contains(t, stdout.String(), "--output")
	assert.Contains(t, stdout.String(), "--timeout")
}

func TestCLI_PromptsForURLWhenNoArgument(t *testing.T) {
	t.Parallel()

	// Given: no URL argument and an empty answer on stdin
	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	// When: running
	err := m.Run(context.Background(), []string{}, strings.NewReader("\n"), &stdout, &stderr)

	// Then: the prompt is shown and the empty answer is rejected
	require.Error(t, err)
	assert.Equal(t, docscrape.EINVALID, docscrape.ErrorCode(err))
	assert.Contains(t, stdout.String(), "Enter the URL of the documentation to scrape:")
}

func TestCLI_RejectsNonPositiveTimeout(t *testing.T) {
	t.Parallel()

	// Given: a zero timeout
	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	// When: running
	err := m.Run(context.Background(), []string{"-t", "0s", "-o", t.TempDir(), "docs.example.com"}, strings.NewReader(""), &stdout, &stderr)

	// Then: the config is rejected before scraping
	require.Error(t, err)
	assert.Equal(t, docscrape.EINVALID, docscrape.ErrorCode(err))
	assert.NotContains(t, stdout.String(), "Starting to process")
	assert.Empty(t, stderr.String(), "errors are reported once, by main")
}

// Story: Scraping a Site End to End
//
// A run discovers every in-scope page below the base URL, saves each as a
// markdown file, skips pages that fail, and writes the combined outputs.

// newDocsSite serves a small documentation tree below /docs/.
// /docs/b always fails with a server error.
func newDocsSite(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/docs/", func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/docs/":
			fmt.Fprint(w, `<html><body><nav><a href="/docs/a">A</a><a href="/docs/b">B</a><a href="/blog/">Blog</a></nav>
<article><h1>Welcome</h1><p>Start here.</p></article></body></html>`)
		case "/docs/a":
			fmt.Fprint(w, `<html><body><main><h2>Alpha</h2><p>Alpha details.</p><a href="/docs/#top">Top</a></main></body></html>`)
		default:
			http.Error(w, "boom", http.StatusInternalServerError)
		}
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestCLI_ScrapesSiteAndWritesCombinedOutputs(t *testing.T) {
	t.Parallel()

	// Given: a documentation site and an empty output root
	srv := newDocsSite(t)
	root := t.TempDir()
	base := srv.URL + "/docs/"
	cfg := docscrape.NewConfig(base)
	cfg.OutputRoot = root

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	// When: scraping the site
	err := m.Run(context.Background(), []string{"-o", root, base}, strings.NewReader(""), &stdout, &stderr)

	// Then: the run succeeds despite the failing page
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "Found 3 pages to scrape.")
	assert.Contains(t, stdout.String(), "Saved 2 pages (1 skipped)")

	// And: each good page is saved with its provenance header
	index, err := os.ReadFile(filepath.Join(cfg.OutputDir(), "index.md"))
	require.NoError(t, err)
	assert.Contains(t, string(index), "Original URL: "+base)
	assert.Contains(t, string(index), "Welcome")
	assert.NotContains(t, string(index), "Blog")

	_, err = os.Stat(filepath.Join(cfg.OutputDir(), "a.md"))
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(cfg.OutputDir(), "b.md"))
	assert.True(t, os.IsNotExist(err))

	// And: the combined markdown carries a table of contents over both pages
	md, err := os.ReadFile(filepath.Join(cfg.OutputDir(), cfg.BaseName()+".md"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(md), "# Table of Contents\n\n"))
	assert.Contains(t, string(md), "- [a](#a)")
	assert.Contains(t, string(md), "- [index](#index)")
	assert.Contains(t, string(md), "Alpha details.")

	// And: the combined text has the same body without the table of contents
	txt, err := os.ReadFile(filepath.Join(cfg.OutputDir(), cfg.BaseName()+".txt"))
	require.NoError(t, err)
	assert.NotContains(t, string(txt), "Table of Contents")
	assert.Contains(t, string(txt), "Start here.")
}

func TestCLI_ReadsURLFromPrompt(t *testing.T) {
	t.Parallel()

	// Given: a documentation site whose URL is typed at the prompt
	srv := newDocsSite(t)
	root := t.TempDir()
	base := srv.URL + "/docs/"

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	// When: running without a URL argument
	err := m.Run(context.Background(), []string{"-o", root}, strings.NewReader("  "+base+"\n"), &stdout, &stderr)

	// Then: the typed URL is scraped
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "Starting to process documentation from "+base)
	assert.Contains(t, stdout.String(), "Combined markdown saved as")
}
