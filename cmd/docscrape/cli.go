package main

import (
	"context"
	"io"

	"github.com/fwojciec/docscrape"
	"github.com/fwojciec/docscrape/crawl"
	"github.com/fwojciec/docscrape/fs"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	Discoverer *crawl.Discoverer
	Scraper    *crawl.Scraper
	Aggregator *fs.Aggregator
}

// ScrapeCmd discovers, scrapes and aggregates one documentation site.
type ScrapeCmd struct {
	Config *docscrape.Config
}
