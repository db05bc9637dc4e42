package docscrape

import (
	"net/url"
	"path/filepath"
	"strings"
	"time"
)

// Defaults applied by NewConfig.
const (
	DefaultOutputRoot = "Outputs"
	DefaultTimeout    = 10 * time.Second
)

// Config holds the settings threaded through a scrape run.
type Config struct {
	BaseURL    string
	OutputRoot string
	Timeout    time.Duration
}

// NewConfig returns a Config for baseURL with default output root and timeout.
func NewConfig(baseURL string) *Config {
	return &Config{
		BaseURL:    baseURL,
		OutputRoot: DefaultOutputRoot,
		Timeout:    DefaultTimeout,
	}
}

// NormalizeURL trims input and prepends https:// unless it already starts
// with an http:// or https:// scheme, in any case.
func NormalizeURL(input string) string {
	input = strings.TrimSpace(input)
	lower := strings.ToLower(input)
	if !strings.HasPrefix(lower, "http://") && !strings.HasPrefix(lower, "https://") {
		input = "https://" + input
	}
	return input
}

// Validate returns an error if the config contains invalid fields.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return Errorf(EINVALID, "base URL required")
	}
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return Errorf(EINVALID, "invalid base URL %q: %v", c.BaseURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return Errorf(EINVALID, "base URL %q must be absolute", c.BaseURL)
	}
	if c.OutputRoot == "" {
		return Errorf(EINVALID, "output root required")
	}
	if c.Timeout <= 0 {
		return Errorf(EINVALID, "timeout must be positive")
	}
	return nil
}

// DomainName returns the base URL host with dots replaced by underscores.
// Example: docs.example.com → docs_example_com
func (c *Config) DomainName() string {
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return ""
	}
	return strings.ReplaceAll(u.Host, ".", "_")
}

// OutputDir returns the directory holding page files and combined outputs.
func (c *Config) OutputDir() string {
	return filepath.Join(c.OutputRoot, c.DomainName())
}

// BaseName returns the file name, without extension, of the combined outputs.
func (c *Config) BaseName() string {
	return c.DomainName() + "_documentation"
}
