// Package fetch retrieves web pages and reduces them to readable
// plain text for an agent that cannot render HTML.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/net/html"
)

const defaultMaxBodyBytes = 4 << 20

// Fetcher performs HTTP GETs and converts HTML responses to text.
type Fetcher struct {
	client   *http.Client
	maxBytes int64
}

type Option func(*Fetcher)

func WithClient(c *http.Client) Option {
	return func(f *Fetcher) { f.client = c }
}

func WithMaxBodyBytes(n int64) Option {
	return func(f *Fetcher) { f.maxBytes = n }
}

func New(opts ...Option) *Fetcher {
	f := &Fetcher{
		client:   &http.Client{Timeout: 30 * time.Second},
		maxBytes: defaultMaxBodyBytes,
	}
	for _, o := range opts {
		if o != nil {
			o(f)
		}
	}
	return f
}

// Fetch retrieves url and returns its text content. Non-2xx statuses
// are errors naming the status code.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("HTTP status code %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes))
	if err != nil {
		return "", fmt.Errorf("reading response body: %w", err)
	}

	ct := resp.Header.Get("Content-Type")
	if ct != "" && !strings.Contains(ct, "html") {
		return string(body), nil
	}
	return htmlToText(string(body)), nil
}

// Report wraps Fetch into the string-only tool contract.
func (f *Fetcher) Report(ctx context.Context, url string) string {
	if strings.TrimSpace(url) == "" {
		return "Error fetching: no URL provided."
	}
	text, err := f.Fetch(ctx, url)
	if err != nil {
		return fmt.Sprintf("Error fetching %s: %v", url, err)
	}
	if strings.TrimSpace(text) == "" {
		return fmt.Sprintf("Fetched %s (no textual content).", url)
	}
	return text
}

var skippedElements = map[string]bool{
	"script":   true,
	"style":    true,
	"noscript": true,
	"head":     true,
	"template": true,
}

var blockElements = map[string]bool{
	"p": true, "div": true, "br": true, "li": true, "tr": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"ul": true, "ol": true, "table": true, "section": true, "article": true,
	"header": true, "footer": true, "blockquote": true, "pre": true,
}

// htmlToText walks the token stream, drops non-content elements, and
// separates block elements with newlines.
func htmlToText(doc string) string {
	tz := html.NewTokenizer(strings.NewReader(doc))

	var b strings.Builder
	skipDepth := 0
	for {
		tt := tz.Next()
		switch tt {
		case html.ErrorToken:
			return collapseBlankLines(b.String())
		case html.StartTagToken:
			name, _ := tz.TagName()
			tag := string(name)
			if skippedElements[tag] {
				skipDepth++
				continue
			}
			if skipDepth == 0 && blockElements[tag] {
				b.WriteByte('\n')
			}
		case html.EndTagToken:
			name, _ := tz.TagName()
			tag := string(name)
			if skippedElements[tag] {
				if skipDepth > 0 {
					skipDepth--
				}
				continue
			}
			if skipDepth == 0 && blockElements[tag] {
				b.WriteByte('\n')
			}
		case html.SelfClosingTagToken:
			name, _ := tz.TagName()
			if skipDepth == 0 && blockElements[string(name)] {
				b.WriteByte('\n')
			}
		case html.TextToken:
			if skipDepth > 0 {
				continue
			}
			text := strings.TrimSpace(string(tz.Text()))
			if text == "" {
				continue
			}
			if b.Len() > 0 && !strings.HasSuffix(b.String(), "\n") {
				b.WriteByte(' ')
			}
			b.WriteString(text)
		}
	}
}

func collapseBlankLines(s string) string {
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	blank := false
	for _, l := range lines {
		l = strings.TrimRight(l, " \t")
		if l == "" {
			if blank {
				continue
			}
			blank = true
		} else {
			blank = false
		}
		out = append(out, l)
	}
	return strings.TrimSpace(strings.Join(out, "\n"))
}
