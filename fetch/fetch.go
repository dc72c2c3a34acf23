package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/net/html"
)

var (
	// ErrUpstreamStatus is returned when the server answers with a non-2xx status.
	ErrUpstreamStatus = errors.New("upstream returned an error status")

	// ErrEmptyPayload is returned when the response body is empty.
	ErrEmptyPayload = errors.New("empty or missing document")

	// ErrTooLarge is returned when the body exceeds the configured size cap.
	ErrTooLarge = errors.New("document exceeds size limit")

	// ErrNoDocumentLink is returned when an HTML page carries no PDF link.
	ErrNoDocumentLink = errors.New("no document link on page")
)

// Document is a downloaded file.
type Document struct {
	URL         string
	ContentType string
	Data        []byte
}

// IsPDF reports whether the document carries the PDF magic number.
func (d *Document) IsPDF() bool {
	return strings.HasPrefix(string(d.Data[:min(len(d.Data), 5)]), "%PDF-")
}

// Config holds configuration for the fetch client
type Config struct {
	// Timeout bounds the whole exchange, redirects and link following included
	// Default: 30 seconds
	Timeout time.Duration

	// MaxBytes caps the size of a downloaded body
	// Default: 20 MiB
	MaxBytes int64

	// UserAgent is sent with every request
	UserAgent string

	// FollowLinks enables following the first PDF link of an HTML page
	// Default: true
	FollowLinks bool
}

// DefaultConfig returns the default fetch configuration
func DefaultConfig() Config {
	return Config{
		Timeout:     30 * time.Second,
		MaxBytes:    20 << 20,
		UserAgent:   "schedparse/1.0",
		FollowLinks: true,
	}
}

// Client downloads documents.
type Client struct {
	http   *http.Client
	config Config
}

// New creates a client with the default configuration
func New() *Client {
	return NewWithConfig(DefaultConfig())
}

// NewWithConfig creates a client with a custom configuration
func NewWithConfig(config Config) *Client {
	return &Client{
		http:   &http.Client{Timeout: config.Timeout},
		config: config,
	}
}

// Fetch downloads the document at rawURL.
func (c *Client) Fetch(ctx context.Context, rawURL string) (*Document, error) {
	doc, err := c.get(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	if !c.config.FollowLinks || !isHTML(doc) {
		return doc, nil
	}

	link, err := FindDocumentLink(doc.Data, doc.URL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", rawURL, err)
	}
	return c.get(ctx, link)
}

func (c *Client) get(ctx context.Context, rawURL string) (*Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	if c.config.UserAgent != "" {
		req.Header.Set("User-Agent", c.config.UserAgent)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %s: %s", ErrUpstreamStatus, rawURL, resp.Status)
	}

	body := io.Reader(resp.Body)
	if c.config.MaxBytes > 0 {
		body = io.LimitReader(resp.Body, c.config.MaxBytes+1)
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", rawURL, err)
	}
	if c.config.MaxBytes > 0 && int64(len(data)) > c.config.MaxBytes {
		return nil, fmt.Errorf("%w: %s", ErrTooLarge, rawURL)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyPayload, rawURL)
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}

	return &Document{
		URL:         resp.Request.URL.String(),
		ContentType: contentType,
		Data:        data,
	}, nil
}

func isHTML(doc *Document) bool {
	if doc.IsPDF() {
		return false
	}
	return strings.HasPrefix(strings.ToLower(doc.ContentType), "text/html")
}

// FindDocumentLink returns the first link to a PDF in an HTML page,
// resolved against base.
func FindDocumentLink(page []byte, base string) (string, error) {
	baseURL, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("invalid base URL: %w", err)
	}

	root, err := html.Parse(strings.NewReader(string(page)))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	var found string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if found != "" {
			return
		}
		if n.Type == html.ElementNode && n.Data == "a" {
			for _, attr := range n.Attr {
				if attr.Key != "href" {
					continue
				}
				ref, err := url.Parse(strings.TrimSpace(attr.Val))
				if err != nil {
					continue
				}
				if strings.HasSuffix(strings.ToLower(ref.Path), ".pdf") {
					found = baseURL.ResolveReference(ref).String()
					return
				}
			}
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(root)

	if found == "" {
		return "", ErrNoDocumentLink
	}
	return found, nil
}

// ExpandURL substitutes the path-escaped group into a URL template holding
// one %s verb. A template without a verb is returned unchanged.
func ExpandURL(template, group string) string {
	return strings.Replace(template, "%s", url.PathEscape(group), 1)
}
