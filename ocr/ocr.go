//go:build ocr

package ocr

import (
	"fmt"

	"github.com/otiai10/gosseract/v2"

	"github.com/ttgt/schedparse/model"
)

// Client wraps Tesseract for word-level recognition.
type Client struct {
	client *gosseract.Client
	config Config
}

// New creates a client with the default configuration.
// The client should be closed when no longer needed to release resources.
func New() (*Client, error) {
	return NewWithConfig(DefaultConfig())
}

// NewWithConfig creates a client with a custom configuration.
func NewWithConfig(config Config) (*Client, error) {
	client := gosseract.NewClient()
	if config.Language != "" {
		if err := client.SetLanguage(config.Language); err != nil {
			client.Close()
			return nil, fmt.Errorf("failed to set language %q: %w", config.Language, err)
		}
	}
	return &Client{client: client, config: config}, nil
}

// Close releases OCR resources.
func (c *Client) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}

// SetPageSegMode sets the page segmentation mode.
// Sparse text suits timetables better than the default block mode.
func (c *Client) SetPageSegMode(mode gosseract.PageSegMode) error {
	return c.client.SetPageSegMode(mode)
}

// Recognize runs OCR on encoded image data and returns the recognised words
// as items in page coordinates.
func (c *Client) Recognize(imageData []byte) ([]model.Item, error) {
	width, height, err := ImageSize(imageData)
	if err != nil {
		return nil, err
	}

	if err := c.client.SetImageFromBytes(imageData); err != nil {
		return nil, fmt.Errorf("failed to set image: %w", err)
	}

	boxes, err := c.client.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil {
		return nil, fmt.Errorf("OCR failed: %w", err)
	}

	words := make([]Word, 0, len(boxes))
	for _, b := range boxes {
		words = append(words, Word{Text: b.Word, Box: b.Box, Confidence: b.Confidence})
	}
	return ItemsFromWords(words, width, height, c.config), nil
}
