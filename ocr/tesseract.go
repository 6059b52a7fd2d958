//go:build ocr

package ocr

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/otiai10/gosseract/v2"
)

// Client recognizes question sheets with Tesseract. A Client is not safe for
// concurrent use.
type Client struct {
	client *gosseract.Client
}

// New creates a client with DefaultConfig. Close it when done.
func New() (*Client, error) {
	return NewWithConfig(DefaultConfig())
}

// NewWithConfig creates a client for config. An empty Language keeps
// Tesseract's default.
func NewWithConfig(config Config) (*Client, error) {
	c := &Client{client: gosseract.NewClient()}
	if config.Language != "" {
		if err := c.SetLanguage(config.Language); err != nil {
			c.Close()
			return nil, err
		}
	}
	if err := c.SetPageSegMode(config.PageSegMode); err != nil {
		c.Close()
		return nil, fmt.Errorf("failed to set page segmentation mode: %w", err)
	}
	if config.DPI > 0 {
		if err := c.client.SetVariable("user_defined_dpi", strconv.Itoa(config.DPI)); err != nil {
			c.Close()
			return nil, fmt.Errorf("failed to set DPI: %w", err)
		}
	}
	// Keeps the gap between a choice label and its text on two-column sheets.
	if err := c.client.SetVariable("preserve_interword_spaces", "1"); err != nil {
		c.Close()
		return nil, fmt.Errorf("failed to set spacing mode: %w", err)
	}
	return c, nil
}

// Close releases OCR resources.
func (c *Client) Close() error {
	if c != nil && c.client != nil {
		return c.client.Close()
	}
	return nil
}

// RecognizeImage reads the text of a PNG, JPEG or TIFF scan and returns it
// passed through CleanText, ready for the importer.
func (c *Client) RecognizeImage(imageData []byte) (string, error) {
	if len(imageData) == 0 {
		return "", errors.New("empty image")
	}
	if err := c.client.SetImageFromBytes(imageData); err != nil {
		return "", fmt.Errorf("failed to set image: %w", err)
	}

	text, err := c.client.Text()
	if err != nil {
		return "", fmt.Errorf("OCR failed: %w", err)
	}
	return CleanText(text), nil
}

// SetLanguage loads the languages of a "+" separated list, see
// ParseLanguages.
func (c *Client) SetLanguage(lang string) error {
	codes, err := ParseLanguages(lang)
	if err != nil {
		return err
	}
	if err := c.client.SetLanguage(codes...); err != nil {
		return fmt.Errorf("failed to set language %q: %w", lang, err)
	}
	return nil
}

// SetPageSegMode sets the page segmentation mode.
func (c *Client) SetPageSegMode(mode PageSegMode) error {
	return c.client.SetPageSegMode(gosseract.PageSegMode(mode))
}
